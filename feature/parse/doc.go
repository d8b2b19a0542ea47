// Package parse exposes the name resolver over HTTP for the CRM widget.
//
// # HTTP Endpoints
//
//   - POST /api/parse : Body {"fullName": "..."}.
//   - GET /api/parse?name=... : Same, for quick checks from a browser.
//
// Both answer {"success": true, "data": {...}} where data carries lastName,
// firstName, middleName and givenName. firstName excludes the patronymic so the
// widget can place it separately; givenName is what reconciliation stores.
package parse
