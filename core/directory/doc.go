// Package directory is the HTTP client for the amoCRM contact directory.
//
// It implements the two collaborators of the reconciliation engine: listing
// contacts (recent ones since a checkpoint, or all of them) and writing back
// the first/last name fields.
//
// # Errors
//
// Non-2xx responses become *APIError. A 4xx other than 408 and 429 unwraps to
// reconcile.ErrClientRejected, so the engine does not retry it. Network errors
// and 5xx responses are transient.
//
// # Authentication
//
// Requests carry a bearer token from a TokenSource. StaticToken serves a
// long-lived token from configuration.
package directory
