// Package contacts keeps the directory's name fields in sync with the parser.
//
// # Polling
//
// RunPoller checks for contacts created since the last successful check every
// sync.poll_interval_seconds. A tick that finds the previous check still running
// is dropped. The checkpoint is the start time of the last check whose listing
// succeeded and whose batch ran to the end; it lives in memory or, when the
// database is enabled, in the sync_checkpoints table.
//
// # Full Resync
//
// A full resync reprocesses every contact. It needs two calls: the first arms
// it, the second with confirm=1 starts it in the background. It shares the
// reconciliation engine with the poller, so a contact is never processed by
// both at once. DELETE /full-run stops it before the next contact.
//
// # HTTP Endpoints
//
//   - GET /status : Sync state.
//   - GET /debug/contacts : Runs one recent-contacts check now.
//   - GET /confirm-full-run : Arms, or with ?confirm=1 starts, a full resync.
//   - DELETE /full-run : Stops or disarms the full resync.
package contacts
