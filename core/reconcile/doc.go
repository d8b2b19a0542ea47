// Package reconcile turns raw contact records into idempotent, retried
// updates of the contact directory.
//
// For every contact the engine validates the raw name, resolves it into
// surname and given-name fields, compares them with what the directory
// already stores and only then calls the Updater. Running the engine twice
// over unchanged data issues no updates.
//
// # Per-contact Lifecycle
//
//  1. Names that are too short or carry digits or foreign characters are
//     skipped without creating any state.
//  2. InFlight guarantees at most one State per contact id; a second caller
//     for the same id is skipped.
//  3. Update calls are retried up to Config.MaxAttempts with Config.RetryDelay
//     between them. An error wrapping ErrClientRejected stops at once.
//  4. The State is released on every path, including a recovered panic.
//
// # Batches
//
// ProcessBatch is sequential and keeps batch order. Cancelling the context
// stops it between contacts. Different batches may run concurrently when they
// share an InFlight; they only exclude each other per contact id.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(resolver, directoryClient, cfg.Sync, log,
//	    reconcile.WithFallback(cfg.Dictionary.FallbackSurname),
//	)
//	summary := engine.ProcessBatch(ctx, contacts)
package reconcile
