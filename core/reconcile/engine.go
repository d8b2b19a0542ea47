package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fioparser/core/fio"
	"fioparser/core/utils"

	"go.uber.org/zap"
)

// NameResolver turns a raw full name into a structured name.
type NameResolver interface {
	Resolve(ctx context.Context, fullName string) fio.StructuredName
}

// Engine resolves contact names and pushes differing ones to the directory.
type Engine struct {
	resolver NameResolver
	updater  Updater
	cfg      Config
	logger   *zap.Logger

	inflight *InFlight
	fallback bool
	observe  func(Result)
	sleep    func(ctx context.Context, d time.Duration) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithFallback enables the first-token-as-surname policy for unplaced names.
func WithFallback(enabled bool) Option {
	return func(e *Engine) { e.fallback = enabled }
}

// WithInFlight shares an in-flight registry between engines.
func WithInFlight(f *InFlight) Option {
	return func(e *Engine) { e.inflight = f }
}

// WithObserver registers a callback invoked after every contact.
func WithObserver(fn func(Result)) Option {
	return func(e *Engine) { e.observe = fn }
}

// WithSleep replaces the wait between update attempts.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(e *Engine) { e.sleep = fn }
}

// NewEngine creates an engine.
func NewEngine(resolver NameResolver, updater Updater, cfg Config, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		resolver: resolver,
		updater:  updater,
		cfg:      cfg,
		logger:   logger,
		inflight: NewInFlight(),
		sleep:    sleepWithCtx,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InFlight returns the registry of contacts being processed.
func (e *Engine) InFlight() *InFlight {
	return e.inflight
}

// ProcessBatch processes contacts one at a time in order.
// Cancelling ctx stops the batch before the next contact; the contact in
// progress always runs to completion.
func (e *Engine) ProcessBatch(ctx context.Context, contacts []Contact) BatchSummary {
	summary := BatchSummary{
		Total:   len(contacts),
		Started: time.Now(),
		Results: make([]Result, 0, len(contacts)),
	}

	for _, c := range contacts {
		if ctx.Err() != nil {
			summary.Stopped = true
			e.logger.Info("Batch stopped",
				zap.Int("processed", summary.Processed()),
				zap.Int("total", summary.Total),
			)
			break
		}
		summary.add(e.ProcessOne(ctx, c))
	}

	summary.Duration = time.Since(summary.Started)

	e.logger.Info("Batch processed",
		zap.Int("total", summary.Total),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Bool("stopped", summary.Stopped),
		zap.Duration("duration", summary.Duration),
	)

	return summary
}

// ProcessOne reconciles a single contact. It never panics and never returns
// an error; failures are reported in the Result.
func (e *Engine) ProcessOne(ctx context.Context, c Contact) (res Result) {
	// A contact is never abandoned halfway, so cancellation is not propagated.
	ctx = context.WithoutCancel(ctx)
	log := e.logger.With(zap.Int64("contact_id", c.ID))
	res = Result{ContactID: c.ID}

	if e.observe != nil {
		defer func() { e.observe(res) }()
	}

	if !ValidName(c.Name, e.cfg.MinNameLength) {
		log.Debug("Contact name rejected", zap.String("name", c.Name))
		return skipped(res, ReasonInvalidName)
	}

	if !e.inflight.Acquire(c.ID) {
		log.Info("Contact already in flight, skipping")
		return skipped(res, ReasonInFlight)
	}
	defer e.inflight.Release(c.ID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("Contact processing panicked", zap.Any("panic", r))
			res = failed(res, ReasonInternal, fmt.Errorf("panic: %v", r))
		}
	}()

	name := e.resolver.Resolve(ctx, c.Name)
	if e.fallback {
		name = name.WithSurnameFallback()
	}

	proposal := Proposal{
		FirstName: utils.Norm(name.GivenName),
		LastName:  utils.Norm(name.Surname),
	}
	res.Proposed = &proposal
	e.inflight.update(c.ID, func(s *State) { s.Proposed = proposal })

	if proposal.IsEmpty() {
		return skipped(res, ReasonUnresolved)
	}
	if !NeedsUpdate(proposal, c) {
		log.Debug("Contact already up to date")
		return skipped(res, ReasonUnchanged)
	}
	if e.cfg.DryRun {
		log.Info("Dry run, update not sent",
			zap.String("first_name", proposal.FirstName),
			zap.String("last_name", proposal.LastName),
		)
		return skipped(res, ReasonDryRun)
	}

	return e.update(ctx, log, c, proposal, res)
}

// update calls the Updater until it succeeds, rejects the request or the
// attempt cap is reached.
func (e *Engine) update(ctx context.Context, log *zap.Logger, c Contact, p Proposal, res Result) Result {
	// An empty proposed field keeps what the directory already has.
	first, last := p.FirstName, p.LastName
	if first == "" {
		first = utils.Norm(c.FirstName)
	}
	if last == "" {
		last = utils.Norm(c.LastName)
	}

	maxAttempts := e.cfg.attempts()
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res.Attempts = attempt
		e.inflight.update(c.ID, func(s *State) { s.Attempts = attempt })

		err = e.updater.UpdateNameFields(ctx, c.ID, first, last)
		if err == nil {
			log.Info("Contact updated",
				zap.String("first_name", first),
				zap.String("last_name", last),
				zap.Int("attempts", attempt),
			)
			res.Outcome = OutcomeUpdated
			return res
		}

		if errors.Is(err, ErrClientRejected) {
			log.Warn("Contact update rejected", zap.Error(err))
			return failed(res, ReasonClientError, err)
		}

		log.Warn("Contact update failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
			zap.Error(err),
		)

		if attempt < maxAttempts {
			_ = e.sleep(ctx, e.cfg.RetryDelay())
		}
	}

	log.Error("Contact update retries exhausted", zap.Error(err))
	return failed(res, ReasonRetriesExhausted, err)
}

func skipped(res Result, reason Reason) Result {
	res.Outcome = OutcomeSkipped
	res.Reason = reason
	return res
}

func failed(res Result, reason Reason, err error) Result {
	res.Outcome = OutcomeFailed
	res.Reason = reason
	res.Err = err
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

// sleepWithCtx waits for d or until ctx is done.
func sleepWithCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
