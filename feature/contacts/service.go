package contacts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"fioparser/core/reconcile"

	"go.uber.org/zap"
)

var (
	// ErrCheckInProgress is returned when a recent-contacts check is already running.
	ErrCheckInProgress = errors.New("contact check already in progress")
	// ErrFullRunNotArmed is returned when a full run is confirmed before it was requested.
	ErrFullRunNotArmed = errors.New("full run was not requested")
	// ErrFullRunNotConfirmed is returned when an armed full run is requested again without confirmation.
	ErrFullRunNotConfirmed = errors.New("full run confirmation failed")
	// ErrFullRunActive is returned when a full run is already running.
	ErrFullRunActive = errors.New("full run already running")
	// ErrNoFullRun is returned when stopping while no full run is running.
	ErrNoFullRun = errors.New("no full run is running")
)

// Lister reads contacts from the directory.
type Lister interface {
	ListContacts(ctx context.Context, since time.Time) ([]reconcile.Contact, error)
	ListAllContacts(ctx context.Context) ([]reconcile.Contact, error)
}

// authorizer is implemented by listers that can tell whether they hold credentials.
type authorizer interface {
	Authorized(ctx context.Context) bool
}

// Full run phases.
const (
	PhaseIdle    = "idle"
	PhaseArmed   = "armed"
	PhaseRunning = "running"
)

// FullRunStatus describes the full resync.
type FullRunStatus struct {
	Phase   string                  `json:"phase"`
	Started *time.Time              `json:"started,omitempty"`
	Listed  int                     `json:"listed"`
	Last    *reconcile.BatchSummary `json:"last,omitempty"`
}

// Status is the service state reported by GET /status.
type Status struct {
	Authorized            bool                    `json:"authorized"`
	LastCheck             time.Time               `json:"last_check"`
	Domain                string                  `json:"domain"`
	ProcessingMemoryItems int                     `json:"processing_memory_items"`
	Processing            []reconcile.State       `json:"processing"`
	Checking              bool                    `json:"checking"`
	DryRun                bool                    `json:"dry_run"`
	LastSummary           *reconcile.BatchSummary `json:"last_summary,omitempty"`
	FullRun               FullRunStatus           `json:"full_run"`
}

// Service drives the reconciliation engine from the directory listings.
type Service struct {
	lister      Lister
	engine      *reconcile.Engine
	checkpoints CheckpointStore
	cfg         reconcile.Config
	domain      string
	logger      *zap.Logger
	now         func() time.Time

	checking atomic.Bool
	listed   atomic.Int64

	mu          sync.Mutex
	lastCheck   time.Time
	lastSummary *reconcile.BatchSummary
	phase       string
	fullStarted time.Time
	fullLast    *reconcile.BatchSummary
	fullCancel  context.CancelFunc
	fullDone    chan struct{}
}

// NewService creates a contacts service. Until Init runs, the first check
// looks back cfg.Lookback from now.
func NewService(lister Lister, engine *reconcile.Engine, checkpoints CheckpointStore, cfg reconcile.Config, domain string, logger *zap.Logger) *Service {
	if checkpoints == nil {
		checkpoints = NewMemoryCheckpointStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		lister:      lister,
		engine:      engine,
		checkpoints: checkpoints,
		cfg:         cfg,
		domain:      domain,
		logger:      logger,
		now:         time.Now,
		phase:       PhaseIdle,
	}
	s.lastCheck = s.now().Add(-cfg.Lookback())
	return s
}

// Init restores the last check time from the checkpoint store.
func (s *Service) Init(ctx context.Context) error {
	t, ok, err := s.checkpoints.Load(ctx, CheckpointRecent)
	if err != nil {
		return fmt.Errorf("failed to load checkpoint: %w", err)
	}
	if ok {
		s.mu.Lock()
		s.lastCheck = t
		s.mu.Unlock()
		s.logger.Info("Checkpoint restored", zap.Time("last_check", t))
	}
	return nil
}

// LastCheck returns the start time of the last successful check.
func (s *Service) LastCheck() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCheck
}

// CheckRecent processes contacts created since the last successful check.
// The checkpoint only advances when the listing succeeded and the batch ran to
// the end, so no contact is skipped by a failed or interrupted check.
func (s *Service) CheckRecent(ctx context.Context) (reconcile.BatchSummary, error) {
	if !s.checking.CompareAndSwap(false, true) {
		return reconcile.BatchSummary{}, ErrCheckInProgress
	}
	defer s.checking.Store(false)

	started := s.now()
	since := s.LastCheck()

	contacts, err := s.lister.ListContacts(ctx, since)
	if err != nil {
		s.logger.Error("Failed to list recent contacts", zap.Time("since", since), zap.Error(err))
		return reconcile.BatchSummary{}, fmt.Errorf("failed to list recent contacts: %w", err)
	}

	s.logger.Debug("Recent contacts listed", zap.Time("since", since), zap.Int("count", len(contacts)))

	summary := s.engine.ProcessBatch(ctx, contacts)
	s.mu.Lock()
	s.lastSummary = stripResults(summary)
	s.mu.Unlock()

	if summary.Stopped {
		return summary, ctx.Err()
	}

	s.mu.Lock()
	s.lastCheck = started
	s.mu.Unlock()

	if err := s.checkpoints.Save(ctx, CheckpointRecent, started); err != nil {
		s.logger.Warn("Failed to save checkpoint", zap.Error(err))
	}

	return summary, nil
}

// RunPoller checks recent contacts immediately and then every poll interval
// until ctx is done. Ticks that find a check still running are dropped.
func (s *Service) RunPoller(ctx context.Context) {
	interval := s.cfg.PollInterval()
	s.logger.Info("Starting periodic contact check", zap.Duration("interval", interval))

	s.pollOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Periodic contact check stopped")
			return
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

func (s *Service) pollOnce(ctx context.Context) {
	_, err := s.CheckRecent(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrCheckInProgress):
		s.logger.Debug("Previous check still running, tick dropped")
	case errors.Is(err, context.Canceled):
	default:
		s.logger.Warn("Contact check failed", zap.Error(err))
	}
}

// RunFull processes every contact in the directory.
func (s *Service) RunFull(ctx context.Context) (reconcile.BatchSummary, error) {
	contacts, err := s.lister.ListAllContacts(ctx)
	if err != nil {
		return reconcile.BatchSummary{}, fmt.Errorf("failed to list contacts: %w", err)
	}

	s.listed.Store(int64(len(contacts)))
	s.logger.Info("Full run listing complete", zap.Int("count", len(contacts)))
	summary := s.engine.ProcessBatch(ctx, contacts)
	return summary, nil
}

// RequestFullRun implements the two-step confirmation of a full resync.
// The first call arms it. A second call with confirm starts it in the
// background; without confirm it fails and the run stays armed.
func (s *Service) RequestFullRun(confirm bool) (string, error) {
	s.mu.Lock()
	phase := s.phase
	if phase == PhaseIdle {
		s.phase = PhaseArmed
		s.mu.Unlock()
		s.logger.Warn("Full run armed, waiting for confirmation")
		return PhaseArmed, nil
	}
	s.mu.Unlock()

	if phase == PhaseRunning {
		return phase, ErrFullRunActive
	}
	if !confirm {
		return phase, ErrFullRunNotConfirmed
	}
	if err := s.ConfirmFullRun(); err != nil {
		return phase, err
	}
	return PhaseRunning, nil
}

// ConfirmFullRun starts an armed full run in the background.
func (s *Service) ConfirmFullRun() error {
	s.mu.Lock()
	switch s.phase {
	case PhaseRunning:
		s.mu.Unlock()
		return ErrFullRunActive
	case PhaseIdle:
		s.mu.Unlock()
		return ErrFullRunNotArmed
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.phase = PhaseRunning
	s.fullStarted = s.now()
	s.fullCancel = cancel
	s.fullDone = done
	s.listed.Store(0)
	s.mu.Unlock()

	s.logger.Info("Full run started")

	go func() {
		defer close(done)
		defer cancel()

		summary, err := s.RunFull(ctx)
		if err != nil {
			s.logger.Error("Full run failed", zap.Error(err))
		} else {
			s.logger.Info("Full run completed",
				zap.Int("total", summary.Total),
				zap.Int("updated", summary.Updated),
				zap.Bool("stopped", summary.Stopped),
			)
		}

		s.mu.Lock()
		if err == nil {
			s.fullLast = stripResults(summary)
		}
		s.phase = PhaseIdle
		s.fullCancel = nil
		s.mu.Unlock()
	}()

	return nil
}

// StopFullRun asks a running full run to stop before its next contact.
func (s *Service) StopFullRun() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseArmed:
		s.phase = PhaseIdle
		return nil
	case PhaseRunning:
		s.fullCancel()
		s.logger.Info("Full run stop requested")
		return nil
	default:
		return ErrNoFullRun
	}
}

// WaitFullRun blocks until the current full run, if any, has finished.
func (s *Service) WaitFullRun() {
	s.mu.Lock()
	done := s.fullDone
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Status returns a snapshot of the service state.
func (s *Service) Status(ctx context.Context) Status {
	authorized := true
	if a, ok := s.lister.(authorizer); ok {
		authorized = a.Authorized(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Authorized:            authorized,
		LastCheck:             s.lastCheck,
		Domain:                s.domain,
		ProcessingMemoryItems: s.engine.InFlight().Len(),
		Processing:            s.engine.InFlight().Snapshot(),
		Checking:              s.checking.Load(),
		DryRun:                s.cfg.DryRun,
		LastSummary:           s.lastSummary,
		FullRun: FullRunStatus{
			Phase: s.phase,
			Last:  s.fullLast,
		},
	}
	if s.phase == PhaseRunning {
		started := s.fullStarted
		st.FullRun.Started = &started
		st.FullRun.Listed = int(s.listed.Load())
	}
	return st
}

func stripResults(s reconcile.BatchSummary) *reconcile.BatchSummary {
	s.Results = nil
	return &s
}
