package contacts

import (
	"context"
	"errors"
	"sync"
	"time"

	"fioparser/core/dictionary"
	"fioparser/core/fio"
	"fioparser/core/reconcile"

	"go.uber.org/zap"
)

// fakeLister serves canned listings and can block until released.
type fakeLister struct {
	mu         sync.Mutex
	recent     []reconcile.Contact
	all        []reconcile.Contact
	err        error
	sinces     []time.Time
	allCalls   int
	gate       chan struct{}
	entered    chan struct{}
	authorized bool
}

func (f *fakeLister) wait() {
	f.mu.Lock()
	gate, entered := f.gate, f.entered
	f.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
}

func (f *fakeLister) ListContacts(ctx context.Context, since time.Time) ([]reconcile.Contact, error) {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinces = append(f.sinces, since)
	return f.recent, f.err
}

func (f *fakeLister) ListAllContacts(ctx context.Context) ([]reconcile.Contact, error) {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allCalls++
	return f.all, f.err
}

func (f *fakeLister) Authorized(ctx context.Context) bool {
	return f.authorized
}

func (f *fakeLister) recentCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sinces)
}

// fakeUpdater records updates and can block each call until released.
type fakeUpdater struct {
	mu      sync.Mutex
	calls   []int64
	gate    chan struct{}
	entered chan struct{}
	err     error
}

func (f *fakeUpdater) UpdateNameFields(ctx context.Context, contactID int64, firstName, lastName string) error {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, contactID)
	return f.err
}

func (f *fakeUpdater) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var errListing = errors.New("directory unavailable")

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testSyncConfig() reconcile.Config {
	return reconcile.Config{MaxAttempts: 3, RetryDelayMS: 0, MinNameLength: 2, PollIntervalSeconds: 1, LookbackMinutes: 5}
}

func newTestService(lister *fakeLister, updater *fakeUpdater, store CheckpointStore) *Service {
	dict := dictionary.NewStore(nil, nil, nil)
	dict.Add(dictionary.RoleSurname, "иванов", "петров")
	dict.Add(dictionary.RoleGiven, "петр", "анна")
	resolver, _ := fio.NewResolver(dict, 0, nil)

	engine := reconcile.NewEngine(resolver, updater, testSyncConfig(), zap.NewNop(),
		reconcile.WithFallback(true),
		reconcile.WithSleep(func(context.Context, time.Duration) error { return nil }),
	)

	svc := NewService(lister, engine, store, testSyncConfig(), "example", zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func sampleContacts() []reconcile.Contact {
	return []reconcile.Contact{
		{ID: 1, Name: "Иванов Петр"},
		{ID: 2, Name: "Петров Анна", FirstName: "Анна", LastName: "Петров"},
		{ID: 3, Name: "Agent 007"},
	}
}
