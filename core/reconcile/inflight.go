package reconcile

import (
	"sort"
	"sync"
	"time"
)

// State is the transient record of a contact being processed.
type State struct {
	ContactID int64     `json:"contact_id"`
	Attempts  int       `json:"attempts"`
	Proposed  Proposal  `json:"proposed"`
	Started   time.Time `json:"started"`
}

// InFlight holds at most one State per contact id.
// Engines sharing an InFlight never process the same contact concurrently.
type InFlight struct {
	mu     sync.Mutex
	states map[int64]*State
}

// NewInFlight creates an empty in-flight registry.
func NewInFlight() *InFlight {
	return &InFlight{states: make(map[int64]*State)}
}

// Acquire creates the state for id. It returns false if one already exists.
func (f *InFlight) Acquire(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, held := f.states[id]; held {
		return false
	}
	f.states[id] = &State{ContactID: id, Started: time.Now()}
	return true
}

// Release destroys the state for id.
func (f *InFlight) Release(id int64) {
	f.mu.Lock()
	delete(f.states, id)
	f.mu.Unlock()
}

// Len returns the number of contacts in flight.
func (f *InFlight) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.states)
}

// Snapshot returns a copy of every state, ordered by contact id.
func (f *InFlight) Snapshot() []State {
	f.mu.Lock()
	out := make([]State, 0, len(f.states))
	for _, s := range f.states {
		out = append(out, *s)
	}
	f.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ContactID < out[j].ContactID })
	return out
}

func (f *InFlight) update(id int64, fn func(*State)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.states[id]; ok {
		fn(s)
	}
}
