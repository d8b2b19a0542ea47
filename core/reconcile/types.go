package reconcile

import (
	"context"
	"errors"
	"time"
)

// ErrClientRejected marks an update the directory refused as invalid.
// Updaters wrap it so the engine stops retrying at once.
var ErrClientRejected = errors.New("directory rejected the request")

// Updater writes name fields back to the contact directory.
type Updater interface {
	UpdateNameFields(ctx context.Context, contactID int64, firstName, lastName string) error
}

// Contact is a directory record as the engine sees it.
type Contact struct {
	// ID is the directory identifier of the contact.
	ID int64 `json:"id"`

	// Name is the raw full-name string.
	Name string `json:"name"`

	// FirstName is the currently stored first-name field.
	FirstName string `json:"first_name"`

	// LastName is the currently stored last-name field.
	LastName string `json:"last_name"`
}

// Proposal is the pair of fields the engine wants stored for a contact.
type Proposal struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// IsEmpty reports whether the resolver produced nothing for either field.
func (p Proposal) IsEmpty() bool {
	return p.FirstName == "" && p.LastName == ""
}

// Outcome is the terminal result of processing one contact.
type Outcome string

const (
	OutcomeSkipped Outcome = "skipped"
	OutcomeUpdated Outcome = "updated"
	OutcomeFailed  Outcome = "failed"
)

// Reason explains a skipped or failed outcome.
type Reason string

const (
	ReasonInvalidName      Reason = "invalid_name"
	ReasonInFlight         Reason = "in_flight"
	ReasonUnresolved       Reason = "unresolved"
	ReasonUnchanged        Reason = "unchanged"
	ReasonDryRun           Reason = "dry_run"
	ReasonClientError      Reason = "client_error"
	ReasonRetriesExhausted Reason = "retries_exhausted"
	ReasonInternal         Reason = "internal"
)

// Result describes what happened to one contact.
type Result struct {
	// ContactID is the directory identifier of the contact.
	ContactID int64 `json:"contact_id"`

	// Outcome is skipped, updated or failed.
	Outcome Outcome `json:"outcome"`

	// Reason is set for skipped and failed outcomes.
	Reason Reason `json:"reason,omitempty"`

	// Attempts is the number of update calls made.
	Attempts int `json:"attempts"`

	// Proposed holds the resolved fields once the name was resolved.
	Proposed *Proposal `json:"proposed,omitempty"`

	// Err is the last error for failed outcomes.
	Err error `json:"-"`

	// Error is Err rendered for JSON output.
	Error string `json:"error,omitempty"`
}

// BatchSummary aggregates the results of one batch.
type BatchSummary struct {
	Total    int           `json:"total"`
	Updated  int           `json:"updated"`
	Skipped  int           `json:"skipped"`
	Failed   int           `json:"failed"`
	Stopped  bool          `json:"stopped"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
	Results  []Result      `json:"results"`
}

// Processed returns the number of contacts that reached an outcome.
func (s BatchSummary) Processed() int {
	return s.Updated + s.Skipped + s.Failed
}

func (s *BatchSummary) add(r Result) {
	switch r.Outcome {
	case OutcomeUpdated:
		s.Updated++
	case OutcomeFailed:
		s.Failed++
	default:
		s.Skipped++
	}
	s.Results = append(s.Results, r)
}
