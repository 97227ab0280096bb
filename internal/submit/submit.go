// Package submit turns a draft into one creation call against the vanish API
// and interprets the outcome.
package submit

import (
	"context"
	"errors"
	"strings"

	"vink/internal/api"
	"vink/internal/models"
)

// ErrBusy is returned when a submission is already outstanding. The guard is
// advisory; the backend stays the authority on final state.
var ErrBusy = errors.New("a submission is already in flight")

// Creator is the slice of the API client the submitter needs.
type Creator interface {
	CreateVanish(ctx context.Context, req api.CreateRequest) (string, error)
}

// Result is a successful submission: the opaque locator the server issued
// and the user-facing share URL built from it.
type Result struct {
	Locator  string `json:"locator"`
	ShareURL string `json:"url"`
}

// Submitter owns the at-most-one-in-flight guard and the share-URL assembly.
type Submitter struct {
	creator  Creator
	origin   string
	inFlight bool
}

// New creates a submitter. origin is the web origin share links are built on,
// e.g. "https://vanish.example.com".
func New(creator Creator, origin string) *Submitter {
	return &Submitter{creator: creator, origin: strings.TrimRight(origin, "/")}
}

// InFlight reports whether a submission is outstanding, so callers can
// disable the trigger.
func (s *Submitter) InFlight() bool { return s.inFlight }

// Submit validates the draft, performs one creation call, and interprets the
// response. On success the draft is reset to its defaults; on any failure it
// is preserved so the user's input survives. Validation failures abort before
// any network traffic.
func (s *Submitter) Submit(ctx context.Context, draft *models.Draft) (Result, error) {
	if s.inFlight {
		return Result{}, ErrBusy
	}
	s.inFlight = true
	defer func() { s.inFlight = false }()

	req, err := draft.BuildRequest()
	if err != nil {
		return Result{}, err
	}

	locator, err := s.creator.CreateVanish(ctx, req)
	if err != nil {
		return Result{}, err
	}

	draft.Reset()
	return Result{Locator: locator, ShareURL: s.origin + "/" + locator}, nil
}
