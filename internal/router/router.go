// Package router maps locations to application views and owns navigation.
package router

import (
	"context"
	"errors"
	"strings"

	"vink/internal/api"
)

// ViewKind is the closed set of application views.
type ViewKind int

const (
	// KindCreate is the share-creation view, shown at "/".
	KindCreate ViewKind = iota
	// KindAbout is the informational view, shown at "/about".
	KindAbout
	// KindVanish shows a single vanish; any other path selects it, with the
	// id being the path minus its leading slash.
	KindVanish
)

// View is the resolved state for one location.
type View struct {
	Kind ViewKind
	ID   string // set only for KindVanish
}

// Resolve applies the transition rule to a path. It is evaluated once at load
// and again on every explicit navigation.
func Resolve(path string) View {
	switch path {
	case "/about":
		return View{Kind: KindAbout}
	case "/", "":
		return View{Kind: KindCreate}
	default:
		return View{Kind: KindVanish, ID: strings.TrimPrefix(path, "/")}
	}
}

// ErrBusy is returned when a fetch is re-invoked while one is outstanding.
var ErrBusy = errors.New("a fetch is already in flight")

// Fetcher is the slice of the API client the router needs.
type Fetcher interface {
	GetVanish(ctx context.Context, id string) (api.Vanish, error)
}

// Navigator abstracts the ambient location so the router is testable without
// a real environment. Navigate must only update the location; the router
// re-evaluates the transition rule itself.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// Router resolves the active view and triggers the fetch when a vanish view
// is entered. It is single-threaded and cooperative: fetches are not
// cancelable, and a response that lands after the view changed is discarded
// rather than applied.
type Router struct {
	nav     Navigator
	fetcher Fetcher

	current View
	vanish  *api.Vanish
	err     error
	loading bool

	// generation advances on every activation; fetch results are applied
	// only if the activation that issued them is still the latest.
	generation uint64
}

// New creates a router over a navigator and a fetcher.
func New(nav Navigator, fetcher Fetcher) *Router {
	return &Router{nav: nav, fetcher: fetcher}
}

// Current returns the active view.
func (r *Router) Current() View { return r.current }

// Vanish returns the fetched record for the active vanish view, if any.
func (r *Router) Vanish() *api.Vanish { return r.vanish }

// Err returns the terminal error of the last fetch, if any.
func (r *Router) Err() error { return r.err }

// Loading reports whether a fetch is outstanding; callers disable the fetch
// affordance while it is set.
func (r *Router) Loading() bool { return r.loading }

// Start evaluates the transition rule for the current location, as at page
// load.
func (r *Router) Start(ctx context.Context) View {
	return r.activate(ctx)
}

// Go navigates to a path without a reload and re-evaluates the transition
// rule. Only "/" and "/about" are explicit navigation targets in the exposed
// surface; reaching a different vanish id requires a fresh Start on that
// path.
func (r *Router) Go(ctx context.Context, path string) View {
	r.nav.Navigate(path)
	return r.activate(ctx)
}

// Refresh re-runs the fetch for the active vanish view. Re-invoking while a
// fetch is outstanding is disallowed.
func (r *Router) Refresh(ctx context.Context) error {
	if r.current.Kind != KindVanish {
		return nil
	}
	if r.loading {
		return ErrBusy
	}
	r.fetch(ctx, r.current.ID)
	return nil
}

func (r *Router) activate(ctx context.Context) View {
	r.generation++
	r.current = Resolve(r.nav.CurrentPath())
	r.vanish = nil
	r.err = nil
	r.loading = false

	if r.current.Kind == KindVanish {
		r.fetch(ctx, r.current.ID)
	}
	return r.current
}

func (r *Router) fetch(ctx context.Context, id string) {
	generation := r.generation
	r.loading = true

	vanish, err := r.fetcher.GetVanish(ctx, id)

	if generation != r.generation {
		// The view moved on while the request was outstanding; applying the
		// result now would corrupt the newer view's state.
		return
	}
	r.loading = false
	if err != nil {
		r.err = err
		return
	}
	r.vanish = &vanish
}
