package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/errors"
)

// isPath ensures all registered paths look like "extension/action".
var isPath = regexp.MustCompile(`^[a-z0-9_]{3,20}/[a-z0-9_]{3,20}$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the registered handler.
type Router struct {
	routes map[string]trustbridge.Handler
}

var _ trustbridge.Registry = (*Router)(nil)
var _ trustbridge.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]trustbridge.Handler),
	}
}

// Handle adds a new Handler for the given path. Panics on invalid
// path or duplicate registration, as this is a coding error detected
// during the application setup.
func (r *Router) Handle(path string, h trustbridge.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler, or nil when there is none.
func (r *Router) Handler(path string) trustbridge.Handler {
	return r.routes[path]
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx trustbridge.Context, store trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx trustbridge.Context, store trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, store, tx)
}

func (r *Router) handler(tx trustbridge.Tx) (trustbridge.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	path := msg.Path()
	if h, ok := r.routes[path]; ok {
		return h, nil
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", path)
}
