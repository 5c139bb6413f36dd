package mux

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/anoideaopen/evernote-rest/core/resterr"
	"github.com/anoideaopen/evernote-rest/core/routing"
	"google.golang.org/grpc/codes"
)

// Store names served by the façade.
const (
	NoteStore = "noteStore"
	UserStore = "userStore"
)

var (
	// ErrStoreAlreadyDefined is returned when a store has already been registered.
	ErrStoreAlreadyDefined = errors.New("store has already defined")

	// ErrUnsupportedStore is returned when no router is registered for a store.
	ErrUnsupportedStore = errors.New("unsupported store")

	// ErrNoRouter is returned when a route has no router.
	ErrNoRouter = errors.New("no router")
)

// Route binds a store name to the router serving it.
type Route struct {
	Store  string
	Router routing.Router
}

// Router is a multiplexer that routes calls to the router of the named store.
type Router struct {
	storeRouter map[string]routing.Router // Store -> Router
	stores      []string
}

// NewRouter creates a new Router with the provided routes.
// It returns an error if any store is defined more than once.
func NewRouter(routes ...Route) (*Router, error) {
	storeRouter := make(map[string]routing.Router, len(routes))
	stores := make([]string, 0, len(routes))

	for _, route := range routes {
		if route.Router == nil {
			return nil, fmt.Errorf("%w, store: '%s'", ErrNoRouter, route.Store)
		}
		if _, ok := storeRouter[route.Store]; ok {
			return nil, fmt.Errorf("%w, store: '%s'", ErrStoreAlreadyDefined, route.Store)
		}

		storeRouter[route.Store] = route.Router
		stores = append(stores, route.Store)
	}

	sort.Strings(stores)

	return &Router{
		storeRouter: storeRouter,
		stores:      stores,
	}, nil
}

// Invoke calls function on the target of store with the JSON object body.
func (r *Router) Invoke(ctx context.Context, store string, target any, function routing.Function, body []byte) (any, error) {
	router, ok := r.storeRouter[store]
	if !ok {
		return nil, resterr.Wrap(
			fmt.Errorf("%w: %s", ErrUnsupportedStore, store),
			codes.NotFound,
			"Cannot find store=[%s].", store,
		)
	}

	return router.Invoke(ctx, target, function, body)
}

// Methods retrieves the operations of store, keyed by function name.
func (r *Router) Methods(store string) (map[routing.Function]routing.Method, error) {
	router, ok := r.storeRouter[store]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStore, store)
	}

	return router.Methods(), nil
}

// Stores returns the registered store names in sorted order.
func (r *Router) Stores() []string {
	return r.stores
}

// Has reports whether a router is registered for store.
func (r *Router) Has(store string) bool {
	_, ok := r.storeRouter[store]
	return ok
}
