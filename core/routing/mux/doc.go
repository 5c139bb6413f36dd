// Package mux provides a multiplexer that selects a
// [github.com/anoideaopen/evernote-rest/core/routing.Router] by store name. The
// REST façade serves two stores, "noteStore" and "userStore", each backed by a
// router built for its client type; the multiplexer hands a call to the router
// registered for the store named in the request path.
//
// Example usage:
//
//	factory := evernote.NewConnectionFactory(key, secret, evernote.Sandbox)
//	prototype := factory.Evernote("")
//
//	storeRouter, err := mux.NewRouter(
//	    mux.Route{Store: mux.NoteStore, Router: reflect.MustNewRouter(prototype.NoteStoreOperations())},
//	    mux.Route{Store: mux.UserStore, Router: reflect.MustNewRouter(prototype.UserStoreOperations())},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := storeRouter.Invoke(ctx, mux.NoteStore, target, "getNote", body)
//
// # Error Handling
//
// If a store is registered more than once, NewRouter returns
// ErrStoreAlreadyDefined. Calls for a store that has no router fail with
// ErrUnsupportedStore, wrapped in a *resterr.Error with codes.NotFound.
package mux
