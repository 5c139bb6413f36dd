// Package routing defines the Router interface used to dispatch HTTP requests to
// operations of a store client.
//
// A request arrives as (store name, function name, JSON object). The HTTP layer
// resolves the store name into an operation target (a note store or user store
// client bound to the caller's credentials) and passes the target, the function
// name and the JSON body to a Router, which returns the operation result.
//
// Router interface implementations include:
//   - [github.com/anoideaopen/evernote-rest/core/routing/reflect]: resolves the
//     operation on the concrete client type, binds JSON fields to parameters by
//     name and invokes the method through reflection.
//   - [github.com/anoideaopen/evernote-rest/core/routing/mux]: selects a Router
//     by store name.
//
// # Example
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/anoideaopen/evernote-rest/core/routing/reflect"
//	    "github.com/anoideaopen/evernote-rest/evernote"
//	)
//
//	func main() {
//	    factory := evernote.NewConnectionFactory("key", "secret", evernote.Sandbox)
//	    client := factory.Evernote("S=s1:U=...")
//
//	    router := reflect.MustNewRouter(client.NoteStoreOperations())
//
//	    note, err := router.Invoke(
//	        context.Background(),
//	        client.NoteStoreOperations(),
//	        "getNote",
//	        []byte(`{"guid":"abc123","withContent":true}`),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    log.Println(note)
//	}
package routing
