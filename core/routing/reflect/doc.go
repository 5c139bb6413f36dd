// Package reflect dispatches REST calls to methods of a store client using Go
// reflection. A call names an operation and carries a JSON object whose keys are
// the operation's parameter names; the package finds the method, decodes every
// field into the declared parameter type and invokes it.
//
// Operation Names:
//
// Every exported method of the concrete store client is an operation. Its name is
// the Go method name with the first character lowered, so GetNote is served as
// "getNote". A client may publish different names by implementing FunctionNamer.
// Matching is exact and case-sensitive.
//
// Parameter Names:
//
// Go does not keep parameter names at run time, so the concrete client publishes
// them by implementing ParameterNamer, usually from a static table:
//
//	type NoteStoreClient struct { /* ... */ }
//
//	func (c *NoteStoreClient) GetNote(ctx context.Context, guid string, withContent bool) (*Note, error) {
//	    // Implementation
//	}
//
//	func (c *NoteStoreClient) ParameterNames(method string) []string {
//	    return map[string][]string{
//	        "GetNote": {"ctx", "guid", "withContent"},
//	    }[method]
//	}
//
// An operation without names can be listed but not dispatched; calling it fails
// with ErrParameterNamesNotFound.
//
// Concrete Clients:
//
// Targets are usually handed over through an interface, and may be decorated.
// A decorator implements StoreClientHolder to expose the client it wraps; Unwrap
// follows these links and the method is located and invoked on the concrete
// client.
//
// Parameter Types:
//
// ResolveParameterTypes classifies each declared parameter into a TypeTag:
//
//   - KindOrderedSequence: a slice whose element type is known, decoded element by
//     element from a JSON array.
//   - KindSet: a map[K]struct{}, decoded from a JSON array of keys.
//   - KindMap: any other map, decoded with the declared map type; the value type
//     is not inspected.
//   - KindScalar: everything else, including []any and map[any]struct{} whose
//     element type carries no information.
//
// Scalars implementing proto.Message are decoded with protojson; all other values
// with encoding/json. Parameters of type context.Context receive the dispatch
// context.
//
// Binding:
//
// A parameter whose name is missing from the JSON object is bound to nil, which
// becomes the zero value of its type at invocation. Keys that match no parameter
// are ignored.
//
// Example:
//
//	router := reflect.MustNewRouter(client)
//	note, err := router.Invoke(ctx, client, "getNote", []byte(`{"guid":"abc123","withContent":true}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Error Handling:
//
// Every failure returned by Call is a *resterr.Error. The kinds are
// ErrMethodNotFound (codes.NotFound), ErrParameterNamesNotFound (codes.Internal),
// ErrInvalidArgumentValue and ErrInvalidRequestBody (codes.InvalidArgument) and
// ErrInvocationFailed (codes.Unknown), all reachable with errors.Is.
package reflect
