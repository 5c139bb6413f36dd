package reflect

import (
	"fmt"
	"reflect"
)

// StoreClientHolder is implemented by operation targets that front a concrete
// store client, such as decorators. The locator resolves methods on the client
// the holder returns.
type StoreClientHolder interface {
	StoreClient() any
}

// ParameterNamer is implemented by concrete store clients to publish the declared
// parameter names of their methods, since Go keeps no parameter names at run time.
// The names for a method must not depend on the receiver's state: they are read
// once per concrete type.
type ParameterNamer interface {
	// ParameterNames returns the names of the parameters of the Go method, in
	// declaration order, or nil when unknown.
	ParameterNames(method string) []string
}

// FunctionNamer is implemented by concrete store clients whose operation names
// differ from the default lower-first-character form of the Go method name.
type FunctionNamer interface {
	// FunctionName returns the operation name of the Go method, or "" to keep
	// the default.
	FunctionName(method string) string
}

// Descriptor holds the metadata of one operation of a concrete type.
type Descriptor struct {
	Function     string         // Operation name.
	Method       reflect.Method // Method of the concrete type; Func takes the receiver first.
	ParamNames   []string       // Declared parameter names, nil when unresolved.
	ParamTypes   []reflect.Type // Declared parameter types, receiver excluded.
	TypeTags     []TypeTag      // Resolved deserialization shapes, one per parameter.
	ReturnsError bool           // Whether the last result is an error.
}

// NumArgs returns the number of declared parameters.
func (d *Descriptor) NumArgs() int {
	return len(d.ParamTypes)
}

// Resolved reports whether parameter names are known for the operation.
func (d *Descriptor) Resolved() bool {
	return d.ParamNames != nil
}

// maxUnwrapDepth bounds the StoreClientHolder chain Unwrap follows.
const maxUnwrapDepth = 8

// Unwrap follows StoreClientHolder links from target down to the concrete store
// client backing it.
func Unwrap(target any) any {
	for i := 0; i < maxUnwrapDepth; i++ {
		holder, ok := target.(StoreClientHolder)
		if !ok {
			return target
		}

		next := holder.StoreClient()
		if next == nil {
			return target
		}
		target = next
	}

	return target
}

// Locate finds the operation named function on the concrete type of concrete.
// Matching is exact and case-sensitive.
func Locate(concrete any, function string) (*Descriptor, error) {
	if concrete == nil {
		return nil, fmt.Errorf("%w: %s: no target", ErrMethodNotFound, function)
	}

	d, ok := registryOf(concrete).lookup(function)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrMethodNotFound, function, reflect.TypeOf(concrete))
	}

	return d, nil
}
