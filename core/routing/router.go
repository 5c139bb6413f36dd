package routing

import "context"

// Function is the externally visible name of a store operation, e.g. "getNote".
type Function = string

// Method describes an operation served by a Router.
type Method struct {
	Function   Function // Name callers use in the request path.
	MethodName string   // Go method invoked on the concrete store client.
	ParamNames []string // Declared parameter names, in declaration order.
	NumArgs    int      // Number of declared parameters (excluding the receiver).
	Resolved   bool     // Whether parameter names are known for the method.
}

// Router dispatches operation calls to a store target.
type Router interface {
	// Invoke calls function on target with the named parameters found in the
	// JSON object body. It returns the raw operation result.
	Invoke(ctx context.Context, target any, function Function, body []byte) (any, error)

	// Methods returns all operations the router serves, keyed by function name.
	Methods() map[Function]Method
}
