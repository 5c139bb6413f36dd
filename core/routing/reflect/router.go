package reflect

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/anoideaopen/evernote-rest/core/resterr"
	"github.com/anoideaopen/evernote-rest/core/routing"
	"google.golang.org/grpc/codes"
)

// ErrNoTarget is returned when a router is created without a prototype target.
var ErrNoTarget = errors.New("no target")

// Router routes operation calls to store targets based on reflection.
type Router struct {
	registry *registry
	methods  map[routing.Function]routing.Method
}

// NewRouter creates a new Router for targets of the same concrete type as
// prototype. The operation table is built once, here, and shared by every
// request.
func NewRouter(prototype any) (*Router, error) {
	concrete := Unwrap(prototype)
	if concrete == nil {
		return nil, ErrNoTarget
	}

	reg := registryOf(concrete)
	methods := make(map[routing.Function]routing.Method, len(reg.descriptors))
	for function, d := range reg.descriptors {
		methods[function] = routing.Method{
			Function:   function,
			MethodName: d.Method.Name,
			ParamNames: d.ParamNames,
			NumArgs:    d.NumArgs(),
			Resolved:   d.Resolved(),
		}
	}

	return &Router{
		registry: reg,
		methods:  methods,
	}, nil
}

// MustNewRouter creates a new Router instance with the given prototype and panics
// if an error occurs.
func MustNewRouter(prototype any) *Router {
	r, err := NewRouter(prototype)
	if err != nil {
		panic(err)
	}

	return r
}

// Invoke calls function on target with the named parameters in body. target must
// unwrap to the concrete type the router was built for.
func (r *Router) Invoke(ctx context.Context, target any, function routing.Function, body []byte) (any, error) {
	if t := reflect.TypeOf(Unwrap(target)); t != r.registry.typ {
		return nil, resterr.Wrap(
			fmt.Errorf("%w: got %v, want %v", ErrTargetMismatch, t, r.registry.typ),
			codes.Internal,
			"Cannot invoke methodName=[%s] on [%v].", function, t,
		)
	}

	return Call(ctx, target, function, body)
}

// Methods retrieves a map of all available operations, keyed by function name.
func (r *Router) Methods() map[routing.Function]routing.Method {
	return r.methods
}

// Functions returns the operation names in sorted order.
func (r *Router) Functions() []routing.Function {
	return r.registry.functions
}

// String returns the concrete type the router was built for.
func (r *Router) String() string {
	return fmt.Sprintf("reflect.Router(%s)", r.registry.typ)
}
