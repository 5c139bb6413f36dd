package reflect

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/anoideaopen/evernote-rest/core/resterr"
	"google.golang.org/grpc/codes"
)

// Call dispatches function on target with the named parameters of the JSON object
// body and returns the raw result of the operation.
//
// The process follows these steps:
//  1. Unwrap the target down to its concrete store client.
//  2. Locate the operation on the concrete type.
//  3. Bind the JSON fields to the parameters using the resolved type tags.
//  4. Invoke the method on the concrete client with the positional arguments.
//
// A trailing error result is stripped and, when non-nil, reported as a failure.
// With no other result Call returns nil, with one it returns that value and with
// several it returns them as []any.
//
// Every failure is a *resterr.Error; the underlying kind (ErrMethodNotFound,
// ErrParameterNamesNotFound, ErrInvalidArgumentValue, ErrInvalidRequestBody or
// ErrInvocationFailed) and the original cause remain reachable with errors.Is
// and errors.As.
//
// Example:
//
//	type Store struct{}
//
//	func (Store) Echo(value string) string { return value }
//	func (Store) ParameterNames(string) []string { return []string{"value"} }
//
//	func main() {
//	    out, err := Call(context.Background(), Store{}, "echo", []byte(`{"value":"hi"}`))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(out) // Output: hi
//	}
func Call(ctx context.Context, target any, function string, body []byte) (any, error) {
	concrete := Unwrap(target)

	d, err := Locate(concrete, function)
	if err != nil {
		return nil, resterr.Wrap(err, codes.NotFound,
			"Cannot find methodName=[%s] on [%s].", function, reflect.TypeOf(concrete))
	}

	if !d.Resolved() {
		return nil, resterr.Wrap(
			fmt.Errorf("%w: %s", ErrParameterNamesNotFound, d.Method.Name),
			codes.Internal,
			"Cannot find parameter names for method=[%s].", function,
		)
	}

	args, err := Bind(ctx, d.ParamNames, d.TypeTags, body)
	if err != nil {
		var valueErr ValueError
		if errors.As(err, &valueErr) {
			return nil, resterr.Wrap(err, codes.InvalidArgument,
				"Cannot parse part of the json for parameter=[%s]. json=[%s]", valueErr.Param(), valueErr.Fragment())
		}
		if errors.Is(err, ErrInvalidRequestBody) {
			return nil, resterr.Wrap(err, codes.InvalidArgument,
				"Cannot parse request body for method=[%s].", function)
		}
		return nil, resterr.Wrap(err, codes.Internal,
			"Cannot bind parameters for method=[%s].", function)
	}

	output, err := invoke(concrete, d, args)
	if err != nil {
		return nil, resterr.Wrap(
			fmt.Errorf("%w: %w", ErrInvocationFailed, err),
			codes.Unknown,
			"%s", err.Error(),
		)
	}

	switch len(output) {
	case 0:
		return nil, nil
	case 1:
		return output[0], nil
	default:
		return output, nil
	}
}

// invoke calls the method of d on concrete. Panics raised by the operation are
// returned as errors.
func invoke(concrete any, d *Descriptor, args []any) (output []any, err error) {
	in := make([]reflect.Value, len(args)+1)
	in[0] = reflect.ValueOf(concrete)
	for i, arg := range args {
		in[i+1] = argValue(arg, d.ParamTypes[i])
	}

	defer func() {
		if r := recover(); r != nil {
			output = nil
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic calling %s: %w", d.Method.Name, e)
				return
			}
			err = fmt.Errorf("panic calling %s: %v", d.Method.Name, r)
		}
	}()

	var results []reflect.Value
	if d.Method.Type.IsVariadic() {
		// The bound variadic argument is already a slice.
		results = d.Method.Func.CallSlice(in)
	} else {
		results = d.Method.Func.Call(in)
	}

	if d.ReturnsError {
		last := results[len(results)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error) //nolint:forcetypeassert
		}
		results = results[:len(results)-1]
	}

	output = make([]any, len(results))
	for i, res := range results {
		output[i] = res.Interface()
	}

	return output, nil
}

// argValue converts a bound argument into a reflect.Value of type t. A nil
// argument becomes the zero value of t, which is nil for pointers, slices, maps
// and interfaces.
func argValue(arg any, t reflect.Type) reflect.Value {
	if arg == nil {
		return reflect.Zero(t)
	}

	v := reflect.ValueOf(arg)
	if v.Type() != t && v.Type().ConvertibleTo(t) && !v.Type().AssignableTo(t) {
		return v.Convert(t)
	}

	return v
}
