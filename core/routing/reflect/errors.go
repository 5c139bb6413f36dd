package reflect

import (
	"errors"
	"fmt"
	"reflect"
)

// Error types.
var (
	ErrMethodNotFound         = errors.New("method not found")
	ErrParameterNamesNotFound = errors.New("parameter names not found")
	ErrInvalidArgumentValue   = errors.New("invalid argument value")
	ErrInvalidRequestBody     = errors.New("invalid request body")
	ErrInvocationFailed       = errors.New("invocation failed")
	ErrTargetMismatch         = errors.New("target type mismatch")
)

// ValueError reports a JSON fragment that could not be decoded into the type
// resolved for a named parameter.
type ValueError struct {
	external error
	internal error
	param    string
	fragment string
	t        string
}

// NewValueError constructs an error for a parameter whose JSON fragment could not
// be decoded into t. errOrNil is the decoder error, if any.
func NewValueError(param string, fragment []byte, t reflect.Type, errOrNil error) error {
	return ValueError{
		external: errOrNil,
		internal: ErrInvalidArgumentValue,
		param:    param,
		fragment: string(fragment),
		t:        t.String(),
	}
}

// Error returns a formatted error message indicating the conversion failure.
func (e ValueError) Error() string {
	if e.external == nil {
		return fmt.Sprintf("%v: parameter '%s': '%s': for type '%s'", e.internal, e.param, e.fragment, e.t)
	}

	return fmt.Sprintf("%v: parameter '%s': '%s': for type '%s': '%v'", e.internal, e.param, e.fragment, e.t, e.external)
}

// Param returns the name of the parameter that failed to decode.
func (e ValueError) Param() string {
	return e.param
}

// Fragment returns the offending JSON fragment.
func (e ValueError) Fragment() string {
	return e.fragment
}

// Is checks if the target error matches the internal error.
func (e ValueError) Is(target error) bool {
	return e.internal == target
}

// Unwrap returns the external error, if any.
func (e ValueError) Unwrap() error {
	return e.external
}
