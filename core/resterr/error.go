// Package resterr defines the single error kind the REST façade reports to its
// callers. Every dispatch failure, whatever its origin, is normalized into an
// *Error carrying a human-readable message, a status code and, when available,
// the error that caused it.
package resterr

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Error is the externally visible dispatch error.
type Error struct {
	Code    codes.Code
	Message string
	Cause   error
}

// New returns an Error without a cause.
func New(code codes.Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap returns an Error that keeps cause reachable through errors.Is and errors.As.
func Wrap(cause error, code codes.Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// From normalizes err into an *Error. Errors that already are (or wrap) an
// *Error are returned as is; anything else becomes codes.Unknown.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var restErr *Error
	if errors.As(err, &restErr) {
		return restErr
	}

	return Wrap(err, codes.Unknown, "%s", err.Error())
}

// Error returns the message followed by the cause, if any.
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error code onto an HTTP status code.
func (e *Error) HTTPStatus() int {
	return HTTPStatusFromCode(e.Code)
}

// HTTPStatusFromCode converts a gRPC status code into the corresponding HTTP
// response status, following the table grpc-gateway uses.
func HTTPStatusFromCode(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.Canceled:
		return 499 // client closed request
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.Unknown, codes.Internal, codes.DataLoss:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
