package evernote

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownService      = errors.New("unknown evernote service")
	ErrNoNoteStoreURL      = errors.New("note store url is not known")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
	ErrResponseMismatch    = errors.New("response id does not match request")
	ErrMalformedResponse   = errors.New("malformed store response")
	ErrUnknownOperation    = errors.New("unknown store operation")
	ErrNotAuthenticated    = errors.New("no access token")
	ErrUserException       = errors.New(string(UserException))
	ErrSystemException     = errors.New(string(SystemException))
	ErrNotFoundException   = errors.New(string(NotFoundException))
	ErrUnknownStoreFailure = errors.New("store failure")
)

// ExceptionType names the EDAM exception a store call failed with.
type ExceptionType string

const (
	UserException     ExceptionType = "EDAMUserException"
	SystemException   ExceptionType = "EDAMSystemException"
	NotFoundException ExceptionType = "EDAMNotFoundException"
)

// ErrorCode is the EDAM error code carried by user and system exceptions.
type ErrorCode string

const (
	Unknown              ErrorCode = "UNKNOWN"
	BadDataFormat        ErrorCode = "BAD_DATA_FORMAT"
	PermissionDenied     ErrorCode = "PERMISSION_DENIED"
	InternalError        ErrorCode = "INTERNAL_ERROR"
	DataRequired         ErrorCode = "DATA_REQUIRED"
	LimitReached         ErrorCode = "LIMIT_REACHED"
	QuotaReached         ErrorCode = "QUOTA_REACHED"
	InvalidAuth          ErrorCode = "INVALID_AUTH"
	AuthExpired          ErrorCode = "AUTH_EXPIRED"
	DataConflict         ErrorCode = "DATA_CONFLICT"
	ENMLValidation       ErrorCode = "ENML_VALIDATION"
	ShardUnavailable     ErrorCode = "SHARD_UNAVAILABLE"
	UnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"
	RateLimitReached     ErrorCode = "RATE_LIMIT_REACHED"
)

// Error is an exception raised by the store. It travels as the data member of a
// JSON-RPC error object.
type Error struct {
	Type      ExceptionType `json:"type"`
	ErrorCode ErrorCode     `json:"errorCode,omitempty"`
	Parameter string        `json:"parameter,omitempty"`
	Message   string        `json:"message,omitempty"`

	// NotFoundException only.
	Identifier string `json:"identifier,omitempty"`
	Key        string `json:"key,omitempty"`

	// Seconds to wait when ErrorCode is RATE_LIMIT_REACHED.
	RateLimitDuration int32 `json:"rateLimitDuration,omitempty"`
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Type))
	b.WriteByte('(')

	var fields []string
	if e.ErrorCode != "" {
		fields = append(fields, "errorCode:"+string(e.ErrorCode))
	}
	if e.Parameter != "" {
		fields = append(fields, "parameter:"+e.Parameter)
	}
	if e.Identifier != "" {
		fields = append(fields, "identifier:"+e.Identifier)
	}
	if e.Key != "" {
		fields = append(fields, "key:"+e.Key)
	}
	if e.Message != "" {
		fields = append(fields, "message:"+e.Message)
	}
	if e.RateLimitDuration != 0 {
		fields = append(fields, fmt.Sprintf("rateLimitDuration:%d", e.RateLimitDuration))
	}

	b.WriteString(strings.Join(fields, ", "))
	b.WriteByte(')')

	return b.String()
}

// Is matches the sentinel of the exception type.
func (e *Error) Is(target error) bool {
	switch e.Type {
	case UserException:
		return target == ErrUserException
	case SystemException:
		return target == ErrSystemException
	case NotFoundException:
		return target == ErrNotFoundException
	default:
		return target == ErrUnknownStoreFailure
	}
}
