package reflect

import (
	"context"
	"errors"
	"testing"

	"github.com/anoideaopen/evernote-rest/core/resterr"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestCall(t *testing.T) {
	testCases := []struct {
		name     string
		function string
		body     string
		expected any
	}{
		{
			name:     "echo round trip",
			function: "echo",
			body:     `{"value":"hello, world"}`,
			expected: "hello, world",
		},
		{
			name:     "pointer result",
			function: "getNote",
			body:     `{"guid":"abc123","withContent":true}`,
			expected: &testNote{Guid: "abc123", Content: "<en-note/>"},
		},
		{
			name:     "absent bool is false at invocation",
			function: "getNote",
			body:     `{"guid":"abc123"}`,
			expected: &testNote{Guid: "abc123"},
		},
		{
			name:     "sequence result",
			function: "search",
			body:     `{"tags":["a","b","c"]}`,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "set argument",
			function: "tagged",
			body:     `{"tags":["a","b","b"]}`,
			expected: 2,
		},
		{
			name:     "absent slice is nil",
			function: "search",
			body:     `{}`,
			expected: []string(nil),
		},
		{
			name:     "error result only",
			function: "fail",
			body:     `{}`,
			expected: nil,
		},
		{
			name:     "no result",
			function: "nothing",
			body:     `{}`,
			expected: nil,
		},
		{
			name:     "several results",
			function: "pair",
			body:     `{"left":"x","right":7}`,
			expected: []any{"x", 7},
		},
		{
			name:     "variadic argument",
			function: "join",
			body:     `{"sep":",","parts":["a","b"]}`,
			expected: "a,b",
		},
		{
			name:     "absent variadic argument",
			function: "join",
			body:     `{"sep":","}`,
			expected: "",
		},
		{
			name:     "shared operation name",
			function: "same",
			body:     `{}`,
			expected: "alpha",
		},
		{
			name:     "renamed operation",
			function: "getNoteStoreUrl",
			body:     `{}`,
			expected: "https://sandbox.evernote.com/shard/s1/notestore",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var target any = &testStore{}
			switch tc.function {
			case "getNoteStoreUrl":
				target = renamedStore{}
			case "same":
				target = aliasedStore{}
			}

			out, err := Call(context.Background(), target, tc.function, []byte(tc.body))
			require.NoError(t, err)
			require.Equal(t, tc.expected, out)
		})
	}
}

func TestCallInvokesConcreteClient(t *testing.T) {
	store := &testStore{}

	out, err := Call(context.Background(), decorator{inner: store}, "getNote", []byte(`{"guid":"n1"}`))
	require.NoError(t, err)
	require.Equal(t, &testNote{Guid: "n1"}, out)
	require.Equal(t, 1, store.calls)
}

func TestCallPassesContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-7")

	out, err := Call(ctx, &testStore{}, "withContext", []byte(`{"id":"n1"}`))
	require.NoError(t, err)
	require.Equal(t, "req-7:n1", out)
}

func TestCallErrors(t *testing.T) {
	testCases := []struct {
		name     string
		target   any
		function string
		body     string
		code     codes.Code
		kind     error
		message  string
	}{
		{
			name:     "method not found",
			target:   &testStore{},
			function: "doesNotExist",
			body:     `{}`,
			code:     codes.NotFound,
			kind:     ErrMethodNotFound,
			message:  "Cannot find methodName=[doesNotExist] on [*reflect.testStore].",
		},
		{
			name:     "parameter names unavailable",
			target:   &testStore{},
			function: "unnamed",
			body:     `{"a":"x"}`,
			code:     codes.Internal,
			kind:     ErrParameterNamesNotFound,
			message:  "Cannot find parameter names for method=[unnamed].",
		},
		{
			name:     "deserialization failure",
			target:   &testStore{},
			function: "getNote",
			body:     `{"guid":"abc123","withContent":"yes"}`,
			code:     codes.InvalidArgument,
			kind:     ErrInvalidArgumentValue,
			message:  `Cannot parse part of the json for parameter=[withContent]. json=["yes"]`,
		},
		{
			name:     "body is not an object",
			target:   &testStore{},
			function: "getNote",
			body:     `["abc123"]`,
			code:     codes.InvalidArgument,
			kind:     ErrInvalidRequestBody,
			message:  "Cannot parse request body for method=[getNote].",
		},
		{
			name:     "operation error",
			target:   &testStore{},
			function: "getNote",
			body:     `{"guid":""}`,
			code:     codes.Unknown,
			kind:     ErrInvocationFailed,
			message:  errNoteNotFound.Error(),
		},
		{
			name:     "operation panic",
			target:   &testStore{},
			function: "explode",
			body:     `{}`,
			code:     codes.Unknown,
			kind:     ErrInvocationFailed,
			message:  "panic calling Explode: boom",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Call(context.Background(), tc.target, tc.function, []byte(tc.body))
			require.Nil(t, out)
			require.ErrorIs(t, err, tc.kind)

			var restErr *resterr.Error
			require.True(t, errors.As(err, &restErr))
			require.Equal(t, tc.code, restErr.Code)
			require.Equal(t, tc.message, restErr.Message)
		})
	}
}

func TestCallKeepsOperationError(t *testing.T) {
	_, err := Call(context.Background(), &testStore{}, "getNote", []byte(`{}`))
	require.ErrorIs(t, err, errNoteNotFound)
	require.ErrorIs(t, err, ErrInvocationFailed)
}
