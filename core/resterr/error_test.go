package resterr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

var errBackend = errors.New("backend exploded")

func TestErrorMessage(t *testing.T) {
	err := New(codes.NotFound, "Cannot find methodName=[%s] on [%s].", "doesNotExist", "*evernote.UserStoreClient")
	require.Equal(t, "Cannot find methodName=[doesNotExist] on [*evernote.UserStoreClient].", err.Error())
	require.NoError(t, err.Unwrap())

	wrapped := Wrap(errBackend, codes.Unknown, "invoking %s", "getNote")
	require.Equal(t, "invoking getNote: backend exploded", wrapped.Error())
	require.ErrorIs(t, wrapped, errBackend)
}

func TestFrom(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		require.Nil(t, From(nil))
	})

	t.Run("plain error becomes unknown", func(t *testing.T) {
		err := From(errBackend)
		require.Equal(t, codes.Unknown, err.Code)
		require.ErrorIs(t, err, errBackend)
	})

	t.Run("wrapped rest error is kept", func(t *testing.T) {
		inner := New(codes.InvalidArgument, "bad json")
		err := From(fmt.Errorf("dispatch: %w", inner))
		require.Same(t, inner, err)
	})
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		code     codes.Code
		expected int
	}{
		{codes.OK, http.StatusOK},
		{codes.InvalidArgument, http.StatusBadRequest},
		{codes.NotFound, http.StatusNotFound},
		{codes.Unauthenticated, http.StatusUnauthorized},
		{codes.PermissionDenied, http.StatusForbidden},
		{codes.Internal, http.StatusInternalServerError},
		{codes.Unknown, http.StatusInternalServerError},
		{codes.Unavailable, http.StatusServiceUnavailable},
		{codes.DeadlineExceeded, http.StatusGatewayTimeout},
	}

	for _, tc := range testCases {
		t.Run(tc.code.String(), func(t *testing.T) {
			require.Equal(t, tc.expected, New(tc.code, "x").HTTPStatus())
		})
	}
}
