package evernote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceUnmarshalText(t *testing.T) {
	testCases := []struct {
		in      string
		want    Service
		wantErr bool
	}{
		{in: "", want: Sandbox},
		{in: "SANDBOX", want: Sandbox},
		{in: "production", want: Production},
		{in: " Production ", want: Production},
		{in: "staging", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			var s Service
			err := s.UnmarshalText([]byte(tc.in))
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownService)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, s)
		})
	}
}

func TestServiceURLs(t *testing.T) {
	require.Equal(t, "https://sandbox.evernote.com/edam/user", Sandbox.UserStoreURL())
	require.Equal(t, "https://www.evernote.com/edam/user", Production.UserStoreURL())

	text, err := Production.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "PRODUCTION", string(text))

	_, err = Service(7).MarshalText()
	require.ErrorIs(t, err, ErrUnknownService)
	require.Equal(t, "Service(7)", Service(7).String())
}
