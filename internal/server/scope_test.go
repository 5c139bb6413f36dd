package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopeFromRequest(t *testing.T) {
	const configToken = "config-token"

	allHeaders := map[string]string{
		HeaderAccessToken:     "header-token",
		HeaderNoteStoreURL:    "https://sandbox.evernote.com/shard/s1/notestore",
		HeaderWebAPIURLPrefix: "https://sandbox.evernote.com/shard/s1/",
		HeaderUserID:          "42",
	}

	testCases := []struct {
		name      string
		headers   map[string]string
		policy    TokenPolicy
		wantToken string
		wantURLs  bool
	}{
		{
			name:      "headers",
			headers:   allHeaders,
			policy:    TokenPolicy{Token: configToken},
			wantToken: "header-token",
			wantURLs:  true,
		},
		{
			name:      "always use config token ignores headers",
			headers:   allHeaders,
			policy:    TokenPolicy{Token: configToken, AlwaysUseTokenFromConfig: true},
			wantToken: configToken,
		},
		{
			name:      "fallback when header is absent",
			headers:   map[string]string{HeaderUserID: "42"},
			policy:    TokenPolicy{Token: configToken, FallbackToTokenFromConfig: true},
			wantToken: configToken,
		},
		{
			name:      "fallback does not replace a header token",
			headers:   map[string]string{HeaderAccessToken: "header-token"},
			policy:    TokenPolicy{Token: configToken, FallbackToTokenFromConfig: true},
			wantToken: "header-token",
		},
		{
			name:    "no token",
			headers: map[string]string{HeaderAccessToken: ""},
			policy:  TokenPolicy{Token: configToken},
		},
		{
			name: "partial store headers",
			headers: map[string]string{
				HeaderAccessToken:  "header-token",
				HeaderNoteStoreURL: "https://sandbox.evernote.com/shard/s1/notestore",
			},
			wantToken: "header-token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/noteStore/getNote", nil)
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}

			scope := ScopeFromRequest(r, tc.policy)
			require.Equal(t, tc.wantToken, scope.AccessToken)
			require.Equal(t, tc.wantURLs, scope.HasStoreURLs())
		})
	}
}
