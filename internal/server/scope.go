package server

import (
	"net/http"

	"github.com/anoideaopen/evernote-rest/evernote"
)

// Request headers carrying the caller's Evernote identity.
const (
	HeaderAccessToken     = "evernote-rest-accesstoken"
	HeaderNoteStoreURL    = "evernote-rest-notestoreurl"
	HeaderWebAPIURLPrefix = "evernote-rest-webapiurlprefix"
	HeaderUserID          = "evernote-rest-userid"
)

// TokenPolicy decides which access token a request runs with.
type TokenPolicy struct {
	Token                     string
	AlwaysUseTokenFromConfig  bool
	FallbackToTokenFromConfig bool
}

// Scope is the Evernote identity of one request.
type Scope struct {
	AccessToken     string
	NoteStoreURL    string
	WebAPIURLPrefix string
	UserID          string
}

// ScopeFromRequest reads the request headers under policy. An empty header
// counts as absent.
func ScopeFromRequest(r *http.Request, policy TokenPolicy) Scope {
	if policy.AlwaysUseTokenFromConfig {
		return Scope{AccessToken: policy.Token}
	}

	s := Scope{
		AccessToken:     r.Header.Get(HeaderAccessToken),
		NoteStoreURL:    r.Header.Get(HeaderNoteStoreURL),
		WebAPIURLPrefix: r.Header.Get(HeaderWebAPIURLPrefix),
		UserID:          r.Header.Get(HeaderUserID),
	}
	if s.AccessToken == "" && policy.FallbackToTokenFromConfig {
		s.AccessToken = policy.Token
	}

	return s
}

// HasStoreURLs reports whether the request pinned the note store endpoint. All
// three headers must be present.
func (s Scope) HasStoreURLs() bool {
	return s.NoteStoreURL != "" && s.WebAPIURLPrefix != "" && s.UserID != ""
}

// Connect opens the request's connection.
func (s Scope) Connect(factory *evernote.ConnectionFactory) *evernote.Evernote {
	if s.HasStoreURLs() {
		return factory.Evernote(s.AccessToken, evernote.WithStoreURLs(s.NoteStoreURL, s.WebAPIURLPrefix, s.UserID))
	}
	return factory.Evernote(s.AccessToken)
}
