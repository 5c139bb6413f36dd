package evernote

import "strings"

const defaultUserAgent = "evernote-rest"

// ConnectionFactory creates per-request connections to one environment for one
// registered application.
type ConnectionFactory struct {
	consumerKey    string
	consumerSecret string
	service        Service
	transport      Transport
	userStoreURL   string
}

// FactoryOption configures a ConnectionFactory.
type FactoryOption func(*ConnectionFactory)

// WithDefaultTransport sets the transport used by every connection of the factory.
func WithDefaultTransport(t Transport) FactoryOption {
	return func(f *ConnectionFactory) {
		f.transport = t
	}
}

// WithUserStoreURL overrides the user store endpoint derived from the service.
func WithUserStoreURL(url string) FactoryOption {
	return func(f *ConnectionFactory) {
		f.userStoreURL = url
	}
}

func NewConnectionFactory(consumerKey, consumerSecret string, service Service, opts ...FactoryOption) *ConnectionFactory {
	f := &ConnectionFactory{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		service:        service,
		userStoreURL:   service.UserStoreURL(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.transport == nil {
		f.transport = NewHTTPTransport(defaultUserAgent)
	}

	return f
}

func (f *ConnectionFactory) ConsumerKey() string {
	return f.consumerKey
}

// HasConsumerSecret reports whether the factory carries application credentials.
func (f *ConnectionFactory) HasConsumerSecret() bool {
	return f.consumerSecret != ""
}

func (f *ConnectionFactory) Service() Service {
	return f.service
}

// Option configures a single connection.
type Option func(*connectionOptions)

type connectionOptions struct {
	noteStoreURL    string
	webAPIURLPrefix string
	userID          string
	transport       Transport
}

// WithStoreURLs pins the note store endpoint and user identity instead of
// resolving them through the user store.
func WithStoreURLs(noteStoreURL, webAPIURLPrefix, userID string) Option {
	return func(o *connectionOptions) {
		o.noteStoreURL = noteStoreURL
		o.webAPIURLPrefix = webAPIURLPrefix
		o.userID = userID
	}
}

// WithTransport overrides the factory transport for one connection.
func WithTransport(t Transport) Option {
	return func(o *connectionOptions) {
		o.transport = t
	}
}

// Evernote is a connection bound to one access token. It is cheap to create and
// meant to live for a single request.
type Evernote struct {
	accessToken     string
	webAPIURLPrefix string
	userID          string
	noteStore       *NoteStoreClient
	userStore       *UserStoreClient
}

// Evernote returns a connection authenticated with accessToken.
func (f *ConnectionFactory) Evernote(accessToken string, opts ...Option) *Evernote {
	o := connectionOptions{transport: f.transport}
	for _, opt := range opts {
		opt(&o)
	}

	userStore := &UserStoreClient{c: storeClient{
		transport: o.transport,
		token:     accessToken,
		bindings:  userStoreBindings,
		endpoint:  fixedEndpoint(f.userStoreURL),
	}}

	noteStoreEndpoint := (&noteStoreLocator{userStore: userStore}).resolve
	if o.noteStoreURL != "" {
		noteStoreEndpoint = fixedEndpoint(o.noteStoreURL)
	}

	return &Evernote{
		accessToken:     accessToken,
		webAPIURLPrefix: strings.TrimSuffix(o.webAPIURLPrefix, "/"),
		userID:          o.userID,
		userStore:       userStore,
		noteStore: &NoteStoreClient{c: storeClient{
			transport: o.transport,
			token:     accessToken,
			bindings:  noteStoreBindings,
			endpoint:  noteStoreEndpoint,
		}},
	}
}

func (e *Evernote) NoteStoreOperations() NoteStoreOperations {
	return e.noteStore
}

func (e *Evernote) UserStoreOperations() UserStoreOperations {
	return e.userStore
}

// Authenticated reports whether the connection carries an access token.
func (e *Evernote) Authenticated() bool {
	return e.accessToken != ""
}

func (e *Evernote) WebAPIURLPrefix() string {
	return e.webAPIURLPrefix
}

func (e *Evernote) UserID() string {
	return e.userID
}
