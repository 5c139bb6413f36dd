package evernote

import (
	"context"
	"fmt"
	"sync"
)

const (
	ctxParam   = "ctx"
	tokenParam = "authenticationToken"
)

// binding describes one store operation of a client: its remote name and the
// declared parameter names of the Go method, context first.
type binding struct {
	function string
	params   []string
	auth     bool
}

// bindings is keyed by Go method name.
type bindings map[string]binding

func (b bindings) parameterNames(method string) []string {
	if bd, ok := b[method]; ok {
		return bd.params
	}
	return nil
}

func (b bindings) functionName(method string) string {
	return b[method].function
}

// op is a shorthand for bindings of operations that need the access token.
func op(function string, params ...string) binding {
	return binding{function: function, params: append([]string{ctxParam}, params...), auth: true}
}

// anonymous is a shorthand for bindings of operations callable without a token.
func anonymous(function string, params ...string) binding {
	b := op(function, params...)
	b.auth = false
	return b
}

// storeClient is the part shared by the note store and user store clients.
type storeClient struct {
	transport Transport
	token     string
	bindings  bindings
	endpoint  func(ctx context.Context) (string, error)
}

func fixedEndpoint(url string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		return url, nil
	}
}

// invoke calls the operation bound to the Go method with positional args, which
// follow the binding's parameter names after the context. The access token is
// added here and never taken from args.
func invoke[T any](ctx context.Context, c *storeClient, method string, args ...any) (T, error) {
	var out T

	b, ok := c.bindings[method]
	if !ok {
		return out, fmt.Errorf("%w: %s", ErrUnknownOperation, method)
	}

	names := b.params[1:]
	if len(names) != len(args) {
		return out, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrUnknownOperation, method, len(names), len(args))
	}

	params := make(map[string]any, len(args)+1)
	for i, name := range names {
		params[name] = args[i]
	}
	if b.auth {
		if c.token == "" {
			return out, fmt.Errorf("%w: %s", ErrNotAuthenticated, b.function)
		}
		params[tokenParam] = c.token
	}

	url, err := c.endpoint(ctx)
	if err != nil {
		return out, err
	}

	if err := c.transport.Call(ctx, url, b.function, params, &out); err != nil {
		return out, err
	}

	return out, nil
}

// noteStoreLocator resolves the note store URL through the user store on first
// use and keeps it for the lifetime of the connection.
type noteStoreLocator struct {
	mu        sync.Mutex
	url       string
	userStore *UserStoreClient
}

func (l *noteStoreLocator) resolve(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.url != "" {
		return l.url, nil
	}

	url, err := l.userStore.GetNoteStoreURL(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoNoteStoreURL, err)
	}
	if url == "" {
		return "", ErrNoNoteStoreURL
	}
	l.url = url

	return url, nil
}
