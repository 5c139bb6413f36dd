package evernote

import "context"

// EDAM protocol version spoken by this client.
const (
	EDAMVersionMajor int16 = 1
	EDAMVersionMinor int16 = 28
)

// UserStoreOperations are the user store calls served by the façade.
type UserStoreOperations interface {
	CheckVersion(ctx context.Context, clientName string, edamVersionMajor, edamVersionMinor int16) (bool, error)
	GetBootstrapInfo(ctx context.Context, locale string) (*BootstrapInfo, error)
	GetUser(ctx context.Context) (*User, error)
	GetPublicUserInfo(ctx context.Context, username string) (*PublicUserInfo, error)
	GetNoteStoreURL(ctx context.Context) (string, error)
	GetUserUrls(ctx context.Context) (*UserUrls, error)
	RevokeLongSession(ctx context.Context) error
}

var userStoreBindings = bindings{
	"CheckVersion":      anonymous("checkVersion", "clientName", "edamVersionMajor", "edamVersionMinor"),
	"GetBootstrapInfo":  anonymous("getBootstrapInfo", "locale"),
	"GetUser":           op("getUser"),
	"GetPublicUserInfo": anonymous("getPublicUserInfo", "username"),
	"GetNoteStoreURL":   op("getNoteStoreUrl"),
	"GetUserUrls":       op("getUserUrls"),
	"RevokeLongSession": op("revokeLongSession"),
}

var _ UserStoreOperations = (*UserStoreClient)(nil)

// UserStoreClient calls the user store of an environment.
type UserStoreClient struct {
	c storeClient
}

// ParameterNames returns the declared parameter names of a Go method.
func (u *UserStoreClient) ParameterNames(method string) []string {
	return userStoreBindings.parameterNames(method)
}

// FunctionName returns the operation name of a Go method.
func (u *UserStoreClient) FunctionName(method string) string {
	return userStoreBindings.functionName(method)
}

// CheckVersion reports whether the store accepts clients of the given protocol
// version.
func (u *UserStoreClient) CheckVersion(ctx context.Context, clientName string, edamVersionMajor, edamVersionMinor int16) (bool, error) {
	return invoke[bool](ctx, &u.c, "CheckVersion", clientName, edamVersionMajor, edamVersionMinor)
}

func (u *UserStoreClient) GetBootstrapInfo(ctx context.Context, locale string) (*BootstrapInfo, error) {
	return invoke[*BootstrapInfo](ctx, &u.c, "GetBootstrapInfo", locale)
}

func (u *UserStoreClient) GetUser(ctx context.Context) (*User, error) {
	return invoke[*User](ctx, &u.c, "GetUser")
}

func (u *UserStoreClient) GetPublicUserInfo(ctx context.Context, username string) (*PublicUserInfo, error) {
	return invoke[*PublicUserInfo](ctx, &u.c, "GetPublicUserInfo", username)
}

// GetNoteStoreURL returns the note store endpoint of the authenticated user.
func (u *UserStoreClient) GetNoteStoreURL(ctx context.Context) (string, error) {
	return invoke[string](ctx, &u.c, "GetNoteStoreURL")
}

func (u *UserStoreClient) GetUserUrls(ctx context.Context) (*UserUrls, error) {
	return invoke[*UserUrls](ctx, &u.c, "GetUserUrls")
}

func (u *UserStoreClient) RevokeLongSession(ctx context.Context) error {
	_, err := invoke[struct{}](ctx, &u.c, "RevokeLongSession")
	return err
}
