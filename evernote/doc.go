// Package evernote is a client of the Evernote note store and user store.
//
// A ConnectionFactory holds the application credentials and the environment
// (Sandbox or Production). For each request it hands out an Evernote connection
// bound to one access token, whose NoteStoreOperations and UserStoreOperations
// issue the store calls:
//
//	factory := evernote.NewConnectionFactory(key, secret, evernote.Sandbox)
//	conn := factory.Evernote(token)
//	note, err := conn.NoteStoreOperations().GetNote(ctx, guid, true, false, false, false)
//
// Calls are carried by a Transport; HTTPTransport speaks JSON-RPC 2.0 over HTTP,
// with the access token added to the params as "authenticationToken". Store
// exceptions come back as *Error and match ErrUserException,
// ErrSystemException or ErrNotFoundException with errors.Is.
//
// Unless WithStoreURLs pins it, the note store endpoint is looked up through
// the user store getNoteStoreUrl call the first time the note store is used.
//
// The concrete clients publish their parameter names and operation names, so the
// reflection router can dispatch JSON requests onto them.
package evernote
