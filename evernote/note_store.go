package evernote

import "context"

// NoteStoreOperations are the note store calls served by the façade.
type NoteStoreOperations interface {
	GetSyncState(ctx context.Context) (*SyncState, error)

	ListNotebooks(ctx context.Context) ([]*Notebook, error)
	GetNotebook(ctx context.Context, guid string) (*Notebook, error)
	GetDefaultNotebook(ctx context.Context) (*Notebook, error)
	CreateNotebook(ctx context.Context, notebook *Notebook) (*Notebook, error)
	UpdateNotebook(ctx context.Context, notebook *Notebook) (int32, error)
	ExpungeNotebook(ctx context.Context, guid string) (int32, error)

	ListTags(ctx context.Context) ([]*Tag, error)
	ListTagsByNotebook(ctx context.Context, notebookGUID string) ([]*Tag, error)
	GetTag(ctx context.Context, guid string) (*Tag, error)
	CreateTag(ctx context.Context, tag *Tag) (*Tag, error)
	UpdateTag(ctx context.Context, tag *Tag) (int32, error)
	UntagAll(ctx context.Context, guid string) error
	ExpungeTag(ctx context.Context, guid string) (int32, error)

	ListSearches(ctx context.Context) ([]*SavedSearch, error)
	GetSearch(ctx context.Context, guid string) (*SavedSearch, error)
	CreateSearch(ctx context.Context, search *SavedSearch) (*SavedSearch, error)

	FindNotesMetadata(ctx context.Context, filter *NoteFilter, offset, maxNotes int32, resultSpec *NotesMetadataResultSpec) (*NotesMetadataList, error)
	FindNoteCounts(ctx context.Context, filter *NoteFilter, withTrash bool) (*NoteCollectionCounts, error)

	GetNote(ctx context.Context, guid string, withContent, withResourcesData, withResourcesRecognition, withResourcesAlternateData bool) (*Note, error)
	GetNoteContent(ctx context.Context, guid string) (string, error)
	GetNoteSearchText(ctx context.Context, guid string, noteOnly, tokenizeForIndexing bool) (string, error)
	GetNoteTagNames(ctx context.Context, guid string) ([]string, error)
	GetNoteApplicationData(ctx context.Context, guid string) (*LazyMap, error)
	SetNoteApplicationDataEntry(ctx context.Context, guid, key, value string) (int32, error)
	CreateNote(ctx context.Context, note *Note) (*Note, error)
	UpdateNote(ctx context.Context, note *Note) (*Note, error)
	DeleteNote(ctx context.Context, guid string) (int32, error)
	ExpungeNote(ctx context.Context, guid string) (int32, error)
	ExpungeNotes(ctx context.Context, noteGUIDs []string) (int32, error)
	CopyNote(ctx context.Context, noteGUID, toNotebookGUID string) (*Note, error)
	ListNoteVersions(ctx context.Context, noteGUID string) ([]*NoteVersionID, error)

	GetResource(ctx context.Context, guid string, withData, withRecognition, withAttributes, withAlternateData bool) (*Resource, error)

	ShareNote(ctx context.Context, guid string) (string, error)
	StopSharingNote(ctx context.Context, guid string) error
}

var noteStoreBindings = bindings{
	"GetSyncState": op("getSyncState"),

	"ListNotebooks":      op("listNotebooks"),
	"GetNotebook":        op("getNotebook", "guid"),
	"GetDefaultNotebook": op("getDefaultNotebook"),
	"CreateNotebook":     op("createNotebook", "notebook"),
	"UpdateNotebook":     op("updateNotebook", "notebook"),
	"ExpungeNotebook":    op("expungeNotebook", "guid"),

	"ListTags":           op("listTags"),
	"ListTagsByNotebook": op("listTagsByNotebook", "notebookGuid"),
	"GetTag":             op("getTag", "guid"),
	"CreateTag":          op("createTag", "tag"),
	"UpdateTag":          op("updateTag", "tag"),
	"UntagAll":           op("untagAll", "guid"),
	"ExpungeTag":         op("expungeTag", "guid"),

	"ListSearches": op("listSearches"),
	"GetSearch":    op("getSearch", "guid"),
	"CreateSearch": op("createSearch", "search"),

	"FindNotesMetadata": op("findNotesMetadata", "filter", "offset", "maxNotes", "resultSpec"),
	"FindNoteCounts":    op("findNoteCounts", "filter", "withTrash"),

	"GetNote":                     op("getNote", "guid", "withContent", "withResourcesData", "withResourcesRecognition", "withResourcesAlternateData"),
	"GetNoteContent":              op("getNoteContent", "guid"),
	"GetNoteSearchText":           op("getNoteSearchText", "guid", "noteOnly", "tokenizeForIndexing"),
	"GetNoteTagNames":             op("getNoteTagNames", "guid"),
	"GetNoteApplicationData":      op("getNoteApplicationData", "guid"),
	"SetNoteApplicationDataEntry": op("setNoteApplicationDataEntry", "guid", "key", "value"),
	"CreateNote":                  op("createNote", "note"),
	"UpdateNote":                  op("updateNote", "note"),
	"DeleteNote":                  op("deleteNote", "guid"),
	"ExpungeNote":                 op("expungeNote", "guid"),
	"ExpungeNotes":                op("expungeNotes", "noteGuids"),
	"CopyNote":                    op("copyNote", "noteGuid", "toNotebookGuid"),
	"ListNoteVersions":            op("listNoteVersions", "noteGuid"),

	"GetResource": op("getResource", "guid", "withData", "withRecognition", "withAttributes", "withAlternateData"),

	"ShareNote":       op("shareNote", "guid"),
	"StopSharingNote": op("stopSharingNote", "guid"),
}

var _ NoteStoreOperations = (*NoteStoreClient)(nil)

// NoteStoreClient calls the note store of one user on behalf of one access token.
type NoteStoreClient struct {
	c storeClient
}

// ParameterNames returns the declared parameter names of a Go method.
func (n *NoteStoreClient) ParameterNames(method string) []string {
	return noteStoreBindings.parameterNames(method)
}

// FunctionName returns the operation name of a Go method.
func (n *NoteStoreClient) FunctionName(method string) string {
	return noteStoreBindings.functionName(method)
}

func (n *NoteStoreClient) GetSyncState(ctx context.Context) (*SyncState, error) {
	return invoke[*SyncState](ctx, &n.c, "GetSyncState")
}

func (n *NoteStoreClient) ListNotebooks(ctx context.Context) ([]*Notebook, error) {
	return invoke[[]*Notebook](ctx, &n.c, "ListNotebooks")
}

func (n *NoteStoreClient) GetNotebook(ctx context.Context, guid string) (*Notebook, error) {
	return invoke[*Notebook](ctx, &n.c, "GetNotebook", guid)
}

func (n *NoteStoreClient) GetDefaultNotebook(ctx context.Context) (*Notebook, error) {
	return invoke[*Notebook](ctx, &n.c, "GetDefaultNotebook")
}

func (n *NoteStoreClient) CreateNotebook(ctx context.Context, notebook *Notebook) (*Notebook, error) {
	return invoke[*Notebook](ctx, &n.c, "CreateNotebook", notebook)
}

func (n *NoteStoreClient) UpdateNotebook(ctx context.Context, notebook *Notebook) (int32, error) {
	return invoke[int32](ctx, &n.c, "UpdateNotebook", notebook)
}

func (n *NoteStoreClient) ExpungeNotebook(ctx context.Context, guid string) (int32, error) {
	return invoke[int32](ctx, &n.c, "ExpungeNotebook", guid)
}

func (n *NoteStoreClient) ListTags(ctx context.Context) ([]*Tag, error) {
	return invoke[[]*Tag](ctx, &n.c, "ListTags")
}

func (n *NoteStoreClient) ListTagsByNotebook(ctx context.Context, notebookGUID string) ([]*Tag, error) {
	return invoke[[]*Tag](ctx, &n.c, "ListTagsByNotebook", notebookGUID)
}

func (n *NoteStoreClient) GetTag(ctx context.Context, guid string) (*Tag, error) {
	return invoke[*Tag](ctx, &n.c, "GetTag", guid)
}

func (n *NoteStoreClient) CreateTag(ctx context.Context, tag *Tag) (*Tag, error) {
	return invoke[*Tag](ctx, &n.c, "CreateTag", tag)
}

func (n *NoteStoreClient) UpdateTag(ctx context.Context, tag *Tag) (int32, error) {
	return invoke[int32](ctx, &n.c, "UpdateTag", tag)
}

// UntagAll removes the tag from every note that carries it.
func (n *NoteStoreClient) UntagAll(ctx context.Context, guid string) error {
	_, err := invoke[struct{}](ctx, &n.c, "UntagAll", guid)
	return err
}

func (n *NoteStoreClient) ExpungeTag(ctx context.Context, guid string) (int32, error) {
	return invoke[int32](ctx, &n.c, "ExpungeTag", guid)
}

func (n *NoteStoreClient) ListSearches(ctx context.Context) ([]*SavedSearch, error) {
	return invoke[[]*SavedSearch](ctx, &n.c, "ListSearches")
}

func (n *NoteStoreClient) GetSearch(ctx context.Context, guid string) (*SavedSearch, error) {
	return invoke[*SavedSearch](ctx, &n.c, "GetSearch", guid)
}

func (n *NoteStoreClient) CreateSearch(ctx context.Context, search *SavedSearch) (*SavedSearch, error) {
	return invoke[*SavedSearch](ctx, &n.c, "CreateSearch", search)
}

// FindNotesMetadata returns at most maxNotes notes matching filter, starting at
// offset, with the fields selected by resultSpec.
func (n *NoteStoreClient) FindNotesMetadata(
	ctx context.Context,
	filter *NoteFilter,
	offset, maxNotes int32,
	resultSpec *NotesMetadataResultSpec,
) (*NotesMetadataList, error) {
	return invoke[*NotesMetadataList](ctx, &n.c, "FindNotesMetadata", filter, offset, maxNotes, resultSpec)
}

func (n *NoteStoreClient) FindNoteCounts(ctx context.Context, filter *NoteFilter, withTrash bool) (*NoteCollectionCounts, error) {
	return invoke[*NoteCollectionCounts](ctx, &n.c, "FindNoteCounts", filter, withTrash)
}

func (n *NoteStoreClient) GetNote(
	ctx context.Context,
	guid string,
	withContent, withResourcesData, withResourcesRecognition, withResourcesAlternateData bool,
) (*Note, error) {
	return invoke[*Note](ctx, &n.c, "GetNote",
		guid, withContent, withResourcesData, withResourcesRecognition, withResourcesAlternateData)
}

func (n *NoteStoreClient) GetNoteContent(ctx context.Context, guid string) (string, error) {
	return invoke[string](ctx, &n.c, "GetNoteContent", guid)
}

func (n *NoteStoreClient) GetNoteSearchText(ctx context.Context, guid string, noteOnly, tokenizeForIndexing bool) (string, error) {
	return invoke[string](ctx, &n.c, "GetNoteSearchText", guid, noteOnly, tokenizeForIndexing)
}

func (n *NoteStoreClient) GetNoteTagNames(ctx context.Context, guid string) ([]string, error) {
	return invoke[[]string](ctx, &n.c, "GetNoteTagNames", guid)
}

func (n *NoteStoreClient) GetNoteApplicationData(ctx context.Context, guid string) (*LazyMap, error) {
	return invoke[*LazyMap](ctx, &n.c, "GetNoteApplicationData", guid)
}

func (n *NoteStoreClient) SetNoteApplicationDataEntry(ctx context.Context, guid, key, value string) (int32, error) {
	return invoke[int32](ctx, &n.c, "SetNoteApplicationDataEntry", guid, key, value)
}

func (n *NoteStoreClient) CreateNote(ctx context.Context, note *Note) (*Note, error) {
	return invoke[*Note](ctx, &n.c, "CreateNote", note)
}

func (n *NoteStoreClient) UpdateNote(ctx context.Context, note *Note) (*Note, error) {
	return invoke[*Note](ctx, &n.c, "UpdateNote", note)
}

// DeleteNote moves the note to the trash.
func (n *NoteStoreClient) DeleteNote(ctx context.Context, guid string) (int32, error) {
	return invoke[int32](ctx, &n.c, "DeleteNote", guid)
}

// ExpungeNote removes the note permanently.
func (n *NoteStoreClient) ExpungeNote(ctx context.Context, guid string) (int32, error) {
	return invoke[int32](ctx, &n.c, "ExpungeNote", guid)
}

func (n *NoteStoreClient) ExpungeNotes(ctx context.Context, noteGUIDs []string) (int32, error) {
	return invoke[int32](ctx, &n.c, "ExpungeNotes", noteGUIDs)
}

func (n *NoteStoreClient) CopyNote(ctx context.Context, noteGUID, toNotebookGUID string) (*Note, error) {
	return invoke[*Note](ctx, &n.c, "CopyNote", noteGUID, toNotebookGUID)
}

func (n *NoteStoreClient) ListNoteVersions(ctx context.Context, noteGUID string) ([]*NoteVersionID, error) {
	return invoke[[]*NoteVersionID](ctx, &n.c, "ListNoteVersions", noteGUID)
}

func (n *NoteStoreClient) GetResource(
	ctx context.Context,
	guid string,
	withData, withRecognition, withAttributes, withAlternateData bool,
) (*Resource, error) {
	return invoke[*Resource](ctx, &n.c, "GetResource",
		guid, withData, withRecognition, withAttributes, withAlternateData)
}

// ShareNote publishes the note and returns its share key.
func (n *NoteStoreClient) ShareNote(ctx context.Context, guid string) (string, error) {
	return invoke[string](ctx, &n.c, "ShareNote", guid)
}

func (n *NoteStoreClient) StopSharingNote(ctx context.Context, guid string) error {
	_, err := invoke[struct{}](ctx, &n.c, "StopSharingNote", guid)
	return err
}
