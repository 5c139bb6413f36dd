package evernote

// Timestamps are milliseconds since the Unix epoch.

// Data is a block of binary content together with its MD5 hash.
type Data struct {
	BodyHash []byte `json:"bodyHash,omitempty"`
	Size     int32  `json:"size,omitempty"`
	Body     []byte `json:"body,omitempty"`
}

// LazyMap holds application data of a note or resource. Depending on the call it
// carries only the keys or the full key/value map.
type LazyMap struct {
	KeysOnly []string          `json:"keysOnly,omitempty"`
	FullMap  map[string]string `json:"fullMap,omitempty"`
}

type NoteAttributes struct {
	SubjectDate       int64             `json:"subjectDate,omitempty"`
	Latitude          float64           `json:"latitude,omitempty"`
	Longitude         float64           `json:"longitude,omitempty"`
	Altitude          float64           `json:"altitude,omitempty"`
	Author            string            `json:"author,omitempty"`
	Source            string            `json:"source,omitempty"`
	SourceURL         string            `json:"sourceURL,omitempty"`
	SourceApplication string            `json:"sourceApplication,omitempty"`
	ShareDate         int64             `json:"shareDate,omitempty"`
	ReminderOrder     int64             `json:"reminderOrder,omitempty"`
	ReminderDoneTime  int64             `json:"reminderDoneTime,omitempty"`
	ReminderTime      int64             `json:"reminderTime,omitempty"`
	PlaceName         string            `json:"placeName,omitempty"`
	ContentClass      string            `json:"contentClass,omitempty"`
	ApplicationData   *LazyMap          `json:"applicationData,omitempty"`
	LastEditedBy      string            `json:"lastEditedBy,omitempty"`
	Classifications   map[string]string `json:"classifications,omitempty"`
}

type ResourceAttributes struct {
	SourceURL  string  `json:"sourceURL,omitempty"`
	Timestamp  int64   `json:"timestamp,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
	FileName   string  `json:"fileName,omitempty"`
	Attachment bool    `json:"attachment,omitempty"`
}

// Resource is a file attached to a note.
type Resource struct {
	GUID              string              `json:"guid,omitempty"`
	NoteGUID          string              `json:"noteGuid,omitempty"`
	Data              *Data               `json:"data,omitempty"`
	Mime              string              `json:"mime,omitempty"`
	Width             int16               `json:"width,omitempty"`
	Height            int16               `json:"height,omitempty"`
	Duration          int16               `json:"duration,omitempty"`
	Active            bool                `json:"active,omitempty"`
	Recognition       *Data               `json:"recognition,omitempty"`
	Attributes        *ResourceAttributes `json:"attributes,omitempty"`
	UpdateSequenceNum int32               `json:"updateSequenceNum,omitempty"`
	AlternateData     *Data               `json:"alternateData,omitempty"`
}

type Note struct {
	GUID              string          `json:"guid,omitempty"`
	Title             string          `json:"title,omitempty"`
	Content           string          `json:"content,omitempty"`
	ContentHash       []byte          `json:"contentHash,omitempty"`
	ContentLength     int32           `json:"contentLength,omitempty"`
	Created           int64           `json:"created,omitempty"`
	Updated           int64           `json:"updated,omitempty"`
	Deleted           int64           `json:"deleted,omitempty"`
	Active            bool            `json:"active,omitempty"`
	UpdateSequenceNum int32           `json:"updateSequenceNum,omitempty"`
	NotebookGUID      string          `json:"notebookGuid,omitempty"`
	TagGUIDs          []string        `json:"tagGuids,omitempty"`
	Resources         []*Resource     `json:"resources,omitempty"`
	Attributes        *NoteAttributes `json:"attributes,omitempty"`
	TagNames          []string        `json:"tagNames,omitempty"`
}

type Notebook struct {
	GUID              string `json:"guid,omitempty"`
	Name              string `json:"name,omitempty"`
	UpdateSequenceNum int32  `json:"updateSequenceNum,omitempty"`
	DefaultNotebook   bool   `json:"defaultNotebook,omitempty"`
	ServiceCreated    int64  `json:"serviceCreated,omitempty"`
	ServiceUpdated    int64  `json:"serviceUpdated,omitempty"`
	Stack             string `json:"stack,omitempty"`
}

type Tag struct {
	GUID              string `json:"guid,omitempty"`
	Name              string `json:"name,omitempty"`
	ParentGUID        string `json:"parentGuid,omitempty"`
	UpdateSequenceNum int32  `json:"updateSequenceNum,omitempty"`
}

type SavedSearch struct {
	GUID              string `json:"guid,omitempty"`
	Name              string `json:"name,omitempty"`
	Query             string `json:"query,omitempty"`
	Format            int32  `json:"format,omitempty"`
	UpdateSequenceNum int32  `json:"updateSequenceNum,omitempty"`
}

// NoteFilter restricts the notes returned by a search.
type NoteFilter struct {
	Order        int32    `json:"order,omitempty"`
	Ascending    bool     `json:"ascending,omitempty"`
	Words        string   `json:"words,omitempty"`
	NotebookGUID string   `json:"notebookGuid,omitempty"`
	TagGUIDs     []string `json:"tagGuids,omitempty"`
	Timezone     string   `json:"timezone,omitempty"`
	Inactive     bool     `json:"inactive,omitempty"`
	Emphasized   string   `json:"emphasized,omitempty"`
}

// NotesMetadataResultSpec selects the fields filled in NoteMetadata.
type NotesMetadataResultSpec struct {
	IncludeTitle               bool `json:"includeTitle,omitempty"`
	IncludeContentLength       bool `json:"includeContentLength,omitempty"`
	IncludeCreated             bool `json:"includeCreated,omitempty"`
	IncludeUpdated             bool `json:"includeUpdated,omitempty"`
	IncludeDeleted             bool `json:"includeDeleted,omitempty"`
	IncludeUpdateSequenceNum   bool `json:"includeUpdateSequenceNum,omitempty"`
	IncludeNotebookGUID        bool `json:"includeNotebookGuid,omitempty"`
	IncludeTagGUIDs            bool `json:"includeTagGuids,omitempty"`
	IncludeAttributes          bool `json:"includeAttributes,omitempty"`
	IncludeLargestResourceMime bool `json:"includeLargestResourceMime,omitempty"`
	IncludeLargestResourceSize bool `json:"includeLargestResourceSize,omitempty"`
}

type NoteMetadata struct {
	GUID                string          `json:"guid"`
	Title               string          `json:"title,omitempty"`
	ContentLength       int32           `json:"contentLength,omitempty"`
	Created             int64           `json:"created,omitempty"`
	Updated             int64           `json:"updated,omitempty"`
	Deleted             int64           `json:"deleted,omitempty"`
	UpdateSequenceNum   int32           `json:"updateSequenceNum,omitempty"`
	NotebookGUID        string          `json:"notebookGuid,omitempty"`
	TagGUIDs            []string        `json:"tagGuids,omitempty"`
	Attributes          *NoteAttributes `json:"attributes,omitempty"`
	LargestResourceMime string          `json:"largestResourceMime,omitempty"`
	LargestResourceSize int32           `json:"largestResourceSize,omitempty"`
}

type NotesMetadataList struct {
	StartIndex    int32           `json:"startIndex"`
	TotalNotes    int32           `json:"totalNotes"`
	Notes         []*NoteMetadata `json:"notes"`
	StopWords     []string        `json:"stopWords,omitempty"`
	SearchedWords []string        `json:"searchedWords,omitempty"`
	UpdateCount   int32           `json:"updateCount,omitempty"`
}

type NoteCollectionCounts struct {
	NotebookCounts map[string]int32 `json:"notebookCounts,omitempty"`
	TagCounts      map[string]int32 `json:"tagCounts,omitempty"`
	TrashCount     int32            `json:"trashCount,omitempty"`
}

type SyncState struct {
	CurrentTime     int64 `json:"currentTime"`
	FullSyncBefore  int64 `json:"fullSyncBefore"`
	UpdateCount     int32 `json:"updateCount"`
	Uploaded        int64 `json:"uploaded,omitempty"`
	UserLastUpdated int64 `json:"userLastUpdated,omitempty"`
}

type NoteVersionID struct {
	UpdateSequenceNum int32  `json:"updateSequenceNum"`
	Updated           int64  `json:"updated"`
	Saved             int64  `json:"saved"`
	Title             string `json:"title"`
	LastEditorID      int32  `json:"lastEditorId,omitempty"`
}

type User struct {
	ID        int32  `json:"id,omitempty"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
	Privilege int32  `json:"privilege,omitempty"`
	Created   int64  `json:"created,omitempty"`
	Updated   int64  `json:"updated,omitempty"`
	Deleted   int64  `json:"deleted,omitempty"`
	Active    bool   `json:"active,omitempty"`
	ShardID   string `json:"shardId,omitempty"`
}

type PublicUserInfo struct {
	UserID          int32  `json:"userId"`
	ServiceLevel    int32  `json:"serviceLevel,omitempty"`
	Username        string `json:"username,omitempty"`
	NoteStoreURL    string `json:"noteStoreUrl,omitempty"`
	WebAPIURLPrefix string `json:"webApiUrlPrefix,omitempty"`
}

type UserUrls struct {
	NoteStoreURL     string `json:"noteStoreUrl,omitempty"`
	WebAPIURLPrefix  string `json:"webApiUrlPrefix,omitempty"`
	UserStoreURL     string `json:"userStoreUrl,omitempty"`
	UtilityURL       string `json:"utilityUrl,omitempty"`
	MessageStoreURL  string `json:"messageStoreUrl,omitempty"`
	UserWebSocketURL string `json:"userWebSocketUrl,omitempty"`
}

type BootstrapSettings struct {
	ServiceHost             string `json:"serviceHost"`
	MarketingURL            string `json:"marketingUrl,omitempty"`
	SupportURL              string `json:"supportUrl,omitempty"`
	AccountEmailDomain      string `json:"accountEmailDomain,omitempty"`
	EnableFacebookSharing   bool   `json:"enableFacebookSharing,omitempty"`
	EnableGiftSubscriptions bool   `json:"enableGiftSubscriptions,omitempty"`
	EnableSupportTickets    bool   `json:"enableSupportTickets,omitempty"`
	EnableSharedNotebooks   bool   `json:"enableSharedNotebooks,omitempty"`
}

type BootstrapProfile struct {
	Name     string             `json:"name"`
	Settings *BootstrapSettings `json:"settings"`
}

// BootstrapInfo lists the service profiles a client may connect to.
type BootstrapInfo struct {
	Profiles []*BootstrapProfile `json:"profiles"`
}
