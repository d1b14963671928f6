package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
)

const (
	ResourceNotes      = "notes"
	ResourceExtraction = "extraction"
)

const (
	MongoCollectionMedicalNotes = "medical_notes"
)

// Medical note lifecycle statuses. A note is inserted as PROCESSING and
// moves to COMPLETED or FAILED exactly once.
const (
	NoteStatusPending    = "PENDING"
	NoteStatusProcessing = "PROCESSING"
	NoteStatusCompleted  = "COMPLETED"
	NoteStatusFailed     = "FAILED"
)

const (
	NoteSourceAPI = "api"
)

const (
	RedisKeyExtractionPrefix = "extraction:text:"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	DefaultRecentNotesLimit = 10
	MaxRecentNotesLimit     = 100
	DefaultAnalyticsDays    = 30
	DefaultSearchPageSize   = 20
	MaxSearchPageSize       = 100
)

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)
