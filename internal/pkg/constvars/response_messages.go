package constvars

// Success messages
const (
	ExtractCodesSuccessMessage    = "Successfully extracted medical codes"
	GetRecentNotesSuccessMessage  = "Successfully retrieved recent notes"
	GetNoteSuccessMessage         = "Successfully retrieved note"
	SearchNotesSuccessMessage     = "Successfully searched notes"
	GetExtractionStatsMessage     = "Successfully retrieved extraction statistics"
	GetCommonCodesSuccessMessage  = "Successfully retrieved common codes"
	RootWelcomeMessage            = "Welcome to Rinova API"
	ResponseUnknown               = "unknown"
	HealthOverallStatusOnline     = "online"
	HealthServiceMongoDBName      = "mongodb"
	HealthServiceOpenAIName       = "openai"
)
