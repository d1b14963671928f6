package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must be a valid timestamp",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNoteNotFound                  = "note not found"
	ErrClientExtractionFailed              = "failed to extract medical codes from the provided text"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "Validation failed"
	ErrDevInvalidInput               = "Invalid input"
	ErrDevCannotParseJSON            = "Cannot parse JSON body"
	ErrDevCannotMarshalJSON          = "Cannot marshal JSON"
	ErrDevCannotParseQueryParam      = "Cannot parse query parameter '%s'"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded"
	ErrDevURLParamIDValidationFailed = "URL parameter '%s' failed validation"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBFailedToAggregate        = "MongoDB failed to run aggregation"
	ErrDevDBFailedToCountDocuments   = "MongoDB failed to count documents"
	ErrDevDBStringNotObjectID        = "Given string is not a valid ObjectID"
	ErrDevNoteNotFound               = "Medical note does not exist"

	ErrDevRedisSet       = "Redis failed to set key"
	ErrDevRedisGetNoData = "Redis failed to get data with key: %s"
	ErrDevRedisDelete    = "Redis failed to delete key"

	ErrDevOpenAIBuildRequest   = "Failed to build OpenAI request"
	ErrDevOpenAISendRequest    = "Failed to send request to OpenAI"
	ErrDevOpenAICompletion     = "OpenAI completion request failed"
	ErrDevOpenAIEmptyChoices   = "OpenAI response contains no choices"
	ErrDevOpenAIInvalidPayload = "OpenAI completion content is not a valid extraction payload"
	ErrDevOpenAIMissingAPIKey  = "OPENAI_API_KEY is not configured"
)
