package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingNoteIDKey     = "note_id"
	LoggingNoteLengthKey = "note_length"
	LoggingNotesCountKey = "notes_count"
	LoggingStatusKey     = "status"
	LoggingLimitKey      = "limit"
	LoggingCacheHitKey   = "cache_hit"
	LoggingElapsedMsKey  = "elapsed_ms"
)
