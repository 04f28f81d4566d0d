package constants

// Context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Planner defaults. These are the fallback values compiled into the binary;
// the effective values come from core/config and can be overridden per
// deployment (PLANNER_* env vars).
const (
	DefaultWorkdayStartHour   = 9
	DefaultWorkdayEndHour     = 17
	DefaultMinimumDurationMin = 75
	DefaultBufferTimeMin      = 15
	DefaultPreferredTime      = "morning"
)

// Preferred-time buckets (hour of day, half-open ranges)
const (
	MorningStartHour   = 6
	MorningEndHour     = 12
	AfternoonStartHour = 12
	AfternoonEndHour   = 18
	EveningStartHour   = 18
	EveningEndHour     = 23
)

// Session settings
const (
	SessionMaxAgeHours      = 8  // in_progress sessions older than this are swept to abandoned
	SuggestionRetentionDays = 30 // schedule history kept this long before the nightly purge
)

// Cache
const (
	SuggestionCacheTTLSeconds = 300
)

// Asynq task types
const (
	TaskSessionArchive = "session:archive"
)
