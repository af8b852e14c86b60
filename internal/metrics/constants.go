package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameXPGranted          = "xp_granted_total"
	MetricNameLevelUps           = "character_level_ups_total"
	MetricNameCharactersCreated  = "characters_created_total"
	MetricNameChallengeJoins     = "challenge_joins_total"
	MetricNameChallengeLeaves    = "challenge_leaves_total"
	MetricNameQuestsCreated      = "quests_created_total"
	MetricNameUsersRegistered    = "users_registered_total"
	MetricNamePlansGenerated     = "ai_plans_generated_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextXPGranted         = "Total XP granted to characters"
	HelpTextLevelUps          = "Total number of character level ups"
	HelpTextCharactersCreated = "Total number of characters created"
	HelpTextChallengeJoins    = "Total number of challenge joins"
	HelpTextChallengeLeaves   = "Total number of challenge leaves"
	HelpTextQuestsCreated     = "Total number of quests created"
	HelpTextUsersRegistered   = "Total number of users registered"
	HelpTextPlansGenerated    = "Total number of AI plans generated"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelClass    = "class"
	LabelTier     = "tier"
	LabelPlanType = "plan_type"
	LabelFallback = "fallback"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
