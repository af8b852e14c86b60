package bootstrap

// Log messages for application startup and shutdown
const (
	LogMsgConfigLoaded               = "Configuration loaded"
	LogMsgStoreSeeded                = "Starter catalog seeded"
	LogMsgMetricsCollectorRegistered = "Event metrics collector registered"
	LogMsgPlannerLive                = "Planner using live generation backend"
	LogMsgPlannerFallback            = "Planner running in fallback-only mode"
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgServerStopped              = "Server stopped"
)

// Error message prefixes
const (
	ErrMsgFailedRegisterMetrics = "failed to register metrics collector"
)
