package config

const (
	// DefaultServiceName is the service identity used in logs and /version
	DefaultServiceName = "fitquest"

	// DefaultVersion is used when no VERSION is injected at deploy time
	DefaultVersion = "dev"

	// DefaultGeminiModel is the model used for AI plan generation
	DefaultGeminiModel = "gemini-2.0-flash"
)
