package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// GeminiAPIKey enables live AI plan generation. When empty the planner
	// serves its built-in fallback plans.
	GeminiAPIKey string
	GeminiModel  string

	// SeedData controls whether the starter catalog is loaded at boot
	SeedData bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		ServiceName:  getEnv("SERVICE_NAME", DefaultServiceName),
		Version:      getEnv("VERSION", DefaultVersion),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", DefaultGeminiModel),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	seedStr := getEnv("SEED_DATA", "true")
	seed, err := strconv.ParseBool(seedStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DATA value: %w", err)
	}
	cfg.SeedData = seed

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
