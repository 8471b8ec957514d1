// Package config provides environment-based configuration for the server.
package config

import (
	"os"
)

// Environment variable names for external collaborator configuration.
const (
	EnvSemanticSearchURL = "SEMANTIC_SEARCH_URL"
	EnvGeminiAPIKey      = "GEMINI_API_KEY"
	EnvResendAPIKey      = "RESEND_API_KEY"
	EnvFromAddress       = "OUTREACH_FROM_ADDRESS"
)

// Config holds the collaborator endpoints and credentials. Credentials may be
// absent; the features depending on them surface configuration errors per
// request instead of failing startup.
type Config struct {
	SemanticSearchURL string
	GeminiAPIKey      string
	ResendAPIKey      string
	FromAddress       string
}

// Load reads configuration from the environment. Callers load .env files
// beforehand if desired.
func Load() *Config {
	return &Config{
		SemanticSearchURL: getEnv(EnvSemanticSearchURL, "http://localhost:8000"),
		GeminiAPIKey:      getEnv(EnvGeminiAPIKey, ""),
		ResendAPIKey:      getEnv(EnvResendAPIKey, ""),
		FromAddress:       getEnv(EnvFromAddress, "noreply@resend.dev"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
