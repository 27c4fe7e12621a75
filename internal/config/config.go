// Package config builds the service configuration from environment
// variables once at startup. Handlers receive it explicitly; there are
// no ambient globals.
package config

import (
	"fmt"
	"os"
)

const defaultModel = "gemini-2.0-flash"

// Config holds all runtime configuration for the repo agent.
type Config struct {
	Port         string
	DatabaseURL  string
	GeminiAPIKey string
	GeminiModel  string

	// AllowOrigins is the CORS allow-list: the production frontend and
	// local development.
	AllowOrigins []string
}

// Load reads environment variables and returns a validated Config.
// DATABASE_URL is allowed to be absent: the service still boots and the
// persistence endpoints report the missing configuration per request.
func Load() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Config{
		Port:         port,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: apiKey,
		GeminiModel:  model,
		AllowOrigins: []string{
			"https://interim.quest",
			"http://localhost:3000",
		},
	}, nil
}
