package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingScheduleKey means RAPIDAPI_KEY is unset. The CLI cannot query trains without it.
var ErrMissingScheduleKey = errors.New("RAPIDAPI_KEY is not set; add it to your environment or a .env file")

// Secrets are the API credentials supplied out-of-band
type Secrets struct {
	ScheduleAPIKey  string
	ScheduleAPIHost string

	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string
}

// LoadSecrets reads credentials from the environment, after loading a .env
// file from the working directory if one exists.
func LoadSecrets() Secrets {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	return Secrets{
		ScheduleAPIKey:  os.Getenv("RAPIDAPI_KEY"),
		ScheduleAPIHost: getEnv("RAPIDAPI_HOST", "irctc1.p.rapidapi.com"),
		LLMAPIKey:       os.Getenv("GROQ_API_KEY"),
		LLMBaseURL:      getEnv("GROQ_BASE_URL", "https://api.groq.com/openai"),
		LLMModel:        getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
	}
}

// RequireScheduleKey fails when the schedule API key is missing.
func (s Secrets) RequireScheduleKey() error {
	if s.ScheduleAPIKey == "" {
		return ErrMissingScheduleKey
	}
	return nil
}

// HasLLM reports whether an LLM provider key is configured.
func (s Secrets) HasLLM() bool {
	return s.LLMAPIKey != ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
