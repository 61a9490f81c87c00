package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds the optional provider API keys loaded from environment.
// Google Cloud adapters authenticate through Application Default Credentials
// (GOOGLE_APPLICATION_CREDENTIALS) and need no key here.
type APIKeys struct {
	OpenAI string
	Gemini string
}

// LoadEnv loads environment variables from .env file if it exists
func LoadEnv() (string, error) {
	envPaths := []string{
		".env",
		".env.local",
	}

	// Missing files are fine, the environment might be set system-wide
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}

	return "", nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// Empty keys are allowed; a key that is present must have a plausible format.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}

	if apiKeys.OpenAI != "" {
		if err := ValidateAPIKey(apiKeys.OpenAI, "OpenAI"); err != nil {
			return nil, err
		}
	}

	if apiKeys.Gemini != "" {
		if err := ValidateAPIKey(apiKeys.Gemini, "Gemini"); err != nil {
			return nil, err
		}
	}

	return apiKeys, nil
}

// Available lists the providers whose keys are configured, for startup logging
func (k APIKeys) Available() []string {
	var available []string
	if k.OpenAI != "" {
		available = append(available, "OpenAI")
	}
	if k.Gemini != "" {
		available = append(available, "Gemini")
	}
	return available
}

// InitializeConfig loads .env files and then the configuration at path.
// This is the main entry point for configuration loading.
func InitializeConfig(path string) (*Config, error) {
	if _, err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}
