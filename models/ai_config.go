package models

import (
	"os"
	"time"
)

// AIConfig holds configuration for the Gemini insight client.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// DefaultAIConfig reads AI configuration from the environment. A missing key
// is not an error: the journal runs fully without insight generation.
func DefaultAIConfig() *AIConfig {
	config := &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   os.Getenv("LLM_MODEL"),
		BaseURL: os.Getenv("LLM_BASE_URL"),
		Timeout: 45 * time.Second,
	}

	if config.Model == "" {
		config.Model = "gemini-2.5-flash-lite"
	}
	if config.BaseURL == "" {
		config.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if timeoutStr := os.Getenv("LLM_TIMEOUT"); timeoutStr != "" {
		if d, err := time.ParseDuration(timeoutStr); err == nil {
			config.Timeout = d
		}
	}

	return config
}

// Enabled reports whether insight generation is configured.
func (c *AIConfig) Enabled() bool {
	return c.APIKey != ""
}
