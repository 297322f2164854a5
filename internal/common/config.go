package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	LLM      LLMConfig
	Pipeline PipelineConfig
}

// LLMConfig holds AI-collaborator configuration
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	VisionModel string
	Temperature float32
	Timeout     time.Duration
}

// PipelineConfig holds extraction pipeline behavior flags
type PipelineConfig struct {
	AITimeout      time.Duration // budget for the AI call before degrading to regex-only
	SummaryEnabled bool          // generate contract summaries
	SummaryTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			APIKey:      getEnv("MISTRAL_API_KEY", ""),
			BaseURL:     getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),
			Model:       getEnv("MISTRAL_MODEL", "mistral-large-latest"),
			VisionModel: getEnv("MISTRAL_VISION_MODEL", "pixtral-12b"),
			Temperature: getEnvAsFloat32("MISTRAL_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("MISTRAL_TIMEOUT", 60*time.Second),
		},
		Pipeline: PipelineConfig{
			AITimeout:      getEnvAsDuration("AI_TIMEOUT", 90*time.Second),
			SummaryEnabled: getEnvAsBool("SUMMARY_ENABLED", true),
			SummaryTimeout: getEnvAsDuration("SUMMARY_TIMEOUT", 60*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration. A missing API key is not fatal:
// extraction degrades to the regex-only path.
func (c *Config) Validate() error {
	if c.Pipeline.AITimeout <= 0 {
		return NewAppError("CONFIG_ERROR", "AI_TIMEOUT must be positive", ErrInvalidInput)
	}
	if c.LLM.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "MISTRAL_BASE_URL is required", ErrInvalidInput)
	}
	return nil
}
