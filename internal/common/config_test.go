package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MISTRAL_API_KEY", "")
	t.Setenv("MISTRAL_BASE_URL", "")
	t.Setenv("AI_TIMEOUT", "")
	t.Setenv("SUMMARY_ENABLED", "")

	cfg := LoadConfig()
	assert.Equal(t, "https://api.mistral.ai/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "mistral-large-latest", cfg.LLM.Model)
	assert.Equal(t, 90*time.Second, cfg.Pipeline.AITimeout)
	assert.True(t, cfg.Pipeline.SummaryEnabled)

	// missing API key is not fatal; extraction degrades to regex-only
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MISTRAL_API_KEY", "key-123")
	t.Setenv("MISTRAL_MODEL", "mistral-small-latest")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("SUMMARY_ENABLED", "false")

	cfg := LoadConfig()
	assert.Equal(t, "key-123", cfg.LLM.APIKey)
	assert.Equal(t, "mistral-small-latest", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.Pipeline.AITimeout)
	assert.False(t, cfg.Pipeline.SummaryEnabled)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "soonish")
	t.Setenv("SUMMARY_ENABLED", "perhaps")
	t.Setenv("MISTRAL_TEMPERATURE", "warm")

	cfg := LoadConfig()
	assert.Equal(t, 90*time.Second, cfg.Pipeline.AITimeout)
	assert.True(t, cfg.Pipeline.SummaryEnabled)
	assert.Equal(t, float32(0), cfg.LLM.Temperature)
}

func TestValidate(t *testing.T) {
	cfg := LoadConfig()
	cfg.Pipeline.AITimeout = 0
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.LLM.BaseURL = ""
	assert.Error(t, cfg.Validate())
}
