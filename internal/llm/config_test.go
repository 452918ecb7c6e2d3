package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_DisabledWithoutKey(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
}

func TestLoadConfig_KeyEnablesLiveCalls(t *testing.T) {
	t.Setenv("NEXUS_AI_API_KEY", "test-key")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "test-key", cfg.APIKey)
}

func TestLoadConfig_GeminiKeyFallback(t *testing.T) {
	t.Setenv("NEXUS_AI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gem-key")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "gem-key", cfg.APIKey)
}

func TestLoadConfig_ExplicitDisableWinsOverKey(t *testing.T) {
	t.Setenv("NEXUS_AI_API_KEY", "test-key")
	t.Setenv("NEXUS_AI_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("NEXUS_AI_TIMEOUT_MS", "9000")
	t.Setenv("NEXUS_AI_SUMMARIZE_TIMEOUT_MS", "4000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 4000, cfg.TaskTimeout(TaskSummarize))
	assert.Equal(t, 20000, cfg.TaskTimeout(TaskEmailDraft))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("NEXUS_AI_SUMMARIZE_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 15000, cfg.TaskTimeout(TaskSummarize))
}
