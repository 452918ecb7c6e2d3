package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of assistant task being performed.
type TaskType string

const (
	TaskEmailDraft TaskType = "email_draft"
	TaskSummarize  TaskType = "summarize"
	TaskNextAction TaskType = "next_action"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// AIConfig holds all configuration for the AI subsystem.
type AIConfig struct {
	Enabled    bool
	LogCalls   bool
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an AIConfig with sensible defaults. Without an
// API key the assistant runs in demo mode.
func DefaultConfig() AIConfig {
	return AIConfig{
		Enabled:    false,
		LogCalls:   false,
		Model:      "gemini-2.5-flash",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskEmailDraft: {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 20000},
			TaskSummarize:  {Temperature: 0.3, MaxTokens: 512, TimeoutMs: 15000},
			TaskNextAction: {Temperature: 0.5, MaxTokens: 256, TimeoutMs: 10000},
		},
	}
}

// LoadConfig reads AI configuration from environment variables, falling
// back to defaults for any unset values. A key in either NEXUS_AI_API_KEY
// or GEMINI_API_KEY enables live calls; NEXUS_AI_ENABLED overrides.
func LoadConfig() AIConfig {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("NEXUS_AI_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	cfg.Enabled = cfg.APIKey != ""

	if v := os.Getenv("NEXUS_AI_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b && cfg.APIKey != ""
		}
	}
	if v := os.Getenv("NEXUS_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("NEXUS_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("NEXUS_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("NEXUS_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskEmailDraft, "NEXUS_AI_EMAIL_DRAFT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSummarize, "NEXUS_AI_SUMMARIZE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskNextAction, "NEXUS_AI_NEXT_ACTION_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c AIConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *AIConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
