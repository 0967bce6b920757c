package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of completion task being performed.
type TaskType string

const (
	TaskClarify    TaskType = "clarify"    // clarifying questions for a topic
	TaskIdeate     TaskType = "ideate"     // draft a survey
	TaskRevise     TaskType = "revise"     // revise a draft or character list
	TaskNormalize  TaskType = "normalize"  // reshape free text into a delimited grammar
	TaskCharacters TaskType = "characters" // synthesize respondent profiles
	TaskSimulate   TaskType = "simulate"   // simulated survey responses
	TaskExtract    TaskType = "extract"    // extract summary/response rows for reporting
)

// Provider selects the completion backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// TaskConfig holds per-task completion parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the completion subsystem.
type Config struct {
	Provider   Provider
	APIKey     string // Gemini
	Endpoint   string // Ollama
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The Gemini
// provider is used when an API key is present, Ollama otherwise.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderOllama,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskClarify:    {Temperature: 0.4, MaxTokens: 1024, TimeoutMs: 20000},
			TaskIdeate:     {Temperature: 0.7, MaxTokens: 2048, TimeoutMs: 30000},
			TaskRevise:     {Temperature: 0.5, MaxTokens: 2048, TimeoutMs: 30000},
			TaskNormalize:  {Temperature: 0.1, MaxTokens: 2048, TimeoutMs: 20000},
			TaskCharacters: {Temperature: 0.8, MaxTokens: 2048, TimeoutMs: 30000},
			TaskSimulate:   {Temperature: 0.8, MaxTokens: 4096, TimeoutMs: 60000},
			TaskExtract:    {Temperature: 0.1, MaxTokens: 2048, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads completion configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Provider = ProviderGemini
		cfg.Model = "gemini-2.0-flash"
	}
	if v := os.Getenv("AUTOSCIENCE_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(v)
	}
	if v := os.Getenv("AUTOSCIENCE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("AUTOSCIENCE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("AUTOSCIENCE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("AUTOSCIENCE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("AUTOSCIENCE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	return cfg
}

// TaskTimeout returns the effective timeout for a task in milliseconds.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
