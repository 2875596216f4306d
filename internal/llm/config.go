// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy model switching and future multi-provider support.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// DefaultModel is the model used when no override is configured
const DefaultModel = "gemini-2.5-flash"

// RetryPolicy controls how rate-limited calls are retried.
// Only HTTP 429 responses are retried; any other failure is terminal.
type RetryPolicy struct {
	MaxRetries int           // Retries after the initial attempt
	BaseDelay  time.Duration // First backoff delay; doubles each retry
}

// DefaultRetryPolicy returns the standard policy: 5 retries with
// delays of 1s, 2s, 4s, 8s, 16s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 5,
		BaseDelay:  time.Second,
	}
}

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
	Retry    RetryPolicy
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultModel,
		Retry:    DefaultRetryPolicy(),
	}
}

// WithModel returns a new Config with the model replaced
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	if model != "" {
		newConfig.Model = model
	}
	return &newConfig
}
