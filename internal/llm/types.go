// Package llm generates promotional copy through chat completion APIs.
//
// Architecture:
//   - Solar (Upstage): primary provider, OpenAI-compatible API via
//     github.com/openai/openai-go/v3 with a custom base URL
//   - Gemini: optional fallback via google.golang.org/genai
//
// Fallback strategy: each provider is retried with exponential backoff on
// transient errors, then the next provider in the chain is tried.
package llm

import (
	"context"
	"time"
)

// Provider identifies a completion backend.
type Provider string

const (
	// ProviderSolar is Upstage's Solar API (OpenAI-compatible).
	ProviderSolar Provider = "solar"
	// ProviderGemini is Google's Gemini API.
	ProviderGemini Provider = "gemini"
)

// String returns the string representation of the provider.
func (p Provider) String() string {
	return string(p)
}

// copyTemperature balances variety in marketing copy against prompt
// adherence. Lower values produce near-identical copy across runs.
const copyTemperature = 0.65

// Generator produces a completion for a system prompt and user content.
type Generator interface {
	// Generate returns the raw model output text.
	Generate(ctx context.Context, system, user string) (string, error)
	// Provider returns the provider type for metrics.
	Provider() Provider
	// Close releases any resources held by the generator.
	Close() error
}

// RetryConfig defines retry behavior for completion calls.
// Uses AWS-recommended Full Jitter exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts per provider,
	// including the initial one.
	MaxAttempts int

	// InitialDelay is the base delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration
}

// Retry defaults.
const (
	DefaultMaxAttempts  = 2
	DefaultInitialDelay = 500 * time.Millisecond
	DefaultMaxDelay     = 3 * time.Second
)

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  DefaultMaxAttempts,
		InitialDelay: DefaultInitialDelay,
		MaxDelay:     DefaultMaxDelay,
	}
}
