// Package config provides centralized timeout constants for the application.
//
// These values are tuned around the two external dependencies on the request
// path: the weather provider (fast, degradable) and the completion provider
// (slow, the request's reason to exist).
//
// # Request budget
//
// A generation request spends its time roughly as:
//   - gazetteer/district resolution: microseconds, in-memory tables
//   - weather lookup: up to 2 attempts x WeatherRequest
//   - completion call: dominated by model latency, up to CompletionRequest
//
// The HTTP write timeout must cover the worst case of both providers plus
// serialization, hence GenerateHTTPWrite > 2*WeatherRequest + CompletionRequest.
package config

import "time"

// HTTP server timeouts
const (
	// GenerateHTTPRead is the HTTP server read timeout.
	// Request bodies are small JSON payloads, optionally with an inlined
	// base64 image, so a short read window is enough.
	GenerateHTTPRead = 15 * time.Second

	// GenerateHTTPWrite is the HTTP server write timeout.
	// Must accommodate the full generation pipeline plus response serialization.
	GenerateHTTPWrite = 120 * time.Second

	// GenerateHTTPIdle is the HTTP server idle timeout for keep-alive connections.
	GenerateHTTPIdle = 120 * time.Second
)

// Weather provider timeouts
const (
	// WeatherRequest is the timeout for a single weather lookup attempt.
	// wttr.in is usually sub-second but degrades badly under load, so each
	// attempt gets a hard abort before the retry against the default city.
	WeatherRequest = 15 * time.Second
)

// Completion provider timeouts
const (
	// CompletionRequest is the timeout for a single completion API call.
	// solar-pro generates four channel texts per request, which takes
	// materially longer than a chat turn.
	CompletionRequest = 60 * time.Second

	// LLMRetryInitial is the base delay before the first completion retry.
	LLMRetryInitial = 500 * time.Millisecond

	// LLMRetryMax is the maximum delay between completion retries.
	LLMRetryMax = 3 * time.Second
)

// Dataset timeouts
const (
	// SnapshotDownload is the timeout for downloading the festival dataset
	// snapshot from R2 at startup.
	SnapshotDownload = 30 * time.Second

	// SnapshotPoll is how often a running server checks R2 for a newer
	// festival dataset snapshot. The dataset changes at most a few times a
	// week, so a long interval keeps the R2 request count negligible.
	SnapshotPoll = 6 * time.Hour
)

// Graceful shutdown
const (
	// GracefulShutdown is the timeout for graceful server shutdown.
	// Allows in-flight requests to complete before forceful termination.
	GracefulShutdown = 30 * time.Second
)
