package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/chaeni-dev/ICT-INNO/internal/errors"
)

// ErrorAction defines what to do with a failed completion call.
type ErrorAction int

const (
	// ActionRetry retries the same provider after backoff.
	ActionRetry ErrorAction = iota
	// ActionFallback moves on to the next provider.
	ActionFallback
	// ActionFail aborts the request (permanent error).
	ActionFail
)

// String returns a human-readable string for the error action.
func (a ErrorAction) String() string {
	switch a {
	case ActionRetry:
		return "retry"
	case ActionFallback:
		return "fallback"
	case ActionFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ClassifyError determines how a completion failure should be handled:
//   - transient errors (429, 5xx, network, timeout) → retry
//   - quota exhaustion → fallback to the next provider
//   - permanent errors (400, 401, 403, 404, 422) → fail
func ClassifyError(err error) ErrorAction {
	if err == nil {
		return ActionFail
	}

	if errors.Is(err, context.Canceled) {
		return ActionFail
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ActionRetry
	}

	var provErr *apperrors.ProviderError
	if errors.As(err, &provErr) && provErr.StatusCode > 0 {
		return classifyStatusCode(provErr.StatusCode)
	}

	errStr := strings.ToLower(err.Error())

	// Quota exhaustion is not going to heal within a request budget.
	if containsAny(errStr, "quota", "daily limit", "monthly limit", "billing") {
		return ActionFallback
	}

	if containsAny(errStr, "rate limit", "too many requests", "resource_exhausted", "429") {
		return ActionRetry
	}
	if containsAny(errStr, "unavailable", "503", "502", "500", "504",
		"internal server error", "bad gateway", "gateway timeout",
		"overloaded", "capacity") {
		return ActionRetry
	}
	if containsAny(errStr, "408", "409", "timeout", "deadline", "connection") {
		return ActionRetry
	}

	if containsAny(errStr, "400", "invalid", "bad request", "malformed") {
		return ActionFail
	}
	if containsAny(errStr, "401", "unauthorized", "unauthenticated", "invalid api key") {
		return ActionFail
	}
	if containsAny(errStr, "403", "forbidden", "permission denied") {
		return ActionFail
	}
	if containsAny(errStr, "404", "not found") {
		return ActionFail
	}
	if containsAny(errStr, "422", "unprocessable") {
		return ActionFail
	}

	// Unknown errors are treated as transient.
	return ActionRetry
}

func classifyStatusCode(statusCode int) ErrorAction {
	switch {
	case statusCode == http.StatusTooManyRequests,
		statusCode == http.StatusRequestTimeout,
		statusCode == http.StatusConflict:
		return ActionRetry
	case statusCode >= 500 && statusCode < 600:
		return ActionRetry
	case statusCode >= 400 && statusCode < 500:
		return ActionFail
	default:
		return ActionRetry
	}
}

// ShouldFallback reports whether the next provider should be tried.
func ShouldFallback(err error) bool {
	return ClassifyError(err) == ActionFallback
}

// IsPermanent reports whether the error should not be retried at all.
func IsPermanent(err error) bool {
	return ClassifyError(err) == ActionFail
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
