package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/chaeni-dev/ICT-INNO/internal/errors"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorAction
	}{
		{"nil", nil, ActionFail},
		{"cancelled", context.Canceled, ActionFail},
		{"deadline", context.DeadlineExceeded, ActionRetry},
		{"quota", errors.New("quota exceeded for project"), ActionFallback},
		{"billing", errors.New("billing hard limit reached"), ActionFallback},
		{"rate limit", errors.New("rate limit exceeded, retry later"), ActionRetry},
		{"server error", errors.New("500 internal server error"), ActionRetry},
		{"overloaded", errors.New("model is overloaded"), ActionRetry},
		{"connection", errors.New("connection refused"), ActionRetry},
		{"bad request", errors.New("400 bad request"), ActionFail},
		{"unauthorized", errors.New("invalid api key"), ActionFail},
		{"forbidden", errors.New("403 forbidden"), ActionFail},
		{"not found", errors.New("model not found"), ActionFail},
		{"unknown", errors.New("something odd happened"), ActionRetry},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClassifyError(c.err); got != c.want {
				t.Errorf("ClassifyError(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}

func TestClassifyErrorProviderStatusCode(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorAction
	}{
		{429, ActionRetry},
		{408, ActionRetry},
		{409, ActionRetry},
		{500, ActionRetry},
		{503, ActionRetry},
		{400, ActionFail},
		{401, ActionFail},
		{403, ActionFail},
		{404, ActionFail},
		{422, ActionFail},
	}

	for _, c := range cases {
		err := apperrors.NewProviderError("solar", c.status, errors.New("api error"))
		if got := ClassifyError(err); got != c.want {
			t.Errorf("status %d: got %v, want %v", c.status, got, c.want)
		}
	}

	// Status codes survive wrapping.
	wrapped := fmt.Errorf("generate: %w", apperrors.NewProviderError("solar", 401, errors.New("nope")))
	if got := ClassifyError(wrapped); got != ActionFail {
		t.Errorf("wrapped 401 = %v, want ActionFail", got)
	}
}

func TestErrorActionString(t *testing.T) {
	if ActionRetry.String() != "retry" || ActionFallback.String() != "fallback" || ActionFail.String() != "fail" {
		t.Error("unexpected ErrorAction string values")
	}
}
