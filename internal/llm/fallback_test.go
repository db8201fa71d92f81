package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/chaeni-dev/ICT-INNO/internal/errors"
)

// stubGenerator returns queued results in order, repeating the last one.
type stubGenerator struct {
	provider Provider
	outputs  []string
	errs     []error
	calls    int
	closed   bool
}

func (s *stubGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	i := s.calls
	if i >= len(s.errs) {
		i = len(s.errs) - 1
	}
	s.calls++
	if s.errs[i] != nil {
		return "", s.errs[i]
	}
	return s.outputs[i], nil
}

func (s *stubGenerator) Provider() Provider { return s.provider }

func (s *stubGenerator) Close() error {
	s.closed = true
	return nil
}

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestFallbackFirstProviderSucceeds(t *testing.T) {
	primary := &stubGenerator{provider: ProviderSolar, outputs: []string{"결과"}, errs: []error{nil}}
	secondary := &stubGenerator{provider: ProviderGemini, outputs: []string{"안 쓰임"}, errs: []error{nil}}

	f, err := NewFallbackGenerator([]Generator{primary, secondary}, fastRetry(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := f.Generate(context.Background(), "sys", "user")
	if err != nil {
		t.Fatal(err)
	}
	if got != "결과" {
		t.Errorf("output = %q", got)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.calls)
	}
}

func TestFallbackRetriesThenSucceeds(t *testing.T) {
	transient := errors.New("503 service unavailable")
	primary := &stubGenerator{provider: ProviderSolar, outputs: []string{"", "두번째 성공"}, errs: []error{transient, nil}}

	f, err := NewFallbackGenerator([]Generator{primary}, fastRetry(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := f.Generate(context.Background(), "sys", "user")
	if err != nil {
		t.Fatal(err)
	}
	if got != "두번째 성공" {
		t.Errorf("output = %q", got)
	}
	if primary.calls != 2 {
		t.Errorf("primary calls = %d, want 2", primary.calls)
	}
}

func TestFallbackAdvancesToNextProvider(t *testing.T) {
	transient := errors.New("connection refused")
	primary := &stubGenerator{provider: ProviderSolar, outputs: []string{""}, errs: []error{transient}}
	secondary := &stubGenerator{provider: ProviderGemini, outputs: []string{"대체 결과"}, errs: []error{nil}}

	f, err := NewFallbackGenerator([]Generator{primary, secondary}, fastRetry(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := f.Generate(context.Background(), "sys", "user")
	if err != nil {
		t.Fatal(err)
	}
	if got != "대체 결과" {
		t.Errorf("output = %q", got)
	}
	if primary.calls != 2 {
		t.Errorf("primary calls = %d, want retries exhausted first", primary.calls)
	}
}

func TestFallbackPermanentErrorAborts(t *testing.T) {
	permanent := apperrors.NewProviderError("solar", 401, errors.New("unauthorized"))
	primary := &stubGenerator{provider: ProviderSolar, outputs: []string{""}, errs: []error{permanent}}
	secondary := &stubGenerator{provider: ProviderGemini, outputs: []string{"안 쓰임"}, errs: []error{nil}}

	f, err := NewFallbackGenerator([]Generator{primary, secondary}, fastRetry(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.Generate(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected error")
	}
	if primary.calls != 1 {
		t.Errorf("primary calls = %d, want 1", primary.calls)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary called after permanent error")
	}
}

func TestFallbackAllProvidersFail(t *testing.T) {
	transient := errors.New("504 gateway timeout")
	primary := &stubGenerator{provider: ProviderSolar, outputs: []string{""}, errs: []error{transient}}
	secondary := &stubGenerator{provider: ProviderGemini, outputs: []string{""}, errs: []error{transient}}

	f, err := NewFallbackGenerator([]Generator{primary, secondary}, fastRetry(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = f.Generate(context.Background(), "sys", "user")
	if !errors.Is(err, apperrors.ErrProviderFailure) {
		t.Errorf("err = %v, want ErrProviderFailure", err)
	}
}

func TestFallbackClose(t *testing.T) {
	primary := &stubGenerator{provider: ProviderSolar, outputs: []string{""}, errs: []error{nil}}
	secondary := &stubGenerator{provider: ProviderGemini, outputs: []string{""}, errs: []error{nil}}

	f, err := NewFallbackGenerator([]Generator{primary, secondary}, fastRetry(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if !primary.closed || !secondary.closed {
		t.Error("not all generators closed")
	}

	if _, err := NewFallbackGenerator(nil, fastRetry(), nil, nil); err == nil {
		t.Error("expected error for empty chain")
	}
}
