package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chaeni-dev/ICT-INNO/internal/config"
	apperrors "github.com/chaeni-dev/ICT-INNO/internal/errors"
	"github.com/chaeni-dev/ICT-INNO/internal/metrics"
)

// FallbackGenerator tries a chain of generators in order. Each generator
// gets retried on transient errors before the chain advances; a permanent
// error aborts the whole request since every provider would reject the
// same input.
type FallbackGenerator struct {
	generators []Generator
	retry      RetryConfig
	log        *slog.Logger
	metrics    *metrics.Metrics
}

// NewFallbackGenerator builds a chain from the given generators. At least
// one generator is required. Metrics may be nil.
func NewFallbackGenerator(generators []Generator, retry RetryConfig, log *slog.Logger, m *metrics.Metrics) (*FallbackGenerator, error) {
	if len(generators) == 0 {
		return nil, errors.New("llm: at least one generator is required")
	}
	if retry.MaxAttempts < 1 {
		retry = DefaultRetryConfig()
	}
	if log == nil {
		log = slog.Default()
	}
	return &FallbackGenerator{
		generators: generators,
		retry:      retry,
		log:        log,
		metrics:    m,
	}, nil
}

// Generate runs the chain and returns the first successful output.
func (f *FallbackGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	var lastErr error

	for i, gen := range f.generators {
		provider := gen.Provider().String()

		var output string
		err := WithRetry(ctx, f.retry,
			func(attempt int, err error) {
				f.log.Warn("completion retry",
					"provider", provider,
					"attempt", attempt,
					"error", err)
			},
			func() error {
				callCtx, cancel := context.WithTimeout(ctx, config.CompletionRequest)
				defer cancel()

				start := time.Now()
				text, err := gen.Generate(callCtx, system, user)
				duration := time.Since(start).Seconds()

				if f.metrics != nil {
					status := "success"
					if err != nil {
						status = "error"
					}
					f.metrics.RecordCompletion(provider, status, duration)
				}
				if err != nil {
					return err
				}
				output = text
				return nil
			})
		if err == nil {
			return output, nil
		}
		lastErr = err

		if IsPermanent(err) || ctx.Err() != nil {
			return "", err
		}

		if i < len(f.generators)-1 {
			next := f.generators[i+1].Provider().String()
			f.log.Warn("completion provider exhausted, falling back",
				"from", provider,
				"to", next,
				"error", err)
			if f.metrics != nil {
				f.metrics.RecordCompletionFallback(provider, next)
			}
		}
	}

	return "", fmt.Errorf("%w: all providers failed: %w", apperrors.ErrProviderFailure, lastErr)
}

// Provider returns the primary provider in the chain.
func (f *FallbackGenerator) Provider() Provider {
	return f.generators[0].Provider()
}

// Close closes every generator in the chain, returning the first error.
func (f *FallbackGenerator) Close() error {
	var errs []error
	for _, gen := range f.generators {
		if err := gen.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
