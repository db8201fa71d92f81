package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	apperrors "github.com/chaeni-dev/ICT-INNO/internal/errors"
)

// GeminiGenerator is the fallback copy generator backed by Google's
// Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

// NewGeminiGenerator creates a Gemini-backed generator. Returns
// ErrMissingCredential when no API key is configured.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, log *slog.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingCredential
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if log == nil {
		log = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model, log: log}, nil
}

// Generate runs a single content generation and returns the output text.
func (g *GeminiGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](copyTemperature),
	}

	start := time.Now()
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), config)
	duration := time.Since(start)

	if err != nil {
		g.log.Warn("gemini completion failed",
			"model", g.model,
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return "", apperrors.NewProviderError(ProviderGemini.String(), 0, err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", apperrors.NewProviderError(ProviderGemini.String(), 0,
			fmt.Errorf("empty response from model %s", g.model))
	}

	g.log.Debug("gemini completion succeeded",
		"model", g.model,
		"duration_ms", duration.Milliseconds())
	return text, nil
}

// Provider returns the provider type for metrics.
func (g *GeminiGenerator) Provider() Provider {
	return ProviderGemini
}

// Close releases resources. The genai client needs no cleanup.
func (g *GeminiGenerator) Close() error {
	return nil
}
