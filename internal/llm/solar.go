package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	apperrors "github.com/chaeni-dev/ICT-INNO/internal/errors"
)

// SolarGenerator calls Upstage's Solar chat completions API. Solar is
// OpenAI-compatible, so the OpenAI client is pointed at the Upstage base
// URL instead of api.openai.com.
type SolarGenerator struct {
	client openai.Client
	model  string
	log    *slog.Logger
}

// NewSolarGenerator creates a Solar-backed generator.
func NewSolarGenerator(apiKey, baseURL, model string, log *slog.Logger) (*SolarGenerator, error) {
	if apiKey == "" {
		return nil, apperrors.ErrMissingCredential
	}
	if baseURL == "" {
		baseURL = "https://api.upstage.ai/v1"
	}
	if model == "" {
		model = "solar-pro"
	}
	if log == nil {
		log = slog.Default()
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &SolarGenerator{client: client, model: model, log: log}, nil
}

// Generate runs a single chat completion and returns the raw output text.
func (g *SolarGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(copyTemperature),
	}

	start := time.Now()
	resp, err := g.client.Chat.Completions.New(ctx, params)
	duration := time.Since(start)

	if err != nil {
		statusCode := 0
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			statusCode = apiErr.StatusCode
		}
		g.log.Warn("solar completion failed",
			"model", g.model,
			"status", statusCode,
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return "", apperrors.NewProviderError(ProviderSolar.String(), statusCode, err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewProviderError(ProviderSolar.String(), 0,
			fmt.Errorf("empty response from model %s", g.model))
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	g.log.Debug("solar completion succeeded",
		"model", g.model,
		"input_tokens", resp.Usage.PromptTokens,
		"output_tokens", resp.Usage.CompletionTokens,
		"duration_ms", duration.Milliseconds())
	return content, nil
}

// Provider returns the provider type for metrics.
func (g *SolarGenerator) Provider() Provider {
	return ProviderSolar
}

// Close releases resources. The OpenAI client needs no cleanup.
func (g *SolarGenerator) Close() error {
	return nil
}
