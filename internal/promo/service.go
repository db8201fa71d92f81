// Package promo orchestrates promotional copy generation: it resolves
// regional insight, live weather and active festivals for a store's
// location, builds the prompt and normalizes the model output into the
// per-channel response.
package promo

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chaeni-dev/ICT-INNO/internal/district"
	"github.com/chaeni-dev/ICT-INNO/internal/festival"
	"github.com/chaeni-dev/ICT-INNO/internal/insight"
	"github.com/chaeni-dev/ICT-INNO/internal/llm"
	"github.com/chaeni-dev/ICT-INNO/internal/localctx"
	"github.com/chaeni-dev/ICT-INNO/internal/metrics"
)

// Generation modes. Expert means a curated insight matched the location;
// general means the neighborhood fallback persona was used.
const (
	ModeExpert  = "EXPERT"
	ModeGeneral = "GENERAL"
)

// WeatherSource provides a weather summary line for a location.
type WeatherSource interface {
	Summary(ctx context.Context, location string) string
}

// FestivalSource provides festivals active at an instant.
type FestivalSource interface {
	ActiveFestivals(d district.Name, now time.Time) []festival.Festival
}

// Request carries the store input for one generation.
type Request struct {
	StoreName   string
	Location    string
	Description string
	HasImage    bool
	// IncludeTrends defaults to true when nil, matching the form's
	// checked-by-default behavior.
	IncludeTrends *bool
}

// UseTrends resolves the tri-state IncludeTrends flag.
func (r Request) UseTrends() bool {
	return r.IncludeTrends == nil || *r.IncludeTrends
}

// ChannelResult is one channel's copy in the results map.
type ChannelResult struct {
	Text     string   `json:"text"`
	Hashtags []string `json:"hashtags,omitempty"`
}

// Response is the complete generation result. The four channel fields are
// flattened at the top level and repeated in Results keyed by channel
// identifier, which is what the form's rendering expects.
type Response struct {
	Mode           string                   `json:"mode"`
	ContextSummary string                   `json:"contextSummary"`
	Feed           string                   `json:"feed"`
	Story          string                   `json:"story"`
	Map            string                   `json:"map"`
	SMS            string                   `json:"sms"`
	Results        map[string]ChannelResult `json:"results"`
}

// Service wires the resolution steps and the completion chain together.
type Service struct {
	generator llm.Generator
	weather   WeatherSource
	festivals FestivalSource
	log       *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewService creates the generation service. Weather and festival sources
// may be nil, in which case those prompt sections are skipped. Metrics
// may be nil.
func NewService(generator llm.Generator, weather WeatherSource, festivals FestivalSource, log *slog.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		generator: generator,
		weather:   weather,
		festivals: festivals,
		log:       log,
		metrics:   m,
		now:       time.Now,
	}
}

// Generate produces promotional copy for the request. Weather and
// festival resolution degrade silently; only a completion failure across
// every provider surfaces as an error.
func (s *Service) Generate(ctx context.Context, req Request) (*Response, error) {
	start := s.now()
	useTrends := req.UseTrends()

	match := insight.Match(req.Location)
	mode := ModeGeneral
	if match.Matched {
		mode = ModeExpert
	}
	if s.metrics != nil {
		s.metrics.RecordInsightMatch(match.Matched)
	}

	// Weather and festival resolution are independent lookups.
	var (
		weatherLine string
		festivals   []festival.Festival
	)
	g, gctx := errgroup.WithContext(ctx)
	if useTrends && s.weather != nil {
		g.Go(func() error {
			weatherLine = s.weather.Summary(gctx, req.Location)
			return nil
		})
	}
	if s.festivals != nil {
		g.Go(func() error {
			d, _ := district.Resolve(req.Location)
			festivals = s.festivals.ActiveFestivals(d, s.now())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var contextLine string
	if useTrends {
		contextLine = localctx.Compose(s.now(), weatherLine)
	}

	region := match.Key
	if !match.Matched {
		region = req.Location
	}
	system := llm.BuildSystemPrompt(llm.SystemPromptInput{
		Region:         region,
		TargetName:     match.Insight.TargetName,
		Persona:        match.Insight.Persona,
		Tone:           string(match.Insight.Tone),
		MarketingPoint: match.Insight.MarketingPoint,
		Hashtags:       match.Insight.Hashtags,
		ContextLine:    contextLine,
		Festivals:      festivalMentions(festivals),
	})
	user := llm.BuildUserContent(llm.UserContentInput{
		StoreName:   req.StoreName,
		Location:    req.Location,
		Description: req.Description,
		UseTrends:   useTrends,
		HasImage:    req.HasImage,
	})

	raw, err := s.generator.Generate(ctx, system, user)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordGenerate(mode, "error", time.Since(start).Seconds())
		}
		return nil, err
	}

	texts, structured := llm.Normalize(raw)
	if !structured {
		s.log.Warn("model output was not structured, serving raw text",
			"mode", mode, "output_length", len(raw))
	}

	if s.metrics != nil {
		s.metrics.RecordGenerate(mode, "success", time.Since(start).Seconds())
	}
	s.log.Info("copy generated",
		"mode", mode,
		"structured", structured,
		"festivals", len(festivals),
		"use_trends", useTrends,
		"duration_ms", time.Since(start).Milliseconds())

	return s.assemble(mode, match, contextLine, useTrends, texts), nil
}

func (s *Service) assemble(mode string, match insight.Result, contextLine string, useTrends bool, texts llm.ChannelTexts) *Response {
	summary := "지역 모드: 동네 추론 모드"
	if useTrends {
		summary = "트렌드 반영: " + contextLine
	} else if mode == ModeExpert {
		summary = "지역 모드: " + match.Key + " 인사이트 적용"
	}

	return &Response{
		Mode:           mode,
		ContextSummary: summary,
		Feed:           texts.Feed,
		Story:          texts.Story,
		Map:            texts.Map,
		SMS:            texts.SMS,
		Results: map[string]ChannelResult{
			"instagram_feed":  {Text: texts.Feed, Hashtags: match.Insight.Hashtags},
			"instagram_story": {Text: texts.Story},
			"map_review":      {Text: texts.Map},
			"sms":             {Text: texts.SMS},
		},
	}
}

func festivalMentions(festivals []festival.Festival) []llm.FestivalMention {
	mentions := make([]llm.FestivalMention, 0, len(festivals))
	for _, f := range festivals {
		mentions = append(mentions, llm.FestivalMention{
			Name:   f.Name,
			Place:  f.Place,
			Period: f.PeriodText,
		})
	}
	return mentions
}
