// Package weather fetches current conditions for a place name from
// wttr.in and renders them as a short Korean summary for prompt text.
// Lookups degrade instead of failing: a network or parse problem yields
// a canned preset so copy generation can always proceed.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/corpix/uarand"

	"github.com/chaeni-dev/ICT-INNO/internal/config"
	"github.com/chaeni-dev/ICT-INNO/internal/metrics"
	"github.com/chaeni-dev/ICT-INNO/internal/stringutil"
)

// defaultCity is the retry target when a specific place lookup fails.
const defaultCity = "Busan"

// presets season the failure message so it still reads like weather.
var presets = []string{"맑은", "쌀쌀한", "포근한", "후덥지근한", "보슬비 오는", "서늘한"}

// Config holds weather client settings. BaseURL points at a wttr.in-style
// endpoint; when OpenWeatherAPIKey is set the client talks the
// OpenWeatherMap current-weather API against the same base URL instead.
type Config struct {
	BaseURL           string
	OpenWeatherAPIKey string
	Timeout           time.Duration
}

// Client fetches current conditions from the configured provider.
type Client struct {
	baseURL    string
	owAPIKey   string
	httpClient *http.Client
	timeout    time.Duration
	log        *slog.Logger
	metrics    *metrics.Metrics
	pick       func(n int) int
}

// New creates a weather client. An empty base URL defaults to the public
// wttr.in endpoint; tests point it at a local server. Metrics may be nil.
func New(cfg Config, log *slog.Logger, m *metrics.Metrics) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		if cfg.OpenWeatherAPIKey != "" {
			baseURL = "https://api.openweathermap.org"
		} else {
			baseURL = "https://wttr.in"
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.WeatherRequest
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		owAPIKey:   cfg.OpenWeatherAPIKey,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		log:        log,
		metrics:    m,
		pick:       rand.IntN,
	}
}

// wttr.in j1 payload, reduced to the fields the summary uses.
type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

// Summary returns a short Korean weather line for the given free-text
// location, e.g. "맑음, 27도". It never returns an error: a failed lookup
// for the specific place retries the default city, and a total failure
// yields a preset tagged as such.
func (c *Client) Summary(ctx context.Context, location string) string {
	start := time.Now()
	query := sanitizeLocation(location)

	summary, err := c.fetch(ctx, query)
	source := "live"
	if err != nil && !strings.EqualFold(query, defaultCity) {
		c.log.Warn("weather lookup failed, retrying default city",
			"location", query, "error", err)
		summary, err = c.fetch(ctx, defaultCity)
		source = "default_city"
	}
	if err != nil {
		c.log.Warn("weather lookup failed", "location", query, "error", err)
		summary = fmt.Sprintf("%s 날씨 (API 연동 실패)", presets[c.pick(len(presets))])
		source = "preset"
	}

	if c.metrics != nil {
		c.metrics.RecordWeatherLookup(source, time.Since(start).Seconds())
	}
	return summary
}

func (c *Client) fetch(ctx context.Context, location string) (string, error) {
	if c.owAPIKey != "" {
		return c.fetchOpenWeather(ctx, location)
	}
	return c.fetchWttr(ctx, location)
}

func (c *Client) fetchWttr(ctx context.Context, location string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s?format=j1&lang=ko", c.baseURL, url.PathEscape(location))

	var payload wttrResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	if len(payload.CurrentCondition) == 0 || len(payload.CurrentCondition[0].WeatherDesc) == 0 {
		return "", fmt.Errorf("weather payload missing current condition")
	}

	current := payload.CurrentCondition[0]
	return fmt.Sprintf("%s, %s도", Translate(current.WeatherDesc[0].Value), current.TempC), nil
}

// OpenWeatherMap current-weather payload, reduced to the fields the
// summary uses. lang=kr makes the description Korean already.
type openWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func (c *Client) fetchOpenWeather(ctx context.Context, location string) (string, error) {
	endpoint := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=metric&lang=kr",
		c.baseURL, url.QueryEscape(location), url.QueryEscape(c.owAPIKey))

	var payload openWeatherResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	if len(payload.Weather) == 0 {
		return "", fmt.Errorf("weather payload missing conditions")
	}

	desc := payload.Weather[0].Description
	if desc == "" {
		desc = Translate(payload.Weather[0].Main)
	}
	return fmt.Sprintf("%s, %.1f도", desc, payload.Main.Temp), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", uarand.GetRandom())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode weather: %w", err)
	}
	return nil
}

// sanitizeLocation reduces free-text input to something wttr.in can
// geocode: the part before any "/", stripped of punctuation. Empty input
// falls back to the default city.
func sanitizeLocation(location string) string {
	clean, _, _ := strings.Cut(location, "/")
	clean = stringutil.StripToPlaceName(strings.TrimSpace(clean))
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return defaultCity
	}
	return clean
}
