package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Generation pipeline metrics
	GenerateRequestsTotal   *prometheus.CounterVec
	GenerateDurationSeconds prometheus.Histogram

	// Gazetteer metrics
	InsightMatchesTotal *prometheus.CounterVec

	// Weather adapter metrics
	WeatherLookupsTotal   *prometheus.CounterVec
	WeatherDurationSeconds prometheus.Histogram

	// Festival index metrics
	FestivalCacheSize    prometheus.Gauge
	FestivalRowsDropped  prometheus.Counter
	FestivalLookupsTotal *prometheus.CounterVec

	// Completion provider metrics
	CompletionRequestsTotal   *prometheus.CounterVec
	CompletionDurationSeconds *prometheus.HistogramVec
	CompletionFallbacksTotal  *prometheus.CounterVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitDropsTotal prometheus.Counter
	RateLimitActiveKeys prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		GenerateRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_generate_requests_total",
				Help: "Total number of generation requests by mode and status",
			},
			[]string{"mode", "status"}, // mode: expert, general; status: success, error
		),

		GenerateDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "promo_generate_duration_seconds",
				Help:    "End-to-end generation request duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60, 90}, // Dominated by completion latency
			},
		),

		InsightMatchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_insight_matches_total",
				Help: "Total number of gazetteer lookups by outcome",
			},
			[]string{"outcome"}, // outcome: matched, fallback
		),

		WeatherLookupsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_weather_lookups_total",
				Help: "Total number of weather lookups by result source",
			},
			[]string{"source"}, // source: live, default_city, preset
		),

		WeatherDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "promo_weather_duration_seconds",
				Help:    "Weather lookup duration in seconds including retries",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 15, 30}, // Matches 15s per-attempt timeout
			},
		),

		FestivalCacheSize: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "promo_festival_cache_size",
				Help: "Number of festival records with a parsable date range in the cache",
			},
		),

		FestivalRowsDropped: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "promo_festival_rows_dropped_total",
				Help: "Total number of dataset rows dropped for unparsable period strings",
			},
		),

		FestivalLookupsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_festival_lookups_total",
				Help: "Total number of active-festival lookups by outcome",
			},
			[]string{"outcome"}, // outcome: hit, miss
		),

		CompletionRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_completion_requests_total",
				Help: "Total number of completion API calls by provider and status",
			},
			[]string{"provider", "status"}, // provider: solar, gemini; status: success, error
		),

		CompletionDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "promo_completion_duration_seconds",
				Help:    "Completion API call duration in seconds by provider",
				Buckets: []float64{1, 2, 5, 10, 20, 30, 60}, // Matches 60s call timeout
			},
			[]string{"provider"},
		),

		CompletionFallbacksTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_completion_fallbacks_total",
				Help: "Total number of provider fallbacks by from/to provider",
			},
			[]string{"from", "to"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "promo_http_errors_total",
				Help: "Total HTTP errors by type",
			},
			[]string{"error_type"}, // error_type: method_not_allowed, bad_request, generation_failed
		),

		RateLimitDropsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "promo_ratelimit_drops_total",
				Help: "Total number of requests rejected by the per-client rate limiter",
			},
		),

		RateLimitActiveKeys: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "promo_ratelimit_active_keys",
				Help: "Number of client buckets currently tracked by the rate limiter",
			},
		),
	}

	return m
}

// RecordGenerate records a completed generation request.
func (m *Metrics) RecordGenerate(mode, status string, duration float64) {
	m.GenerateRequestsTotal.WithLabelValues(mode, status).Inc()
	m.GenerateDurationSeconds.Observe(duration)
}

// RecordInsightMatch records a gazetteer lookup outcome.
func (m *Metrics) RecordInsightMatch(matched bool) {
	outcome := "fallback"
	if matched {
		outcome = "matched"
	}
	m.InsightMatchesTotal.WithLabelValues(outcome).Inc()
}

// RecordWeatherLookup records a weather lookup with its result source.
func (m *Metrics) RecordWeatherLookup(source string, duration float64) {
	m.WeatherLookupsTotal.WithLabelValues(source).Inc()
	m.WeatherDurationSeconds.Observe(duration)
}

// SetFestivalCacheSize updates the festival cache size gauge.
func (m *Metrics) SetFestivalCacheSize(n int) {
	m.FestivalCacheSize.Set(float64(n))
}

// RecordFestivalRowDropped counts a dataset row dropped during load.
func (m *Metrics) RecordFestivalRowDropped() {
	m.FestivalRowsDropped.Inc()
}

// RecordFestivalLookup records an active-festival lookup outcome.
func (m *Metrics) RecordFestivalLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.FestivalLookupsTotal.WithLabelValues(outcome).Inc()
}

// RecordCompletion records a completion API call.
func (m *Metrics) RecordCompletion(provider, status string, duration float64) {
	m.CompletionRequestsTotal.WithLabelValues(provider, status).Inc()
	m.CompletionDurationSeconds.WithLabelValues(provider).Observe(duration)
}

// RecordCompletionFallback records a provider fallback.
func (m *Metrics) RecordCompletionFallback(from, to string) {
	m.CompletionFallbacksTotal.WithLabelValues(from, to).Inc()
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordRateLimitDrop records a request rejected by the rate limiter.
func (m *Metrics) RecordRateLimitDrop() {
	m.RateLimitDropsTotal.Inc()
}

// SetRateLimitActiveKeys records the current rate limiter bucket count.
func (m *Metrics) SetRateLimitActiveKeys(n int) {
	m.RateLimitActiveKeys.Set(float64(n))
}
