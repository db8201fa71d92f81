// Package main provides the promotion copy server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/chaeni-dev/ICT-INNO/internal/buildinfo"
	"github.com/chaeni-dev/ICT-INNO/internal/config"
	"github.com/chaeni-dev/ICT-INNO/internal/festival"
	"github.com/chaeni-dev/ICT-INNO/internal/llm"
	"github.com/chaeni-dev/ICT-INNO/internal/logger"
	"github.com/chaeni-dev/ICT-INNO/internal/metrics"
	"github.com/chaeni-dev/ICT-INNO/internal/promo"
	"github.com/chaeni-dev/ICT-INNO/internal/ratelimit"
	"github.com/chaeni-dev/ICT-INNO/internal/sentry"
	"github.com/chaeni-dev/ICT-INNO/internal/snapshot"
	"github.com/chaeni-dev/ICT-INNO/internal/weather"
	"github.com/chaeni-dev/ICT-INNO/internal/webapi"
)

func main() {
	// Load configuration; a missing completion credential fails here
	// rather than on the first request.
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterstackToken:    cfg.BetterstackToken,
		BetterstackEndpoint: cfg.BetterstackEndpoint,
	})
	log.WithField("version", buildinfo.Release()).
		WithField("build_date", buildinfo.BuildDate).
		Info("Starting promotion copy server")

	// Initialize error tracking (no-op without a token)
	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: cfg.Environment,
		Release:     buildinfo.Release(),
	}); err != nil {
		log.WithError(err).Warn("Error tracking initialization failed")
	} else if sentry.IsEnabled() {
		log.Info("Error tracking initialized")
	}

	// Create Prometheus registry with runtime collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Festival dataset index
	index := festival.NewIndex(cfg.FestivalCSVPath, log.Logger, m)

	// Optional R2 snapshot sync: download the dataset before the first
	// load, then poll for updates in the background.
	var snapshotManager *snapshot.Manager
	if cfg.HasR2Snapshot() {
		client, err := snapshot.NewClient(context.Background(), snapshot.Config{
			Endpoint:    cfg.R2Endpoint,
			AccessKeyID: cfg.R2AccessKeyID,
			SecretKey:   cfg.R2SecretKey,
			Bucket:      cfg.R2Bucket,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to create snapshot client")
		}
		snapshotManager = snapshot.NewManager(client, cfg.R2SnapshotKey, cfg.FestivalCSVPath, index.Invalidate, log.Logger)

		syncCtx, cancel := context.WithTimeout(context.Background(), config.SnapshotDownload)
		if _, err := snapshotManager.Sync(syncCtx); err != nil {
			log.WithError(err).Warn("Initial snapshot sync failed, using local dataset if present")
		}
		cancel()
	}

	if err := index.Load(); err != nil {
		log.WithError(err).Warn("Festival dataset unavailable, serving without festivals until the next snapshot update")
	} else {
		log.WithField("festivals", index.Size()).Info("Festival dataset loaded")
	}

	if snapshotManager != nil {
		snapshotManager.StartPolling(context.Background(), config.SnapshotPoll)
	}

	// Weather client
	weatherClient := weather.New(weather.Config{
		BaseURL:           cfg.WeatherBaseURL,
		OpenWeatherAPIKey: cfg.OpenWeatherAPIKey,
		Timeout:           cfg.WeatherTimeout,
	}, log.Logger, m)
	log.Info("Weather client created")

	// Completion provider chain: Solar primary, Gemini optional fallback
	solarGen, err := llm.NewSolarGenerator(cfg.UpstageAPIKey, cfg.UpstageBaseURL, cfg.SolarModel, log.Logger)
	if err != nil {
		log.WithError(err).Fatal("Failed to create Solar generator")
	}
	generators := []llm.Generator{solarGen}
	if cfg.HasGeminiFallback() {
		geminiGen, err := llm.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, log.Logger)
		if err != nil {
			log.WithError(err).Warn("Failed to create Gemini generator, provider fallback disabled")
		} else {
			generators = append(generators, geminiGen)
		}
	}
	generator, err := llm.NewFallbackGenerator(generators, llm.RetryConfig{
		MaxAttempts:  cfg.LLMMaxAttempts,
		InitialDelay: config.LLMRetryInitial,
		MaxDelay:     config.LLMRetryMax,
	}, log.Logger, m)
	if err != nil {
		log.WithError(err).Fatal("Failed to create completion chain")
	}
	log.WithField("providers", len(generators)).Info("Completion chain created")

	// Generation service and API handler
	service := promo.NewService(generator, weatherClient, index, log.Logger, m)
	handler := webapi.NewHandler(service, weatherClient, index, log.Logger, m)

	// Per-client budget for the generation endpoint. The completion
	// providers are the expensive resource being protected.
	var limiter *ratelimit.PerKeyLimiter
	if cfg.GenerateRateLimit > 0 {
		perSecond := float64(cfg.GenerateRateLimit) / 60
		limiter = ratelimit.NewPerKeyLimiter(ratelimit.PerKeyConfig{
			MaxTokens:     perSecond * 2,
			RefillRate:    perSecond,
			CleanupPeriod: 5 * time.Minute,
		})
		limiter.OnDrop(m.RecordRateLimitDrop)
		limiter.OnUpdate(m.SetRateLimitActiveKeys)
		log.WithField("requests_per_minute", cfg.GenerateRateLimit).Info("Rate limiter enabled")
	}

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(webapi.RequestIDMiddleware())
	router.Use(loggingMiddleware(log))
	if sentry.IsEnabled() {
		router.Use(sentry.GinMiddleware())
	}

	setupRoutes(router, handler, index, registry, limiter, log, m)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.GenerateHTTPRead,
		WriteTimeout: config.GenerateHTTPWrite,
		IdleTimeout:  config.GenerateHTTPIdle,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if snapshotManager != nil {
		snapshotManager.StopPolling()
	}
	if limiter != nil {
		limiter.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	if err := generator.Close(); err != nil {
		log.WithError(err).Error("Failed to close completion chain")
	}

	sentry.Flush(2 * time.Second)
	if err := log.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to flush logs")
	}

	log.Info("Server stopped")
}
