// Package main provides the promotion copy server entry point.
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chaeni-dev/ICT-INNO/internal/festival"
	"github.com/chaeni-dev/ICT-INNO/internal/logger"
	"github.com/chaeni-dev/ICT-INNO/internal/metrics"
	"github.com/chaeni-dev/ICT-INNO/internal/ratelimit"
	"github.com/chaeni-dev/ICT-INNO/internal/webapi"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, handler *webapi.Handler, index *festival.Index, registry *prometheus.Registry, limiter *ratelimit.PerKeyLimiter, log *logger.Logger, m *metrics.Metrics) {
	// Known paths hit with the wrong verb answer 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(handler.HandleMethodNotAllowed)

	// Root endpoint - redirect to the project repository
	rootHandler := func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "https://github.com/chaeni-dev/ICT-INNO")
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Liveness probe - only checks that the process is serving.
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness probe - reports dependency state. The festival dataset is
	// the only local dependency; completion and weather providers are
	// checked lazily per request.
	readyHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"festivals": index.Size(),
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// JSON API. Only the generation endpoint is rate limited; the
	// local-context endpoint is cheap and read-only.
	api := router.Group("/api")
	if limiter != nil {
		api.POST("/generate", webapi.RateLimitMiddleware(limiter, log.Logger, m), handler.HandleGenerate)
	} else {
		api.POST("/generate", handler.HandleGenerate)
	}
	api.GET("/local-context", handler.HandleLocalContext)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
