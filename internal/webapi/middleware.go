package webapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chaeni-dev/ICT-INNO/internal/ctxutil"
	"github.com/chaeni-dev/ICT-INNO/internal/metrics"
	"github.com/chaeni-dev/ICT-INNO/internal/ratelimit"
)

// RequestIDHeader carries the request id on responses and is honored on
// requests so upstream proxies can propagate their own ids.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns each request an id, stores it in the
// request context for log correlation and echoes it in the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := ctxutil.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RateLimitMiddleware rejects requests from clients that exceed their
// per-IP token budget. Log and metrics may be nil.
func RateLimitMiddleware(limiter *ratelimit.PerKeyLimiter, log *slog.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		if log != nil {
			log.Warn("rate limit exceeded",
				slog.String("client_ip", c.ClientIP()),
				slog.String("path", c.Request.URL.Path),
			)
		}
		if m != nil {
			m.RecordHTTPError("rate_limited")
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": msgRateLimited})
	}
}
