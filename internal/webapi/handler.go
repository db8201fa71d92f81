// Package webapi exposes the copy generation pipeline over HTTP. It owns
// request decoding, the error-to-status mapping and the JSON response
// shapes the promotion form consumes.
package webapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chaeni-dev/ICT-INNO/internal/district"
	apperrors "github.com/chaeni-dev/ICT-INNO/internal/errors"
	"github.com/chaeni-dev/ICT-INNO/internal/festival"
	"github.com/chaeni-dev/ICT-INNO/internal/localctx"
	"github.com/chaeni-dev/ICT-INNO/internal/metrics"
	"github.com/chaeni-dev/ICT-INNO/internal/promo"
)

// User-facing error messages. Korean because the form surfaces them
// verbatim.
const (
	msgMethodNotAllowed  = "Method not allowed"
	msgInvalidRequest    = "잘못된 요청 형식입니다."
	msgGenerationFailed  = "AI 생성에 실패했습니다. 잠시 후 다시 시도해주세요."
	msgInternalError     = "서버 내부 오류"
	msgLocationTooLong   = "위치 입력이 너무 깁니다."
	msgRateLimited       = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
	maxLocationRuneCount = 200
)

// CopyService generates promotional copy for a store request.
type CopyService interface {
	Generate(ctx context.Context, req promo.Request) (*promo.Response, error)
}

// WeatherSource mirrors promo.WeatherSource for the local-context endpoint.
type WeatherSource interface {
	Summary(ctx context.Context, location string) string
}

// FestivalSource mirrors promo.FestivalSource for the local-context endpoint.
type FestivalSource interface {
	ActiveFestivals(d district.Name, now time.Time) []festival.Festival
}

// Handler serves the JSON API.
type Handler struct {
	service   CopyService
	weather   WeatherSource
	festivals FestivalSource
	log       *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewHandler creates the API handler. Weather and festival sources may be
// nil; the local-context endpoint then omits those fields. Metrics may be
// nil.
func NewHandler(service CopyService, weather WeatherSource, festivals FestivalSource, log *slog.Logger, m *metrics.Metrics) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		service:   service,
		weather:   weather,
		festivals: festivals,
		log:       log,
		metrics:   m,
		now:       time.Now,
	}
}

// generateRequest is the wire shape of POST /api/generate.
type generateRequest struct {
	StoreName     string `json:"storeName"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	ImageBase64   string `json:"imageBase64"`
	IncludeTrends *bool  `json:"includeTrends"`
}

// HandleGenerate serves POST /api/generate.
func (h *Handler) HandleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.recordError("invalid_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}

	if len([]rune(req.Location)) > maxLocationRuneCount {
		h.recordError("invalid_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgLocationTooLong})
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), promo.Request{
		StoreName:     req.StoreName,
		Location:      req.Location,
		Description:   req.Description,
		HasImage:      req.ImageBase64 != "",
		IncludeTrends: req.IncludeTrends,
	})
	if err != nil {
		h.log.ErrorContext(c.Request.Context(), "copy generation failed", "error", err)

		var provErr *apperrors.ProviderError
		if errors.Is(err, apperrors.ErrProviderFailure) || errors.As(err, &provErr) {
			h.recordError("provider_failure")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenerationFailed})
			return
		}
		h.recordError("internal")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// localContextResponse is the wire shape of GET /api/local-context.
// ContextSummary is the field the promotion form reads; the remaining
// fields expose the individual pieces.
type localContextResponse struct {
	ContextSummary string   `json:"contextSummary"`
	Day            string   `json:"day"`
	TimeOfDay      string   `json:"timeOfDay"`
	Weather        string   `json:"weather,omitempty"`
	ContextLine    string   `json:"contextLine"`
	District       string   `json:"district,omitempty"`
	Festivals      []string `json:"festivals,omitempty"`
}

// HandleLocalContext serves GET /api/local-context. It exposes the
// deterministic context pieces for a location so the form can preview
// what the generated copy will reference.
func (h *Handler) HandleLocalContext(c *gin.Context) {
	location := c.Query("location")
	if len([]rune(location)) > maxLocationRuneCount {
		h.recordError("invalid_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgLocationTooLong})
		return
	}

	now := h.now()
	resp := localContextResponse{
		Day:       localctx.DayLabel(now),
		TimeOfDay: localctx.TimeOfDay(now),
	}

	if h.weather != nil {
		resp.Weather = h.weather.Summary(c.Request.Context(), location)
	}
	resp.ContextLine = localctx.Compose(now, resp.Weather)

	if h.festivals != nil {
		d, resolved := district.Resolve(location)
		if resolved {
			resp.District = d.String()
		}
		for _, f := range h.festivals.ActiveFestivals(d, now) {
			resp.Festivals = append(resp.Festivals, f.Name)
		}
	}

	resp.ContextSummary = resp.ContextLine
	if len(resp.Festivals) > 0 {
		resp.ContextSummary = fmt.Sprintf("%s. 주변 축제: %s", resp.ContextLine, strings.Join(resp.Festivals, ", "))
	}

	c.JSON(http.StatusOK, resp)
}

// HandleMethodNotAllowed serves 405 for known paths hit with the wrong
// verb, keeping the error body consistent with the rest of the API.
func (h *Handler) HandleMethodNotAllowed(c *gin.Context) {
	h.recordError("method_not_allowed")
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": msgMethodNotAllowed})
}

func (h *Handler) recordError(errorType string) {
	if h.metrics != nil {
		h.metrics.RecordHTTPError(errorType)
	}
}
