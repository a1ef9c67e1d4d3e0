package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/astro-insight/internal/domain/insight"
	apperrors "github.com/yanqian/astro-insight/pkg/errors"
	"github.com/yanqian/astro-insight/pkg/util"
)

const (
	serviceTitle   = "Astrological Insight Generator API"
	serviceVersion = "1.0.0"
)

// Handler wires the HTTP transport to the insight service.
type Handler struct {
	insightSvc insight.Service
	logger     *slog.Logger
	now        func() time.Time
}

// NewHandler constructs the root HTTP handler.
func NewHandler(insightSvc insight.Service, logger *slog.Logger) *Handler {
	return &Handler{
		insightSvc: insightSvc,
		logger:     logger.With("component", "http.handler"),
		now:        util.NowUTC,
	}
}

// Root describes the service and its endpoints.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": serviceTitle,
		"version": serviceVersion,
		"endpoints": gin.H{
			"/predict": "POST - Get personalized astrological insight",
			"/health":  "GET - Health check",
		},
		"stats": h.insightSvc.Stats(),
	})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": util.ISOTimestamp(h.now()),
	})
}

// Predict returns the insight for the posted birth details.
func (h *Handler) Predict(c *gin.Context) {
	var req insight.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.insightSvc.Predict(c.Request.Context(), req)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", apperrors.MessageOf(err), err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "predict_failed", "Error generating insight: "+errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
