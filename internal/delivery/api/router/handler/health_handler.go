package handler

import (
	"context"
	"log/slog"
	"net/http"

	"authcore/internal/delivery/api/response"
	deliverycontext "authcore/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// HealthCheck reports ok when the database answers a ping.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.db.PingContext(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Health check failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, response.SuccessResponse{
			Data: map[string]string{"status": "unavailable"},
			Meta: &response.MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
		})
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
