package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "booking/internal/delivery/context"
	"booking/internal/delivery/http/response"
	"booking/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler answers liveness probes.
type HealthHandler struct {
	store  repository.HealthChecker
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(store repository.HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// Check pings the account store.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "Service unavailable", "")
	}

	return response.Success(c, http.StatusOK, map[string]string{"database": "ok"})
}
