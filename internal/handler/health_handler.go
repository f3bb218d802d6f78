package handler

import (
	"context"
	"net/http"

	"sales-service/pkg/config"
	"sales-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Pinger checks that the database answers
type Pinger func(ctx context.Context) error

// HealthHandler serves the health check endpoint
type HealthHandler struct {
	ping Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(ping Pinger) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// HealthCheck handles GET /health. With ?check=db it also pings the database.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	if c.QueryParam("check") == "db" && h.ping != nil {
		if err := h.ping(c.Request().Context()); err != nil {
			logger.FromContext(c).Error("Database health check failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"status":  "unhealthy",
				"service": config.ServiceName,
				"error":   "database unreachable",
			})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"service": config.ServiceName,
	})
}
