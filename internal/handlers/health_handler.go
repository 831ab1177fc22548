package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"receipt-ledger/internal/dto"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db          *gorm.DB
	environment string
	now         func() time.Time
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, environment string) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, environment: environment, now: time.Now}
}

// HealthCheck reports process liveness and database reachability
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "status OK"
// @Failure 503 {object} dto.HealthResponse "status DEGRADED (database unreachable)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	response := dto.HealthResponse{
		Status:      dto.HealthStatusOK,
		Timestamp:   h.now().UTC(),
		Environment: h.environment,
	}

	if err := h.ping(c.Request().Context()); err != nil {
		slog.WarnContext(c.Request().Context(), "health check database ping failed",
			"trace_id", getTraceID(c),
			"error", err,
		)
		response.Status = dto.HealthStatusDegraded
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthCheckHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
