package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/core/internal/application/services"
	"github.com/taskflow/core/internal/infrastructure/logger"
)

// StatsHandler serves the dashboard overview
type StatsHandler struct {
	statsService *services.StatsService
	logger       *logger.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// GetOverview godoc
// @Summary Get dashboard statistics
// @Description Get project counts by status and the number of overdue tasks
// @Tags stats
// @Produce json
// @Success 200 {object} stats.Overview
// @Router /stats [get]
func (h *StatsHandler) GetOverview(c echo.Context) error {
	overview, err := h.statsService.GetOverview(c.Request().Context())
	if err != nil {
		h.logger.Error("Get stats overview failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, overview)
}
