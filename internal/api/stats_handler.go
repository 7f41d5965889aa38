package api

import (
	"net/http"

	"trackhq/trackhq-server/internal/analytics"
	"trackhq/trackhq-server/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes derived workout statistics.
type StatsHandler struct {
	analyticsService service.AnalyticsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(analyticsService service.AnalyticsService) *StatsHandler {
	return &StatsHandler{analyticsService: analyticsService}
}

// GetStats godoc
// @Summary Get workout statistics for the active profile
// @Description Statistics are recomputed from the workout log on every call.
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param range query string false "Time range: 7d, 30d, 90d or all" default(30d)
// @Success 200 {object} analytics.Stats "Computed statistics"
// @Failure 400 {object} gin.H "Unknown time range"
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	timeRange, err := analytics.ParseTimeRange(c.DefaultQuery("range", string(analytics.Range30Days)))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := h.analyticsService.Stats(c.Request.Context(), timeRange)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute statistics.")
		return
	}
	c.JSON(http.StatusOK, stats)
}
