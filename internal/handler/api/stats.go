package api

import (
	"net/http"

	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsUseCase usecase.StatsUseCase
}

func NewStatsHandler(statsUseCase usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
	}
}

// @Summary Dashboard statistics
// @Description Room occupancy, booking counts and realized revenue
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardStatsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsUseCase.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardStats(stats))
}

// @Summary Public system counters
// @Description Aggregate user, room and booking counts
// @Tags stats
// @Produce json
// @Success 200 {object} resdto.SystemCountsResponse
// @Router /stats [get]
func (h *StatsHandler) SystemCounts(c *gin.Context) {
	counts, err := h.statsUseCase.SystemCounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSystemCounts(counts))
}
