package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the per-collection document counts.
type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/get-instructor-stats", h.GetInstructorStats)
	router.GET("/get-admin-stats", h.GetAdminStats)
}

// GetInstructorStats counts documents in the student-facing collections
// @Summary      Instructor dashboard stats
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /get-instructor-stats [get]
func (h *StatsHandler) GetInstructorStats(c *gin.Context) {
	counts, err := h.statsService.InstructorStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, counts))
}

// GetAdminStats counts documents across every collection
// @Summary      Admin dashboard stats
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /get-admin-stats [get]
func (h *StatsHandler) GetAdminStats(c *gin.Context) {
	counts, err := h.statsService.AdminStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, counts))
}
