package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/synchomes/synchomes-api/internal/response"
	"github.com/synchomes/synchomes-api/internal/service"
)

// DashboardHandler handles admin dashboard endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboardStats godoc
// GET /api/admin/dashboard
// Returns record counts per collection and projects per category.
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
