package controllers

import (
	"github.com/gin-gonic/gin"

	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetSummary godoc
// @Summary School dashboard summary
// @Description Tenant-wide counts, fee totals and recent activity
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /dashboard [get]
func (d *DashboardController) GetSummary(c *gin.Context) {
	summary, err := d.dashboardService.GetSummary(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Dashboard retrieved successfully")
}
