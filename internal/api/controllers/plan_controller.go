package controllers

import (
	"github.com/gin-gonic/gin"

	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// ListPlans godoc
// @Summary List purchasable plans
// @Description Returns the plan catalog with prices, limits and features
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {
	utils.RespondSuccess(c, p.planService.ListPlans(), "Plans retrieved successfully")
}

// GetSubscription godoc
// @Summary Current subscription status
// @Description Returns the tenant's plan, expiry and usage against limits
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /subscription [get]
func (p *PlanController) GetSubscription(c *gin.Context) {
	status, err := p.planService.GetSubscriptionStatus(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Subscription retrieved successfully")
}
