package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolhub/internal/models/request_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

// ReferralController is the platform-operator surface for the referral
// program.
type ReferralController struct {
	referralService services.ReferralServiceInterface
}

func NewReferralController(referralService services.ReferralServiceInterface) *ReferralController {
	return &ReferralController{
		referralService: referralService,
	}
}

// CreatePartner godoc
// @Summary Register a referral partner
// @Tags Referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreatePartnerRequest true "Partner payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/partners [post]
func (r *ReferralController) CreatePartner(c *gin.Context) {
	var req request_models.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	partner, err := r.referralService.CreatePartner(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, partner, "Partner registered successfully")
}

// ListPartners godoc
// @Summary List referral partners
// @Tags Referrals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/partners [get]
func (r *ReferralController) ListPartners(c *gin.Context) {
	partners, err := r.referralService.ListPartners(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, partners, "Partners retrieved successfully")
}

// ListCommissions godoc
// @Summary List a partner's earned commissions
// @Tags Referrals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/partners/{id}/commissions [get]
func (r *ReferralController) ListCommissions(c *gin.Context) {
	commissions, err := r.referralService.ListCommissions(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, commissions, "Commissions retrieved successfully")
}
