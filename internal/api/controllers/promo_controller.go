package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/models/request_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

// PromoController is the platform-operator surface for managing promo codes.
// Routes are gated on the platform role.
type PromoController struct {
	promoService services.PromoServiceInterface
}

func NewPromoController(promoService services.PromoServiceInterface) *PromoController {
	return &PromoController{
		promoService: promoService,
	}
}

// CreatePromo godoc
// @Summary Create a promo code
// @Tags Promos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreatePromoRequest true "Promo payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/promos [post]
func (p *PromoController) CreatePromo(c *gin.Context) {
	var req request_models.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	applicable := req.ApplicablePlans
	if applicable == "" {
		applicable = "all"
	}

	promo := &db_models.PromoCode{
		Code:            req.Code,
		Type:            db_models.PromoType(req.Type),
		Value:           req.Value,
		ApplicablePlans: applicable,
		ValidFrom:       req.ValidFrom,
		ValidTo:         req.ValidTo,
		UsageLimit:      req.UsageLimit,
		Status:          db_models.PromoActive,
	}

	if err := p.promoService.CreatePromo(c.Request.Context(), promo); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, promo, "Promo code created successfully")
}

// ListPromos godoc
// @Summary List promo codes
// @Tags Promos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/promos [get]
func (p *PromoController) ListPromos(c *gin.Context) {
	promos, err := p.promoService.ListPromos(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, promos, "Promo codes retrieved successfully")
}

// DeactivatePromo godoc
// @Summary Deactivate a promo code
// @Tags Promos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promo ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/promos/{id} [delete]
func (p *PromoController) DeactivatePromo(c *gin.Context) {
	if err := p.promoService.DeactivatePromo(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Promo code deactivated")
}
