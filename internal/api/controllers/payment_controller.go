package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schoolhub/internal/models/request_models"
	"schoolhub/internal/services"
	"schoolhub/pkg/utils"
)

type PaymentController struct {
	billingService services.BillingServiceInterface
	promoService   services.PromoServiceInterface
}

func NewPaymentController(billingService services.BillingServiceInterface, promoService services.PromoServiceInterface) *PaymentController {
	return &PaymentController{
		billingService: billingService,
		promoService:   promoService,
	}
}

// CreateOrder godoc
// @Summary Create a payment order
// @Description Prices the plan (applying an optional promo code), records a pending order and opens a gateway checkout session
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateOrderRequest true "Order payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /payments/orders [post]
func (p *PaymentController) CreateOrder(c *gin.Context) {
	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schoolID, err := uuid.Parse(c.GetString("school_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Missing tenant context")
		return
	}

	resp, err := p.billingService.CreateOrder(c.Request.Context(), schoolID, req.PlanID, req.PromoCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Order created successfully")
}

// VerifyOrder godoc
// @Summary Verify a payment order
// @Description Polls the gateway for the order's payment outcome and upgrades the plan on success. Safe to call repeatedly.
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.VerifyOrderRequest true "Verify payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/verify [post]
func (p *PaymentController) VerifyOrder(c *gin.Context) {
	var req request_models.VerifyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.billingService.VerifyOrder(c.Request.Context(), req.OrderCode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Order status retrieved")
}

// ListOrders godoc
// @Summary List the tenant's payment orders
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /payments/orders [get]
func (p *PaymentController) ListOrders(c *gin.Context) {
	orders, err := p.billingService.ListOrders(c.Request.Context(), c.GetString("school_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders retrieved successfully")
}

// PreviewPromo godoc
// @Summary Preview a promo code against a plan
// @Description Validates the code and returns the discounted price without creating an order or consuming a use
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateOrderRequest true "Plan and promo code"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments/promo-preview [post]
func (p *PaymentController) PreviewPromo(c *gin.Context) {
	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.PromoCode == "" {
		utils.RespondError(c, http.StatusBadRequest, "Promo code is required")
		return
	}

	quote, err := p.promoService.ValidateAndPrice(c.Request.Context(), req.PromoCode, req.PlanID, time.Now())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"code":        quote.Code,
		"discount":    quote.Discount,
		"final_price": quote.FinalPrice,
	}, "Promo code is valid")
}

// Webhook godoc
// @Summary Payment gateway webhook
// @Description Signed server-to-server notification from the gateway
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/webhook [post]
func (p *PaymentController) Webhook(c *gin.Context) {
	p.billingService.HandleWebhook(c)
}
