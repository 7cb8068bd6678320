package request_models

type CreateOrderRequest struct {
	PlanID    string `json:"plan_id" binding:"required"`
	PromoCode string `json:"promo_code"`
}

type VerifyOrderRequest struct {
	OrderCode string `json:"order_code" binding:"required"`
}
