package response_models

// CreateCheckoutResponse hands the gateway session back to the frontend.
type CreateCheckoutResponse struct {
	OrderCode        string `json:"order_code"`
	Amount           int64  `json:"amount"`
	Discount         int64  `json:"discount"`
	Currency         string `json:"currency"`
	PaymentSessionID string `json:"payment_session_id"`
}

// VerifyOrderResponse reports the outcome of a verification poll.
type VerifyOrderResponse struct {
	OrderCode     string `json:"order_code"`
	Status        string `json:"status"` // pending | verified | failed
	PlanID        string `json:"plan_id,omitempty"`
	PlanName      string `json:"plan_name,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}
