package cashfree

import "encoding/json"

// PaymentStatus values reported by the gateway for one payment attempt.
const (
	StatusSuccess   = "SUCCESS"
	StatusFailed    = "FAILED"
	StatusCancelled = "CANCELLED"
	StatusPending   = "PENDING"
)

type Customer struct {
	ID    string
	Name  string
	Email string
	Phone string
}

type CheckoutRequest struct {
	OrderCode string
	Amount    int64 // whole rupees
	Currency  string
	Customer  Customer
	Note      string
}

// CheckoutSession is the redirect handle returned to the frontend.
type CheckoutSession struct {
	SessionID  string `json:"session_id"`
	OrderCode  string `json:"order_code"`
	PaymentURL string `json:"payment_url,omitempty"`
}

// PaymentAttempt is one entry of the gateway's payments list for an order.
type PaymentAttempt struct {
	PaymentID     string `json:"cf_payment_id"`
	Status        string `json:"payment_status"`
	BankReference string `json:"bank_reference"`
	Amount        int64  `json:"payment_amount"`
}

// wire types

type createOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	OrderNote       string          `json:"order_note,omitempty"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
	NotifyURL string `json:"notify_url,omitempty"`
}

type createOrderResponse struct {
	OrderID          string `json:"order_id"`
	PaymentSessionID string `json:"payment_session_id"`
	OrderStatus      string `json:"order_status"`
}

type paymentEntry struct {
	CFPaymentID   json.Number `json:"cf_payment_id"`
	PaymentStatus string      `json:"payment_status"`
	BankReference string      `json:"bank_reference"`
	PaymentAmount float64     `json:"payment_amount"`
}

type apiErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}
