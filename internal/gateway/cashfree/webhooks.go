package cashfree

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
)

// WebhookPayload is the inbound notification for a payment state change.
type WebhookPayload struct {
	Type string `json:"type"`
	Data struct {
		Order struct {
			OrderID string `json:"order_id"`
		} `json:"order"`
		Payment struct {
			CFPaymentID   json.Number `json:"cf_payment_id"`
			PaymentStatus string      `json:"payment_status"`
		} `json:"payment"`
	} `json:"data"`
}

func (p *WebhookPayload) OrderCode() string     { return p.Data.Order.OrderID }
func (p *WebhookPayload) PaymentStatus() string { return p.Data.Payment.PaymentStatus }
func (p *WebhookPayload) TransactionID() string { return p.Data.Payment.CFPaymentID.String() }

// VerifyWebhookSignature checks the x-webhook-signature header: base64 of
// HMAC-SHA256(timestamp + rawBody) keyed with the secret key.
func (c *Client) VerifyWebhookSignature(rawBody []byte, signature, timestamp string) bool {
	mac := hmac.New(sha256.New, []byte(c.cfg.SecretKey))
	mac.Write([]byte(timestamp))
	mac.Write(rawBody)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
