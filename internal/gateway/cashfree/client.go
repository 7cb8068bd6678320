package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const apiVersion = "2023-08-01"

type Config struct {
	AppID     string
	SecretKey string
	BaseURL   string // e.g. https://sandbox.cashfree.com or https://api.cashfree.com
	ReturnURL string
	NotifyURL string // webhook endpoint
	Timeout   time.Duration
}

// Gateway is the surface the billing service depends on; the HTTP client
// below is its production implementation.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	FetchPaymentStatus(ctx context.Context, orderCode string) ([]PaymentAttempt, error)
	VerifyWebhookSignature(rawBody []byte, signature, timestamp string) bool
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.AppID == "" || cfg.SecretKey == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://sandbox.cashfree.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	body := createOrderRequest{
		OrderID:       req.OrderCode,
		OrderAmount:   float64(req.Amount),
		OrderCurrency: currency,
		OrderNote:     req.Note,
		CustomerDetails: customerDetails{
			CustomerID:    req.Customer.ID,
			CustomerName:  req.Customer.Name,
			CustomerEmail: req.Customer.Email,
			CustomerPhone: req.Customer.Phone,
		},
		OrderMeta: orderMeta{
			ReturnURL: c.cfg.ReturnURL,
			NotifyURL: c.cfg.NotifyURL,
		},
	}

	var resp createOrderResponse
	if err := c.do(ctx, http.MethodPost, "/pg/orders", body, &resp); err != nil {
		return nil, err
	}

	return &CheckoutSession{
		SessionID: resp.PaymentSessionID,
		OrderCode: resp.OrderID,
	}, nil
}

func (c *Client) FetchPaymentStatus(ctx context.Context, orderCode string) ([]PaymentAttempt, error) {
	var entries []paymentEntry
	path := fmt.Sprintf("/pg/orders/%s/payments", orderCode)
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}

	attempts := make([]PaymentAttempt, 0, len(entries))
	for _, e := range entries {
		attempts = append(attempts, PaymentAttempt{
			PaymentID:     e.CFPaymentID.String(),
			Status:        e.PaymentStatus,
			BankReference: e.BankReference,
			Amount:        int64(e.PaymentAmount),
		})
	}
	return attempts, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", apiVersion)
	req.Header.Set("x-client-id", c.cfg.AppID)
	req.Header.Set("x-client-secret", c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return ErrTimeout
		}
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiErrorBody
		_ = json.Unmarshal(raw, &apiErr)
		return &APIError{
			HTTPStatus: resp.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
		}
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
