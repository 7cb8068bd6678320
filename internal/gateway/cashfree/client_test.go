package cashfree_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/gateway/cashfree"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *cashfree.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := cashfree.NewClient(cashfree.Config{
		AppID:     "app-id",
		SecretKey: "secret-key",
		BaseURL:   server.URL,
		ReturnURL: "https://app.example/return",
		NotifyURL: "https://app.example/webhook",
		Timeout:   2 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		_, err := cashfree.NewClient(cashfree.Config{})
		assert.ErrorIs(t, err, cashfree.ErrMissingCredentials)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		client, err := cashfree.NewClient(cashfree.Config{AppID: "a", SecretKey: "s"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestClient_CreateCheckoutSession(t *testing.T) {
	t.Parallel()

	t.Run("sends credentials and order payload", func(t *testing.T) {
		t.Parallel()

		var captured map[string]interface{}
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/pg/orders", r.URL.Path)
			assert.Equal(t, "app-id", r.Header.Get("x-client-id"))
			assert.Equal(t, "secret-key", r.Header.Get("x-client-secret"))
			assert.Equal(t, "2023-08-01", r.Header.Get("x-api-version"))

			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"order_id": "SH-1", "payment_session_id": "sess_abc", "order_status": "ACTIVE"}`))
		})

		session, err := client.CreateCheckoutSession(context.Background(), cashfree.CheckoutRequest{
			OrderCode: "SH-1",
			Amount:    499,
			Customer:  cashfree.Customer{ID: "cust-1", Email: "a@b.example", Phone: "9999999999"},
		})
		require.NoError(t, err)
		assert.Equal(t, "sess_abc", session.SessionID)
		assert.Equal(t, "SH-1", session.OrderCode)

		assert.Equal(t, "SH-1", captured["order_id"])
		assert.Equal(t, float64(499), captured["order_amount"])
		assert.Equal(t, "INR", captured["order_currency"]) // default currency
		meta := captured["order_meta"].(map[string]interface{})
		assert.Equal(t, "https://app.example/webhook", meta["notify_url"])
	})

	t.Run("api error", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "authentication failed", "code": "request_failed", "type": "authentication_error"}`))
		})

		_, err := client.CreateCheckoutSession(context.Background(), cashfree.CheckoutRequest{OrderCode: "SH-2", Amount: 100})
		var apiErr *cashfree.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatus)
		assert.Equal(t, "request_failed", apiErr.Code)
	})
}

func TestClient_FetchPaymentStatus(t *testing.T) {
	t.Parallel()

	t.Run("maps payment entries", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/pg/orders/SH-3/payments", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"cf_payment_id": 990011, "payment_status": "FAILED", "payment_amount": 499},
				{"cf_payment_id": 990012, "payment_status": "SUCCESS", "bank_reference": "UTR123", "payment_amount": 499}
			]`))
		})

		attempts, err := client.FetchPaymentStatus(context.Background(), "SH-3")
		require.NoError(t, err)
		require.Len(t, attempts, 2)
		assert.Equal(t, "990011", attempts[0].PaymentID)
		assert.Equal(t, cashfree.StatusFailed, attempts[0].Status)
		assert.Equal(t, "990012", attempts[1].PaymentID)
		assert.Equal(t, cashfree.StatusSuccess, attempts[1].Status)
		assert.Equal(t, "UTR123", attempts[1].BankReference)
		assert.Equal(t, int64(499), attempts[1].Amount)
	})

	t.Run("no payments yet", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		attempts, err := client.FetchPaymentStatus(context.Background(), "SH-4")
		require.NoError(t, err)
		assert.Empty(t, attempts)
	})

	t.Run("slow gateway maps to timeout", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`[]`))
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.FetchPaymentStatus(ctx, "SH-5")
		assert.ErrorIs(t, err, cashfree.ErrTimeout)
	})
}

func TestClient_VerifyWebhookSignature(t *testing.T) {
	t.Parallel()

	client, err := cashfree.NewClient(cashfree.Config{AppID: "a", SecretKey: "secret-key"})
	require.NoError(t, err)

	body := []byte(`{"data": {"order": {"order_id": "SH-9"}}}`)
	timestamp := "1700000000"

	mac := hmac.New(sha256.New, []byte("secret-key"))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	valid := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.True(t, client.VerifyWebhookSignature(body, valid, timestamp))
	assert.False(t, client.VerifyWebhookSignature(body, valid, "1700000001"))
	assert.False(t, client.VerifyWebhookSignature(body, "bogus", timestamp))
	assert.False(t, client.VerifyWebhookSignature([]byte(`tampered`), valid, timestamp))
}
