package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schoolhub/internal/gateway/cashfree"
	"schoolhub/internal/models/db_models"
	"schoolhub/internal/models/response_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

const (
	verifyStatusPending  = "pending"
	verifyStatusVerified = "verified"
	verifyStatusFailed   = "failed"
)

type BillingServiceInterface interface {
	CreateOrder(ctx context.Context, schoolID uuid.UUID, planID, promoCode string) (*response_models.CreateCheckoutResponse, error)
	VerifyOrder(ctx context.Context, orderCode string) (*response_models.VerifyOrderResponse, error)
	ListOrders(ctx context.Context, schoolID string) ([]db_models.PaymentOrder, error)
	HandleWebhook(c *gin.Context)
}

type BillingService struct {
	billingRepo  repositories.BillingRepository
	schoolRepo   repositories.SchoolRepository
	referralRepo repositories.ReferralRepository
	promos       PromoServiceInterface
	catalog      *PlanCatalog
	gateway      cashfree.Gateway
	mailService  IMailService
}

func NewBillingService(
	billingRepo repositories.BillingRepository,
	schoolRepo repositories.SchoolRepository,
	referralRepo repositories.ReferralRepository,
	promos PromoServiceInterface,
	catalog *PlanCatalog,
	gateway cashfree.Gateway,
	mailService IMailService,
) BillingServiceInterface {
	return &BillingService{
		billingRepo:  billingRepo,
		schoolRepo:   schoolRepo,
		referralRepo: referralRepo,
		promos:       promos,
		catalog:      catalog,
		gateway:      gateway,
		mailService:  mailService,
	}
}

func (b *BillingService) CreateOrder(ctx context.Context, schoolID uuid.UUID, planID, promoCode string) (*response_models.CreateCheckoutResponse, error) {
	school, err := b.schoolRepo.FindById(ctx, schoolID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if school == nil {
		return nil, utils.ErrSchoolNotFound
	}

	plan, err := b.catalog.Get(planID)
	if err != nil {
		return nil, err
	}
	if plan.Price <= 0 {
		return nil, utils.ErrPlanNotBillable
	}

	amount := plan.Price
	var discount int64
	var promoID *uuid.UUID
	if promoCode != "" {
		quote, err := b.promos.ValidateAndPrice(ctx, promoCode, plan.ID, time.Now())
		if err != nil {
			return nil, err
		}
		amount = quote.FinalPrice
		discount = quote.Discount
		id := quote.PromoID
		promoID = &id
	}

	orderCode, err := utils.NewOrderCode(schoolID.String())
	if err != nil {
		return nil, err
	}

	order := &db_models.PaymentOrder{
		SchoolID:    school.ID,
		PlanID:      plan.ID,
		OrderCode:   orderCode,
		Amount:      amount,
		Discount:    discount,
		Currency:    plan.Currency,
		Status:      db_models.OrderStatusPending,
		PromoCodeID: promoID,
	}
	if err := b.billingRepo.InsertOrder(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}

	session, err := b.gateway.CreateCheckoutSession(ctx, cashfree.CheckoutRequest{
		OrderCode: orderCode,
		Amount:    amount,
		Currency:  plan.Currency,
		Customer: cashfree.Customer{
			ID:    school.ID.String(),
			Name:  school.Name,
			Email: school.Email,
			Phone: school.Phone,
		},
		Note: "Subscription " + plan.ID,
	})
	if err != nil {
		// The pending row stays behind for manual reconciliation.
		log.Printf("checkout session failed for order %s: %v", orderCode, err)
		return nil, &utils.GatewayError{Op: "create checkout", Err: err}
	}

	// Usage is consumed at creation, not verification: abandoned checkouts
	// still burn a use.
	if promoID != nil {
		if err := b.promos.ConsumeUsage(ctx, *promoID); err != nil {
			return nil, err
		}
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:        orderCode,
		Amount:           amount,
		Discount:         discount,
		Currency:         plan.Currency,
		PaymentSessionID: session.SessionID,
	}, nil
}

func (b *BillingService) VerifyOrder(ctx context.Context, orderCode string) (*response_models.VerifyOrderResponse, error) {
	order, err := b.billingRepo.FindOrderByCode(ctx, orderCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	// Idempotency: a second verification of a settled order returns the
	// cached outcome without touching the tenant.
	if order.Status == db_models.OrderStatusVerified {
		return b.cachedSuccess(order), nil
	}
	if order.Status == db_models.OrderStatusFailed {
		return &response_models.VerifyOrderResponse{
			OrderCode: order.OrderCode,
			Status:    verifyStatusFailed,
		}, nil
	}

	attempts, err := b.gateway.FetchPaymentStatus(ctx, orderCode)
	if err != nil {
		if errors.Is(err, cashfree.ErrTimeout) {
			// The payment may have succeeded at the gateway independent of
			// the network response; report pending and let the caller poll.
			return &response_models.VerifyOrderResponse{
				OrderCode: order.OrderCode,
				Status:    verifyStatusPending,
			}, nil
		}
		return nil, &utils.GatewayError{Op: "fetch payment status", Err: err}
	}

	switch status, txnID := reduceAttempts(attempts); status {
	case cashfree.StatusSuccess:
		return b.finalizeSuccess(ctx, order, txnID)
	case cashfree.StatusFailed, cashfree.StatusCancelled:
		if err := b.billingRepo.MarkOrderFailed(ctx, orderCode); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return &response_models.VerifyOrderResponse{
			OrderCode: order.OrderCode,
			Status:    verifyStatusFailed,
		}, nil
	default:
		return &response_models.VerifyOrderResponse{
			OrderCode: order.OrderCode,
			Status:    verifyStatusPending,
		}, nil
	}
}

func (b *BillingService) ListOrders(ctx context.Context, schoolID string) ([]db_models.PaymentOrder, error) {
	orders, err := b.billingRepo.ListOrdersBySchool(ctx, schoolID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return orders, nil
}

// HandleWebhook is the gateway-initiated verification path. It shares the
// conditional pending->verified transition with VerifyOrder, so a webhook
// racing a poll cannot double-apply the upgrade.
func (b *BillingService) HandleWebhook(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	signature := c.GetHeader("x-webhook-signature")
	timestamp := c.GetHeader("x-webhook-timestamp")
	if !b.gateway.VerifyWebhookSignature(rawBody, signature, timestamp) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook signature"})
		return
	}

	var payload cashfree.WebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
		return
	}

	ctx := c.Request.Context()
	order, err := b.billingRepo.FindOrderByCode(ctx, payload.OrderCode())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}
	if order == nil {
		// Ack unknown orders to avoid a retry storm, but log for investigation.
		log.Printf("webhook: order not found for %s", payload.OrderCode())
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
		return
	}

	switch payload.PaymentStatus() {
	case cashfree.StatusSuccess:
		if order.Status != db_models.OrderStatusVerified {
			if _, err := b.finalizeSuccess(ctx, order, payload.TransactionID()); err != nil {
				log.Printf("webhook: failed to finalize order %s: %v", order.OrderCode, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process payment"})
				return
			}
		}
	case cashfree.StatusFailed, cashfree.StatusCancelled:
		if err := b.billingRepo.MarkOrderFailed(ctx, order.OrderCode); err != nil {
			log.Printf("webhook: failed to mark order %s failed: %v", order.OrderCode, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// finalizeSuccess applies the purchased plan to the tenant exactly once.
func (b *BillingService) finalizeSuccess(ctx context.Context, order *db_models.PaymentOrder, txnID string) (*response_models.VerifyOrderResponse, error) {
	plan, err := b.catalog.Get(order.PlanID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	upgrade := repositories.PlanUpgrade{
		PlanID:      plan.ID,
		MaxStudents: plan.MaxStudents,
		MaxClasses:  plan.MaxClasses,
		ExpiresAt:   now.AddDate(0, 0, plan.DurationDays).Unix(),
	}

	applied, err := b.billingRepo.VerifyOrderAndUpgrade(ctx, order.OrderCode, txnID, upgrade, now)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if applied {
		b.recordReferralCommission(ctx, order)
		b.sendPaymentReceipt(ctx, order, plan)
	}

	return &response_models.VerifyOrderResponse{
		OrderCode:     order.OrderCode,
		Status:        verifyStatusVerified,
		PlanID:        plan.ID,
		PlanName:      plan.Name,
		TransactionID: txnID,
	}, nil
}

func (b *BillingService) cachedSuccess(order *db_models.PaymentOrder) *response_models.VerifyOrderResponse {
	resp := &response_models.VerifyOrderResponse{
		OrderCode:     order.OrderCode,
		Status:        verifyStatusVerified,
		PlanID:        order.PlanID,
		TransactionID: order.TransactionID,
	}
	if plan, err := b.catalog.Get(order.PlanID); err == nil {
		resp.PlanName = plan.Name
	}
	return resp
}

// recordReferralCommission is best-effort: a commission bookkeeping failure
// must not fail an already-verified payment.
func (b *BillingService) recordReferralCommission(ctx context.Context, order *db_models.PaymentOrder) {
	school, err := b.schoolRepo.FindById(ctx, order.SchoolID.String())
	if err != nil || school == nil || school.ReferralPartnerID == nil {
		return
	}

	partner, err := b.referralRepo.FindPartnerById(ctx, school.ReferralPartnerID.String())
	if err != nil || partner == nil {
		return
	}

	commission := &db_models.ReferralCommission{
		PartnerID: partner.ID,
		SchoolID:  school.ID,
		OrderID:   order.ID,
		Amount:    order.Amount * partner.CommissionRate / 100,
	}
	if err := b.referralRepo.InsertCommission(ctx, commission); err != nil {
		log.Printf("failed to record referral commission for order %s: %v", order.OrderCode, err)
	}
}

// sendPaymentReceipt is best-effort like the commission bookkeeping: a mail
// failure never fails an already-verified payment.
func (b *BillingService) sendPaymentReceipt(ctx context.Context, order *db_models.PaymentOrder, plan PlanDefinition) {
	school, err := b.schoolRepo.FindById(ctx, order.SchoolID.String())
	if err != nil || school == nil {
		return
	}

	if err := b.mailService.SendPaymentReceipt(school.Email, plan.Name, order.Amount, order.OrderCode); err != nil {
		log.Printf("failed to send receipt for order %s: %v", order.OrderCode, err)
	}
}

// reduceAttempts folds the gateway's attempt list into one outcome: any
// success wins, otherwise a terminal failure, otherwise pending.
func reduceAttempts(attempts []cashfree.PaymentAttempt) (string, string) {
	outcome := cashfree.StatusPending
	txnID := ""
	for _, attempt := range attempts {
		switch attempt.Status {
		case cashfree.StatusSuccess:
			return cashfree.StatusSuccess, attempt.PaymentID
		case cashfree.StatusFailed, cashfree.StatusCancelled:
			outcome = attempt.Status
			txnID = attempt.PaymentID
		}
	}
	return outcome, txnID
}
