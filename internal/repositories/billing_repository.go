package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"schoolhub/internal/models/db_models"
)

// PlanUpgrade carries the catalog values a verified order writes onto the
// tenant row. Passed by value so the repository never reads the catalog.
type PlanUpgrade struct {
	PlanID      string
	MaxStudents int64
	MaxClasses  int64
	ExpiresAt   int64 // unix seconds
}

type BillingRepository interface {
	InsertOrder(ctx context.Context, order *db_models.PaymentOrder) error
	FindOrderByCode(ctx context.Context, orderCode string) (*db_models.PaymentOrder, error)
	MarkOrderFailed(ctx context.Context, orderCode string) error
	// VerifyOrderAndUpgrade flips the order pending->verified and applies the
	// plan upgrade to the school in one transaction. Returns false without
	// error when another caller already verified the order.
	VerifyOrderAndUpgrade(ctx context.Context, orderCode, transactionID string, upgrade PlanUpgrade, now time.Time) (bool, error)
	ListOrdersBySchool(ctx context.Context, schoolID string) ([]db_models.PaymentOrder, error)
}

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) InsertOrder(ctx context.Context, order *db_models.PaymentOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *billingRepository) FindOrderByCode(ctx context.Context, orderCode string) (*db_models.PaymentOrder, error) {
	var order db_models.PaymentOrder
	err := r.db.WithContext(ctx).First(&order, "order_code = ?", orderCode).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &order, nil
}

func (r *billingRepository) MarkOrderFailed(ctx context.Context, orderCode string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.PaymentOrder{}).
		Where("order_code = ? AND status = ?", orderCode, db_models.OrderStatusPending).
		Update("status", db_models.OrderStatusFailed).Error
}

func (r *billingRepository) VerifyOrderAndUpgrade(ctx context.Context, orderCode, transactionID string, upgrade PlanUpgrade, now time.Time) (bool, error) {
	applied := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conditional transition guards the webhook/poll race: only the caller
		// whose update affects a row performs the tenant mutation.
		res := tx.Model(&db_models.PaymentOrder{}).
			Where("order_code = ? AND status = ?", orderCode, db_models.OrderStatusPending).
			Updates(map[string]interface{}{
				"status":         db_models.OrderStatusVerified,
				"transaction_id": transactionID,
				"verified_at":    now.Unix(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // lost the race; the winner already upgraded the tenant
		}
		applied = true

		var order db_models.PaymentOrder
		if err := tx.First(&order, "order_code = ?", orderCode).Error; err != nil {
			return err
		}

		if err := tx.Model(&db_models.School{}).
			Where("id = ?", order.SchoolID).
			Updates(map[string]interface{}{
				"plan_type":       upgrade.PlanID,
				"plan_expires_at": upgrade.ExpiresAt,
				"max_students":    upgrade.MaxStudents,
				"max_classes":     upgrade.MaxClasses,
			}).Error; err != nil {
			return err
		}

		detail, _ := json.Marshal(map[string]interface{}{
			"order_code":     orderCode,
			"plan":           upgrade.PlanID,
			"amount":         order.Amount,
			"transaction_id": transactionID,
		})
		activity := &db_models.ActivityLog{
			SchoolID: order.SchoolID,
			Actor:    "payment",
			Action:   "plan_upgraded",
			Detail:   detail,
		}
		return tx.Create(activity).Error
	})

	return applied, err
}

func (r *billingRepository) ListOrdersBySchool(ctx context.Context, schoolID string) ([]db_models.PaymentOrder, error) {
	var orders []db_models.PaymentOrder
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
