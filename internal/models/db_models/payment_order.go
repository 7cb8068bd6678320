package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusVerified OrderStatus = "verified"
	OrderStatusFailed   OrderStatus = "failed"
)

// PaymentOrder tracks one attempted plan purchase. PENDING -> VERIFIED or
// PENDING -> FAILED; both terminal. The pending->verified transition is a
// conditional update on the status column so that a webhook and a polling
// verification cannot both mutate the tenant.
type PaymentOrder struct {
	BaseModel
	SchoolID  uuid.UUID `gorm:"index;not null"`
	PlanID    string    `gorm:"size:20;not null"`
	OrderCode string    `gorm:"uniqueIndex;size:60;not null"`

	Amount   int64  // whole rupees, post-discount
	Discount int64  // whole rupees actually applied
	Currency string `gorm:"size:3;default:'INR'"`

	Status        OrderStatus `gorm:"size:10;index;default:'pending'"`
	TransactionID string      `gorm:"size:80"` // gateway payment id, set on verification
	PromoCodeID   *uuid.UUID  `gorm:"index"`
	VerifiedAt    *int64

	// Gateway session snapshot for traceability
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	School School `gorm:"foreignKey:SchoolID"`
}
