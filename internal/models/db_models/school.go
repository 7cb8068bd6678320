package db_models

import (
	"github.com/google/uuid"
)

// School is the tenant aggregate. Plan fields (PlanType, PlanExpiresAt,
// MaxStudents, MaxClasses) are derived from the plan catalog: they are set
// at registration (trial defaults) and rewritten by a verified payment,
// never edited independently.
type School struct {
	BaseModel
	Name    string `gorm:"size:120;not null"`
	Email   string `gorm:"uniqueIndex;size:120;not null"`
	Phone   string `gorm:"size:20"`
	Address string `gorm:"size:255"`

	PlanType      string `gorm:"size:20;index;default:'trial'"`
	PlanExpiresAt *int64 // unix seconds; nil for legacy trial rows (14-day window from CreatedAt applies)
	MaxStudents   int64
	MaxClasses    int64

	ReferralPartnerID *uuid.UUID `gorm:"index"`

	Accounts []Account
}
