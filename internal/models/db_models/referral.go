package db_models

import "github.com/google/uuid"

// Partner is a referral-program participant. Schools registering with the
// partner's code are linked to it; a commission row is recorded when the
// referred school's order is verified.
type Partner struct {
	BaseModel
	Name           string `gorm:"size:120;not null"`
	Email          string `gorm:"uniqueIndex;size:120;not null"`
	ReferralCode   string `gorm:"uniqueIndex;size:20;not null"`
	CommissionRate int64  `gorm:"default:10"` // percent of verified order amount
}

type ReferralCommission struct {
	BaseModel
	PartnerID uuid.UUID `gorm:"index;not null"`
	SchoolID  uuid.UUID `gorm:"index;not null"`
	OrderID   uuid.UUID `gorm:"index;not null"`
	Amount    int64     // whole rupees

	Partner Partner `gorm:"foreignKey:PartnerID"`
}
