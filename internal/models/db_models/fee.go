package db_models

import "github.com/google/uuid"

type FeeStatus string

const (
	FeeStatusUnpaid FeeStatus = "unpaid"
	FeeStatusPaid   FeeStatus = "paid"
)

// FeeRecord is a manually collected fee entry against a student.
type FeeRecord struct {
	BaseModel
	SchoolID  uuid.UUID `gorm:"index;not null"`
	StudentID uuid.UUID `gorm:"index;not null"`
	Period    string    `gorm:"size:20"` // e.g. "2026-04"
	Amount    int64     // whole rupees
	Status    FeeStatus `gorm:"size:10;default:'unpaid'"`
	Mode      string    `gorm:"size:20"` // cash | upi | cheque
	PaidAt    *int64
}
