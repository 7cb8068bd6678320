package db_models

type PromoType string

const (
	PromoFlat       PromoType = "flat"
	PromoPercentage PromoType = "percentage"
)

type PromoStatus string

const (
	PromoActive   PromoStatus = "active"
	PromoInactive PromoStatus = "inactive"
)

// PromoCode is a checkout discount token. CurrentUsage is incremented at
// order creation, not verification, so an abandoned checkout still consumes
// a use. Invariant: CurrentUsage <= *UsageLimit when UsageLimit is set,
// enforced by the conditional increment in the repository.
type PromoCode struct {
	BaseModel
	Code            string      `gorm:"uniqueIndex;size:40;not null"`
	Type            PromoType   `gorm:"size:12;not null"`
	Value           int64       `gorm:"not null"`               // percent for percentage, whole rupees for flat
	ApplicablePlans string      `gorm:"size:120;default:'all'"` // csv of plan ids, or "all"
	ValidFrom       int64       `gorm:"not null"`               // unix seconds, inclusive by calendar day
	ValidTo         int64       `gorm:"not null"`
	UsageLimit      *int64      // nil = unlimited
	CurrentUsage    int64       `gorm:"default:0"`
	Status          PromoStatus `gorm:"size:10;index;default:'active'"`
}
