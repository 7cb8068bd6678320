package db_models

import "github.com/google/uuid"

const (
	RoleAdmin    = "admin"    // school administrator
	RoleStaff    = "staff"    // school staff member
	RolePlatform = "platform" // SaaS operator (promo/referral administration)
)

type Account struct {
	BaseModel
	SchoolID     uuid.UUID `gorm:"index"`
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"size:20;default:'admin'"`

	School School `gorm:"foreignKey:SchoolID"`
}
