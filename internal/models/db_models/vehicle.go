package db_models

import "github.com/google/uuid"

type Vehicle struct {
	BaseModel
	SchoolID       uuid.UUID `gorm:"index;not null"`
	RegistrationNo string    `gorm:"size:20;not null"`
	DriverName     string    `gorm:"size:120"`
	DriverPhone    string    `gorm:"size:20"`
	Route          string    `gorm:"size:200"`
	Capacity       int
}
