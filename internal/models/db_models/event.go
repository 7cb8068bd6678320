package db_models

import "github.com/google/uuid"

type Event struct {
	BaseModel
	SchoolID    uuid.UUID `gorm:"index;not null"`
	Title       string    `gorm:"size:200;not null"`
	Description string
	Venue       string `gorm:"size:120"`
	StartsAt    int64  `gorm:"not null"`
	EndsAt      int64
}
