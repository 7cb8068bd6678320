package db_models

import "github.com/google/uuid"

type Teacher struct {
	BaseModel
	SchoolID uuid.UUID `gorm:"index;not null"`
	Name     string    `gorm:"size:120;not null"`
	Email    string    `gorm:"size:120"`
	Phone    string    `gorm:"size:20"`
	Subject  string    `gorm:"size:60"`

	School School `gorm:"foreignKey:SchoolID"`
}
