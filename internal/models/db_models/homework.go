package db_models

import "github.com/google/uuid"

type Homework struct {
	BaseModel
	SchoolID    uuid.UUID  `gorm:"index;not null"`
	ClassID     *uuid.UUID `gorm:"index"`
	Subject     string     `gorm:"size:60"`
	Title       string     `gorm:"size:200;not null"`
	Description string
	DueAt       int64
}
