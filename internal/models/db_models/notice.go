package db_models

import "github.com/google/uuid"

type Notice struct {
	BaseModel
	SchoolID    uuid.UUID `gorm:"index;not null"`
	Title       string    `gorm:"size:200;not null"`
	Body        string
	Audience    string `gorm:"size:20;default:'all'"` // all | students | teachers
	PublishedAt int64
}
