package db_models

import "github.com/google/uuid"

type Class struct {
	BaseModel
	SchoolID  uuid.UUID `gorm:"index;not null"`
	Name      string    `gorm:"size:60;not null"`
	Section   string    `gorm:"size:10"`
	TeacherID *uuid.UUID
	Capacity  int

	School School `gorm:"foreignKey:SchoolID"`
}
