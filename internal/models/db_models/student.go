package db_models

import "github.com/google/uuid"

type Student struct {
	BaseModel
	SchoolID      uuid.UUID  `gorm:"index;not null"`
	ClassID       *uuid.UUID `gorm:"index"`
	Name          string     `gorm:"size:120;not null"`
	AdmissionNo   string     `gorm:"size:30"`
	GuardianName  string     `gorm:"size:120"`
	GuardianPhone string     `gorm:"size:20"`

	School School `gorm:"foreignKey:SchoolID"`
}
