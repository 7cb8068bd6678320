package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLog is the audit trail for tenant-level changes. Plan upgrades
// append here inside the same transaction that mutates the school row.
type ActivityLog struct {
	BaseModel
	SchoolID uuid.UUID      `gorm:"index;not null"`
	Actor    string         `gorm:"size:40"` // "payment", "registration", account id, ...
	Action   string         `gorm:"size:60;not null"`
	Detail   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
