package models

import (
	"time"
)

// Progress statuses for a (user, module) pair.
const (
	StatusLocked     = "locked"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// UserModuleProgress is the per-user overlay on the static catalog. A row is
// created on the first progress update; modules without a row render as
// 0% / locked.
type UserModuleProgress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_module" json:"user_id"`
	ModuleID  uint      `gorm:"not null;index;uniqueIndex:idx_user_module" json:"module_id"`
	Percent   int       `gorm:"default:0" json:"percent"` // 0-100
	Status    string    `gorm:"size:20;default:locked" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
