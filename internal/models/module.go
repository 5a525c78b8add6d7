package models

import (
	"time"
)

// Difficulty tiers in their fixed order. Unknown values sort after all of
// these when building a roadmap.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// ModuleResources is the static resource bundle attached to a catalog module.
type ModuleResources struct {
	Readings  []string `json:"readings"`
	Videos    []string `json:"videos"`
	Exercises []string `json:"exercises"`
	Projects  []string `json:"projects"`
}

// Module is one entry of the bundled curriculum catalog. The catalog is
// seeded at startup and never edited by users.
type Module struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Title          string          `gorm:"not null" json:"title"`
	Description    string          `gorm:"type:text" json:"description"`
	Difficulty     string          `gorm:"size:20;not null;index" json:"difficulty_level"`
	Category       string          `gorm:"size:50;not null;index" json:"category"`
	LearningStyles []string        `gorm:"serializer:json" json:"learning_style"`
	EstimatedHours int             `gorm:"default:0" json:"estimated_hours"`
	Resources      ModuleResources `gorm:"serializer:json" json:"resources"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
