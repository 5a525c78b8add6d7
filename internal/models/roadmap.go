package models

import (
	"time"
)

// UserRoadmap stores the onboarding preferences a user's roadmap is built
// from. Absence of a row means the user has not onboarded yet, which is
// distinct from preferences that happen to match zero modules.
type UserRoadmap struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Difficulty     string    `gorm:"size:20" json:"difficulty"`
	Interests      []string  `gorm:"serializer:json" json:"interests"`
	LearningStyles []string  `gorm:"serializer:json" json:"learning_styles"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
