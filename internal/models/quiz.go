package models

import (
	"time"
)

// Quiz belongs to a catalog module; passing it drives module progress.
type Quiz struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ModuleID  uint           `gorm:"not null;index" json:"module_id"`
	Module    Module         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title     string         `gorm:"not null" json:"title"`
	Questions []QuizQuestion `json:"questions"`
	CreatedAt time.Time      `json:"created_at"`
}

type QuizQuestion struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	QuizID  uint     `gorm:"not null;index" json:"quiz_id"`
	Prompt  string   `gorm:"type:text;not null" json:"prompt"`
	Options []string `gorm:"serializer:json" json:"options"`
	// Index into Options; never serialized to clients.
	Answer int `gorm:"not null" json:"-"`
}
