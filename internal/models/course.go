package models

import (
	"time"
)

// Course is one entry of the static course-video catalog.
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50;not null;index" json:"category"`
	Level       string    `gorm:"size:20" json:"level"`
	VideoURL    string    `json:"video_url"`
	Minutes     int       `gorm:"default:0" json:"minutes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
