package models

import (
	"time"
)

// SavedPost marks a post bookmarked by a user.
type SavedPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_saved" json:"user_id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_user_saved" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	CreatedAt time.Time `json:"created_at"`
}
