package models

import (
	"time"
)

type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Pid     string `gorm:"uniqueIndex;size:8;not null" json:"pid"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`

	// Denormalized counters. Written transactionally on vote/comment
	// mutations and reconciled against the source tables by the counters
	// worker, so they must always converge to the real row counts.
	Upvotes      int `gorm:"default:0" json:"upvotes"`
	Downvotes    int `gorm:"default:0" json:"downvotes"`
	CommentCount int `gorm:"default:0" json:"comment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
