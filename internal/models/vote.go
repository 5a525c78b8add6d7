package models

import (
	"time"
)

// PostVote holds at most one row per (post, user) pair. Absence of a row
// means the user has not voted; Value is +1 for an upvote, -1 for a downvote.
type PostVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index;uniqueIndex:idx_post_voter" json:"post_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_post_voter" json:"user_id"`
	Value     int       `gorm:"not null" json:"value"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
}
