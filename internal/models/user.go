package models

import (
	"time"
)

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"not null" json:"username"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"` // bcrypt hash
	Avatar     string    `gorm:"default:🌱" json:"avatar"`
	Bio        string    `gorm:"size:200" json:"bio"`
	VerifyCode string    `gorm:"size:20" json:"-"` // password reset code
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
