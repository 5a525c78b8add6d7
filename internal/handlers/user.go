package handlers

import (
	"net/http"
	"strings"

	"skillpath/internal/db"
	"skillpath/internal/models"
	"skillpath/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile returns a user's public profile with recent posts.
func (h *UserHandler) Profile(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		Fail(c, http.StatusNotFound, "user not found")
		return
	}

	var posts []models.Post
	db.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Limit(10).Find(&posts)

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"posts": posts,
	})
}

type settingsRequest struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

// UpdateSettings edits the signed-in user's profile fields.
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		FailAuth(c)
		return
	}

	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid settings")
		return
	}

	if username := strings.TrimSpace(req.Username); username != "" {
		user.Username = username
	}
	if len(req.Bio) <= 200 {
		user.Bio = req.Bio
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := db.DB.Save(user).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "could not update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
