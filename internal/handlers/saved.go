package handlers

import (
	"net/http"

	"skillpath/internal/db"
	"skillpath/internal/models"

	"github.com/gin-gonic/gin"
)

type SavedHandler struct{}

func NewSavedHandler() *SavedHandler {
	return &SavedHandler{}
}

// Save bookmarks a post. Saving a post that is already saved is benign:
// the duplicate-key error is swallowed and the call reports success.
func (h *SavedHandler) Save(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		FailAuth(c)
		return
	}

	pid := c.Param("pid")
	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		Fail(c, http.StatusNotFound, "post not found")
		return
	}

	row := models.SavedPost{UserID: user.ID, PostID: post.ID}
	if err := db.DB.Create(&row).Error; err != nil && !db.IsDuplicate(err) {
		Fail(c, http.StatusInternalServerError, "could not save post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// Unsave removes a bookmark; removing one that does not exist is also benign.
func (h *SavedHandler) Unsave(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		FailAuth(c)
		return
	}

	pid := c.Param("pid")
	var post models.Post
	if err := db.DB.Where("pid = ?", pid).First(&post).Error; err != nil {
		Fail(c, http.StatusNotFound, "post not found")
		return
	}

	if err := db.DB.Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Delete(&models.SavedPost{}).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "could not unsave post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": false})
}
