package handlers

import (
	"net/http"

	"skillpath/internal/middleware"
	"skillpath/internal/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the signed-in user from the request context, or nil
// for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// Fail writes a JSON error body with the given status.
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// FailAuth is the shared refusal for actions that need a signed-in user.
func FailAuth(c *gin.Context) {
	Fail(c, http.StatusUnauthorized, "authentication required")
}
