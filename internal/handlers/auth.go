package handlers

import (
	"net/http"
	"strings"

	"skillpath/internal/db"
	"skillpath/internal/models"
	"skillpath/internal/services"
	"skillpath/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	mailService *services.MailService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		mailService: services.NewMailService(),
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "invalid email or missing password")
		return
	}

	if len(req.Password) < 6 {
		Fail(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	username := req.Username
	if username == "" {
		// Default username from the email local part.
		username = strings.Split(req.Email, "@")[0]
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "could not create account")
		return
	}

	user := models.User{
		Username: username,
		Email:    req.Email,
		Password: hash,
		Avatar:   utils.GetRandomEmoji(),
	}

	if err := db.DB.Create(&user).Error; err != nil {
		if db.IsDuplicate(err) {
			Fail(c, http.StatusConflict, "email already registered")
			return
		}
		Fail(c, http.StatusInternalServerError, "could not create account")
		return
	}

	h.mailService.SendWelcomeEmail(user.Email, user.Username)

	// Sign in right away.
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "email and password required")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		Fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		Fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout clears the session. Teardown of client-held session artifacts is
// a first-class operation: everything stored in the cookie goes.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	session.Save()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Session returns the current signed-in user, mirroring a session-restore
// call on page load.
func (h *AuthHandler) Session(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type resetRequest struct {
	Email string `json:"email" binding:"required"`
}

// RequestPasswordReset issues a reset code by email. The response does not
// reveal whether the address exists.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "email required")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err == nil {
		code := utils.GenerateRandomCode(6)
		user.VerifyCode = code
		db.DB.Save(&user)
		h.mailService.SendPasswordResetEmail(user.Email, code)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type resetConfirmRequest struct {
	Email    string `json:"email" binding:"required"`
	Code     string `json:"code" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "email, code and password required")
		return
	}

	if len(req.Password) < 6 {
		Fail(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		Fail(c, http.StatusBadRequest, "invalid reset code")
		return
	}

	if user.VerifyCode == "" || user.VerifyCode != req.Code {
		Fail(c, http.StatusBadRequest, "invalid reset code")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "could not reset password")
		return
	}

	user.Password = hash
	user.VerifyCode = ""
	if err := db.DB.Save(&user).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "could not reset password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
