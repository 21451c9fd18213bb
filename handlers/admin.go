package handlers

import (
	"net/http"
	"time"

	"fabulous/config"
	"fabulous/models"
	"fabulous/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const adminSessionDuration = 24 * time.Hour

// AdminLoginHandler handles POST /api/admin/login. Credentials are the
// configured admin username and a bcrypt password hash; on success the
// client receives a short-lived bearer token for the admin endpoints.
func AdminLoginHandler(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin login is not configured"})
		return
	}

	if req.Username != config.AppConfig.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(req.Username, adminSessionDuration)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.AdminLoginResponse{
		Token:     token,
		ExpiresIn: int(adminSessionDuration.Seconds()),
	})
}
