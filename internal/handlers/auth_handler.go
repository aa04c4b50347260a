package handlers

import (
	"net/http"

	"internal-task-api/internal/auth"
	"internal-task-api/internal/database"
	"internal-task-api/internal/models"

	"github.com/gin-gonic/gin"
)

// TokenRequest is the OAuth2-style form login payload
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is the issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// IssueToken handles POST /token. Unknown usernames and wrong passwords are
// deliberately the same 401 response.
func IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Username and password are required",
		})
		return
	}

	var user models.User
	if err := database.GetDB().Where("username = ?", req.Username).First(&user).Error; err != nil {
		loginFailed(c)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		loginFailed(c)
		return
	}

	token, err := auth.GenerateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func loginFailed(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
}
