package middleware

import (
	"net/http"
	"strings"

	"internal-task-api/internal/auth"
	"internal-task-api/internal/database"
	"internal-task-api/internal/models"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// JWTAuthMiddleware validates the bearer token and resolves its subject
// against the credential store. The token is the sole carrier of identity;
// there is no session state.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		// Fallback for WebSocket/browser where custom headers cannot be set:
		// allow token in query param
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			unauthorized(c, "Authorization token is required")
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		// The embedded username must still resolve to an account.
		var user models.User
		if err := database.GetDB().Where("username = ?", claims.Subject).First(&user).Error; err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(currentUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the resolved account for this request, or nil when the
// request did not pass JWTAuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
	c.Abort()
}
