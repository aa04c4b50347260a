package handlers

import (
	"net/http"

	"internal-task-api/internal/auth"
	"internal-task-api/internal/database"
	"internal-task-api/internal/middleware"
	"internal-task-api/internal/models"
	"internal-task-api/internal/policy"

	"github.com/gin-gonic/gin"
)

// CreateUserRequest is the admin-only account provisioning payload
type CreateUserRequest struct {
	Username    string          `json:"username" binding:"required"`
	Password    string          `json:"password" binding:"required"`
	DisplayName string          `json:"display_name" binding:"required"`
	Role        models.UserRole `json:"role" binding:"omitempty,oneof=admin employee"`
}

// UserResponse is the public profile shape; the password hash never leaves
// the store.
type UserResponse struct {
	ID          int             `json:"id"`
	Username    string          `json:"username"`
	DisplayName string          `json:"display_name"`
	Role        models.UserRole `json:"role"`
	IsActive    bool            `json:"is_active"`
}

func userResponse(u models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		IsActive:    u.IsActive,
	}
}

// CreateUser handles POST /users (admin only)
func CreateUser(c *gin.Context) {
	current := middleware.CurrentUser(c)
	if err := policy.RequireRole(current, models.RoleAdmin); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role == "" {
		req.Role = models.RoleEmployee
	}

	db := database.GetDB()
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, userResponse(user))
}

// GetMe handles GET /users/me
func GetMe(c *gin.Context) {
	current := middleware.CurrentUser(c)
	if current == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, userResponse(*current))
}

// GetAllUsers handles GET /users. Any authenticated caller may list profiles;
// the admin UI uses this for assignment pickers.
func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := database.GetDB().Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}
