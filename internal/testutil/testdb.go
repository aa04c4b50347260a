package testutil

import (
	"testing"

	"internal-task-api/internal/auth"
	"internal-task-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewInMemoryDB creates an in-memory SQLite DB and runs migrations.
func NewInMemoryDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Report{},
		&models.SystemSetting{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// CreateUser seeds an account with a real bcrypt hash so login flows work.
func CreateUser(t *testing.T, db *gorm.DB, username, password string, role models.UserRole) models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: hash,
		DisplayName:  username,
		Role:         role,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}
