package database

import (
	"log"

	"internal-task-api/internal/auth"
	"internal-task-api/internal/config"
	"internal-task-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the database, runs migrations and provisions the bootstrap
// admin account when none exists yet.
func InitDB(cfg config.Config) {
	var err error

	// Using glebarez/sqlite which is a pure Go implementation (no CGO required)
	DB, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Report{},
		&models.SystemSetting{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	if err := EnsureDefaultAdmin(DB, cfg); err != nil {
		log.Fatal("Failed to provision default admin: ", err)
	}

	log.Println("Database connected and migrated")
}

// EnsureDefaultAdmin creates the well-known bootstrap administrator unless an
// admin-role account already exists. Safe to run on every startup.
func EnsureDefaultAdmin(db *gorm.DB, cfg config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		DisplayName:  cfg.AdminDisplayName,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Provisioned default admin account %q; rotate its password", cfg.AdminUsername)
	return nil
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}
