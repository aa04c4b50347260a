package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything resolved once at process start. Values come from
// TASKAPI_* environment variables with the defaults below.
type Config struct {
	Addr   string
	DBPath string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	TokenTTL    time.Duration

	// Bootstrap admin, provisioned on first startup when no admin exists.
	// Operators are expected to rotate these after deployment.
	AdminUsername    string
	AdminPassword    string
	AdminDisplayName string
}

// Load resolves configuration from the environment.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("TASKAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8008")
	v.SetDefault("db-path", "internal-tasks.db")
	v.SetDefault("jwt-secret", "development-insecure-secret-change-me")
	v.SetDefault("jwt-issuer", "internal-task-api")
	v.SetDefault("jwt-audience", "internal-task-clients")
	v.SetDefault("token-ttl-minutes", 30)
	v.SetDefault("admin-username", "admin")
	v.SetDefault("admin-password", "admin123")
	v.SetDefault("admin-display-name", "Administrator")

	return Config{
		Addr:             v.GetString("addr"),
		DBPath:           v.GetString("db-path"),
		JWTSecret:        v.GetString("jwt-secret"),
		JWTIssuer:        v.GetString("jwt-issuer"),
		JWTAudience:      v.GetString("jwt-audience"),
		TokenTTL:         time.Duration(v.GetInt("token-ttl-minutes")) * time.Minute,
		AdminUsername:    v.GetString("admin-username"),
		AdminPassword:    v.GetString("admin-password"),
		AdminDisplayName: v.GetString("admin-display-name"),
	}
}
