package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	StorageDriver      string
	MigrationsPath     string
	RateLimit          string // ulule formatted rate, e.g. "100-M"; empty disables limiting
	CORSAllowedOrigins []string
	OperatorUserID     string // Acts as the user for CLI commands
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("STORAGE_DRIVER", StoragePostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("OPERATOR_USER_ID", "system")

	// Actual environment variables override .env values and defaults.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		StorageDriver:  strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		RateLimit:      strings.TrimSpace(v.GetString("RATE_LIMIT")),
		OperatorUserID: v.GetString("OPERATOR_USER_ID"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StorageMemory:
		log.Println("Warning: STORAGE_DRIVER=memory, nothing will be persisted.")
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: expected %s or %s", cfg.StorageDriver, StoragePostgres, StorageMemory)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	return cfg, nil
}
