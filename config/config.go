package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Persistent store configuration
	StoreDriver string // "sqlite", "file" or "memory"
	StorePath   string // database file for sqlite, data directory for file
	// Demo data bootstrap (one employer, one applicant, five postings)
	SeedDemoData bool
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development, ignored elsewhere
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		FrontendURL:  strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		StoreDriver:  getEnv("STORE_DRIVER", "sqlite"),
		StorePath:    getEnv("STORE_PATH", "emplealocal.db"),
		SeedDemoData: getEnvBool("SEED_DEMO_DATA", true),
	}

	switch cfg.StoreDriver {
	case "sqlite", "file", "memory":
	default:
		log.Printf("WARNING: unknown STORE_DRIVER %q, falling back to sqlite", cfg.StoreDriver)
		cfg.StoreDriver = "sqlite"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
