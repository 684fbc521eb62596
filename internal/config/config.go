// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port         string
	AppEnv       string
	GreetingName string

	// Externally reachable base URL (e.g. an ngrok tunnel). Empty means the
	// resolver falls back to the local default.
	BaseURL string

	// Path of the JSON file holding the full inventory array.
	InventoryFile string

	// Image storage: "local" writes to ImageDir, "s3" uses an S3-compatible
	// object store (MinIO locally).
	StorageBackend   string
	ImageDir         string
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		AppEnv:       getEnv("APP_ENV", "development"),
		GreetingName: getEnv("GREETING_NAME", "Evans"),

		BaseURL: getEnv("BASE_URL", ""),

		InventoryFile: getEnv("INVENTORY_FILE", "data/inventory.json"),

		StorageBackend:   getEnv("STORAGE_BACKEND", "local"),
		ImageDir:         getEnv("IMAGE_DIR", "images"),
		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "images"),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
