package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string // empty = in-memory storage
	FrontendURL string
	// Resume upload settings
	UploadDir      string
	MaxUploadBytes int64
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBUrl:          getEnv("DATABASE_URL", ""),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 5*1024*1024)),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
