package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBUser    string
	DBPass    string
	DBHost    string
	DBName    string
	JWTSecret string
}

// LoadEnv reads configuration from the environment, loading a local .env
// file first when present. Every value has a development default.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   getenv("GIN_MODE", ""),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    getenv("DB_PASS", ""),
		DBHost:    getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenv("DB_NAME", "hotel_app"),
		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
