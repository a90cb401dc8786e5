package config

import (
	"os"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

type Config struct {
	DatabasePath string
	Port         string
	TemplateGlob string
}

func Load() *Config {
	return &Config{
		DatabasePath: getEnv("DATABASE_PATH", "data/app.db"),
		Port:         getEnv("PORT", "5000"),
		TemplateGlob: getEnv("TEMPLATE_GLOB", "web/templates/*.html"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
