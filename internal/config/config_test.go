package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "data/app.db", cfg.DatabasePath)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "web/templates/*.html", cfg.TemplateGlob)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/quiz.db")
	t.Setenv("PORT", "8080")

	cfg := Load()

	assert.Equal(t, "/tmp/quiz.db", cfg.DatabasePath)
	assert.Equal(t, "8080", cfg.Port)
}
