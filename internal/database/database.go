package database

import (
	"log"
	"os"
	"path/filepath"

	"github.com/verbquiz/api/internal/config"
	"github.com/verbquiz/api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Verb{},
		&model.Session{},
		&model.SessionError{},
	)
}

// Seed inserts the curated verb list when the verbs table is empty.
// Verbs are immutable reference data; a populated table is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Verb{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("%d verbs already present, skipping seed", count)
		return nil
	}

	verbs := IrregularVerbs()
	if err := db.Create(&verbs).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d irregular verbs", len(verbs))
	return nil
}
