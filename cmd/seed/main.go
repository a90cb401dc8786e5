package main

import (
	"flag"
	"log"

	"github.com/verbquiz/api/internal/config"
	"github.com/verbquiz/api/internal/database"
	"github.com/verbquiz/api/internal/model"
)

func main() {
	dbPath := flag.String("db", "", "Path to the sqlite database (defaults to DATABASE_PATH)")
	force := flag.Bool("force", false, "Delete existing verbs and reseed")
	flag.Parse()

	cfg := config.Load()
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if *force {
		if err := db.Where("1 = 1").Delete(&model.Verb{}).Error; err != nil {
			log.Fatalf("Failed to clear verbs: %v", err)
		}
		log.Println("Cleared existing verbs")
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed verbs: %v", err)
	}

	log.Printf("Database ready: %s", cfg.DatabasePath)
}
