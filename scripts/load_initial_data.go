package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"watchbill-admin/internal/config"
	"watchbill-admin/internal/database"
	"watchbill-admin/internal/seed"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	log.Println("Loading initial roster from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	stats, err := seed.NewLoader(db).LoadDir(dataDir)
	if err != nil {
		log.Fatalf("Failed to load roster from %s: %v", dataDir, err)
	}

	log.Printf("Quals: %d created, %d total", stats.QualsCreated, stats.QualsTotal)
	log.Printf("Sailors: %d created, %d updated", stats.SailorsCreated, stats.SailorsUpdated)
	log.Printf("Events: %d created, %d already present", stats.EventsCreated, stats.EventsSkipped)
	log.Println("Initial roster loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM's "record not found" noise from the name lookups
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
