// database/db.go - Database Connection (PostgreSQL or file-backed SQLite)
package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB initializes the database connection.
// DATABASE_URL selects PostgreSQL; otherwise a local SQLite file is used
// (DB_PATH, default ecoverse.db).
func InitDB() {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var err error
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL database: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("Failed to get database instance: %v", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)

		log.Println("✅ PostgreSQL database connected successfully")
	} else {
		path := getEnvOrDefault("DB_PATH", "ecoverse.db")
		db, err = gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			log.Fatalf("Failed to open SQLite database %s: %v", path, err)
		}
		log.Printf("✅ SQLite database opened: %s", path)
	}

	// DB_RESET=true drops everything and reseeds, matching the demo deployments
	if isTruthy(os.Getenv("DB_RESET")) {
		if err := DropAll(db); err != nil {
			log.Fatalf("Failed to reset database: %v", err)
		}
		log.Println("🔄 Database reset requested, all tables dropped")
	}

	RunMigrations()

	if err := SeedDemoData(db); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func isTruthy(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call InitDB() first.")
	}
	return db
}

// CloseDB closes the database connection
func CloseDB() error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %v", err)
	}

	log.Println("Database connection closed")
	return nil
}
