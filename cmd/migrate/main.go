// Command migrate creates the application database when missing and runs
// schema migration.
package main

import (
	"database/sql"
	"fmt"
	"log"

	"bulletin/internal/config"
	"bulletin/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := ensureDatabase(cfg); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Printf("Migration complete for database %q", cfg.DBName)
}

// ensureDatabase connects to the maintenance database and creates the
// application database if it does not exist yet.
func ensureDatabase(cfg *config.Config) error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBSSLMode,
	)

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var exists bool
	err = sqlDB.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	// CREATE DATABASE cannot be parameterized; the name comes from config,
	// not request input.
	_, err = sqlDB.Exec(fmt.Sprintf("CREATE DATABASE %q", cfg.DBName))
	return err
}
