package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Witcher21/GNS-POS/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the local SQLite file and syncs the schema.
// The handle is returned, not stored in a package global, so every store
// gets its connection injected and tests can run on their own databases.
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL keeps reads (reports, history) consistent while a checkout commits.
	if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	log.Println("✅ Database ready at", path)
	return db, nil
}
