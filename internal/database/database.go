package database

import (
	"fmt"
	"time"

	"task-manager-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite database at path and runs migrations.
// The returned handle is the only persistence gateway in the process; it is
// constructed here and passed down explicitly (no package-level singleton).
func Open(path string) (*gorm.DB, error) {
	// Using glebarez/sqlite which is a pure Go implementation (no CGO
	// required). Foreign keys are off by default in SQLite, so the cascade
	// and restrict rules on the models only hold with the pragma enabled.
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surface unique/foreign-key violations as gorm sentinel errors
		// so the store layer can map them to its own taxonomy.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate the schema (creates tables and constraints if missing)
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Task{},
		&models.TaskAssignment{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
