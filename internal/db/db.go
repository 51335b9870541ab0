package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"usersvc/internal/model"
)

// Open returns a connected GORM DB instance for the given database URL.
// PostgreSQL URLs (postgres:// or postgresql://) are passed to the postgres
// driver as-is; sqlite:// URLs are opened as local files, with the special
// path ":memory:" giving an in-memory database.
func Open(databaseURL string) (*gorm.DB, error) {
	dialector, err := dialectorFor(databaseURL)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func dialectorFor(databaseURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return postgres.Open(databaseURL), nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		dsn := strings.TrimPrefix(databaseURL, "sqlite://")
		if dsn == ":memory:" {
			// pooled connections must all see the same in-memory database
			dsn = "file::memory:?cache=shared"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database URL %q", databaseURL)
	}
}

// Migrate creates or updates the schema for all application models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.HealthCheck{},
	)
}

// Reset drops all application tables. Used by the RESET_DB flow in the server
// entrypoint; drop failures for missing tables are reported to the caller.
func Reset(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&model.User{},
		&model.HealthCheck{},
	)
}
