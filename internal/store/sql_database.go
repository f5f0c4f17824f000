package store

import (
	"database/sql"

	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/migrations"
)

// DB is the history database handle.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.logger)
}
