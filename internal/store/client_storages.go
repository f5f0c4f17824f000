package store

import (
	"context"
	"fmt"

	"github.com/hakkadots/braille-client/internal/config"
	"github.com/hakkadots/braille-client/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// HistoryRepository is the SQLite-backed conversion history, or a no-op
	// repository when history is disabled.
	HistoryRepository HistoryRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Returns a no-op history when cfg.DB.DSN is empty.
//  2. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  3. Runs pending schema migrations via [DB.Migrate].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == "" {
		logger.Info().Msg("history database not configured, history disabled")
		return &ClientStorages{HistoryRepository: NewNoopHistoryRepository()}, nil
	}

	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		HistoryRepository: NewHistoryRepository(db, logger),
		db:                db,
	}, nil
}

// Enabled reports whether a history database is attached.
func (s *ClientStorages) Enabled() bool {
	return s.db != nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
