package store

import (
	"context"
	"time"

	"github.com/hakkadots/braille-client/models"
)

// noopHistoryRepository stands in when no history database is configured.
// Writes succeed silently; reads report [ErrHistoryDisabled].
type noopHistoryRepository struct{}

func NewNoopHistoryRepository() HistoryRepository {
	return noopHistoryRepository{}
}

func (noopHistoryRepository) Save(_ context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	return entry, nil
}

func (noopHistoryRepository) List(context.Context, models.HistoryFilter) ([]models.HistoryEntry, error) {
	return nil, ErrHistoryDisabled
}

func (noopHistoryRepository) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (noopHistoryRepository) Clear(context.Context) (int64, error) {
	return 0, ErrHistoryDisabled
}
