package store

import (
	"context"
	"time"

	"github.com/hakkadots/braille-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// HistoryRepository is the local log of successful conversions.
type HistoryRepository interface {
	// Save stores entry and returns it with its assigned ID.
	Save(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error)
	// List returns entries matching filter, newest first.
	List(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error)
	// DeleteOlderThan removes entries created before t and reports how many
	// were removed.
	DeleteOlderThan(ctx context.Context, t time.Time) (int64, error)
	// Clear removes every entry.
	Clear(ctx context.Context) (int64, error)
}
