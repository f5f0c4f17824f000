package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/store"
	"github.com/hakkadots/braille-client/models"
)

type historyService struct {
	repository store.HistoryRepository
	now        func() time.Time

	logger *logger.Logger
}

// NewHistoryService wraps repository. A nil repository behaves like a
// disabled history.
func NewHistoryService(repository store.HistoryRepository, logger *logger.Logger) HistoryService {
	if repository == nil {
		repository = store.NewNoopHistoryRepository()
	}

	return &historyService{
		repository: repository,
		now:        time.Now,
		logger:     logger,
	}
}

func (h *historyService) Record(ctx context.Context, entry models.HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = h.now()
	}

	saved, err := h.repository.Save(ctx, entry)
	if err != nil {
		return fmt.Errorf("error saving history entry: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("history_id", saved.ID).Msg("conversion recorded")
	return nil
}

func (h *historyService) List(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	entries, err := h.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing history: %w", err)
	}

	return entries, nil
}

func (h *historyService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidRetention
	}

	cutoff := h.now().Add(-retention)
	removed, err := h.repository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error pruning history: %w", err)
	}

	if removed > 0 {
		h.logger.Info().Int64("removed", removed).Time("cutoff", cutoff).Msg("history pruned")
	}
	return removed, nil
}

func (h *historyService) Clear(ctx context.Context) (int64, error) {
	removed, err := h.repository.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("error clearing history: %w", err)
	}

	h.logger.Info().Int64("removed", removed).Msg("history cleared")
	return removed, nil
}
