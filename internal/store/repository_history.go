package store

import (
	"context"
	"fmt"
	"time"

	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/models"
)

type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

func (h *historyRepository) Save(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	query, args, err := buildInsertHistoryQuery(entry)
	if err != nil {
		return entry, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := h.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.Save").
			Str("request_id", entry.RequestID).
			Msg("failed to insert history entry")
		return entry, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil || affected == 0 {
		return entry, ErrHistoryNotSaved
	}

	id, err := result.LastInsertId()
	if err != nil {
		return entry, fmt.Errorf("%w: last insert id: %w", ErrExecutingStatement, err)
	}
	entry.ID = id

	return entry, nil
}

func (h *historyRepository) List(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListHistoryQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.List").
			Msg("failed to query history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var (
			entry models.HistoryEntry
			mode  string
		)

		if err = rows.Scan(
			&entry.ID,
			&entry.RequestID,
			&entry.Text,
			&mode,
			&entry.Braille,
			&entry.CreatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "historyRepository.List").
				Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.InputMode = models.InputMode(mode)

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (h *historyRepository) DeleteOlderThan(ctx context.Context, t time.Time) (int64, error) {
	query, args, err := buildDeleteHistoryOlderThanQuery(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return h.exec(ctx, "historyRepository.DeleteOlderThan", query, args)
}

func (h *historyRepository) Clear(ctx context.Context) (int64, error) {
	query, args, err := buildClearHistoryQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return h.exec(ctx, "historyRepository.Clear", query, args)
}

func (h *historyRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	result, err := h.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: rows affected: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
