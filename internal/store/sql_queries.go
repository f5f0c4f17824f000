// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/hakkadots/braille-client/models"
)

const (
	historyTable = "conversion_history"

	// DefaultHistoryLimit caps listings that ask for no limit.
	DefaultHistoryLimit uint64 = 100
)

var historyColumns = []string{"id", "request_id", "text", "input_mode", "braille", "created_at"}

// psql is the statement builder for SQLite ('?' placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertHistoryQuery(entry models.HistoryEntry) (string, []any, error) {
	return psql.Insert(historyTable).
		Columns("request_id", "text", "input_mode", "braille", "created_at").
		Values(entry.RequestID, entry.Text, entry.InputMode.String(), entry.Braille, entry.CreatedAt.UTC()).
		ToSql()
}

func buildListHistoryQuery(filter models.HistoryFilter) (string, []any, error) {
	query := psql.Select(historyColumns...).
		From(historyTable).
		OrderBy("created_at DESC", "id DESC")

	if filter.InputMode != "" {
		query = query.Where(sq.Eq{"input_mode": filter.InputMode.String()})
	}
	limit := filter.Limit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	return query.Limit(limit).ToSql()
}

func buildDeleteHistoryOlderThanQuery(t time.Time) (string, []any, error) {
	return psql.Delete(historyTable).
		Where(sq.Lt{"created_at": t.UTC()}).
		ToSql()
}

func buildClearHistoryQuery() (string, []any, error) {
	return psql.Delete(historyTable).ToSql()
}
