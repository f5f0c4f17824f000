package store

import (
	"testing"
	"time"

	"github.com/hakkadots/braille-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertHistoryQuery(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CST", 8*3600))

	query, args, err := buildInsertHistoryQuery(models.HistoryEntry{
		RequestID: "req-1",
		Text:      "siang1",
		InputMode: models.InputModeSixian,
		Braille:   "⠎⠊⠁⠅",
		CreatedAt: createdAt,
	})

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO conversion_history (request_id,text,input_mode,braille,created_at) VALUES (?,?,?,?,?)", query)
	assert.Equal(t, []any{"req-1", "siang1", "四縣", "⠎⠊⠁⠅", createdAt.UTC()}, args)
}

func TestBuildListHistoryQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.HistoryFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter uses default limit",
			filter:    models.HistoryFilter{},
			wantQuery: "SELECT id, request_id, text, input_mode, braille, created_at FROM conversion_history ORDER BY created_at DESC, id DESC LIMIT 100",
		},
		{
			name:      "mode and limit",
			filter:    models.HistoryFilter{InputMode: models.InputModeHailu, Limit: 5},
			wantQuery: "SELECT id, request_id, text, input_mode, braille, created_at FROM conversion_history WHERE input_mode = ? ORDER BY created_at DESC, id DESC LIMIT 5",
			wantArgs:  []any{"海陸"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListHistoryQuery(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestBuildDeleteHistoryQueries(t *testing.T) {
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildDeleteHistoryOlderThanQuery(cutoff)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM conversion_history WHERE created_at < ?", query)
	assert.Equal(t, []any{cutoff}, args)

	query, args, err = buildClearHistoryQuery()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM conversion_history", query)
	assert.Empty(t, args)
}
