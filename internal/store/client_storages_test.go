package store

import (
	"context"
	"testing"

	"github.com/hakkadots/braille-client/internal/config"
	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages_EmptyDSNDisablesHistory(t *testing.T) {
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{}, logger.Nop())

	require.NoError(t, err)
	assert.False(t, storages.Enabled())
	assert.IsType(t, noopHistoryRepository{}, storages.HistoryRepository)
	assert.NoError(t, storages.Close())
}
