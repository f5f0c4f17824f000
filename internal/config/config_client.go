package config

import (
	"fmt"
	"time"

	"github.com/hakkadots/braille-client/models"
)

// ClientApp holds conversion behaviour settings for the client.
type ClientApp struct {
	// DefaultInputMode is applied to submissions without a mode.
	DefaultInputMode models.InputMode
	// Locale selects the notice catalog.
	Locale string
	// AutoCopy copies successful conversions automatically.
	AutoCopy bool
	// Text, when set, runs the client in one-shot mode.
	Text string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the conversion service base address.
	HTTPAddress string
	// ConvertPath is the conversion endpoint path.
	ConvertPath string
	// RequestTimeout is the timeout for one conversion round trip.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file; empty disables history.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PruneInterval defines how often the history pruner runs.
	PruneInterval time.Duration
	// HistoryRetention defines how long history entries are kept.
	HistoryRetention time.Duration
}

// ClientLog contains client logger settings.
type ClientLog struct {
	Path  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Display models.DisplayPreferences
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration of the running process.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	mode, err := models.ParseInputMode(cfg.App.DefaultInputMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	autoCopy := true
	if cfg.App.AutoCopy != nil {
		autoCopy = *cfg.App.AutoCopy
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DefaultInputMode: mode,
			Locale:           cfg.App.Locale,
			AutoCopy:         autoCopy,
			Text:             cfg.App.Text,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			ConvertPath:    cfg.Adapter.ConvertPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			PruneInterval:    cfg.Workers.PruneInterval,
			HistoryRetention: cfg.Workers.HistoryRetention,
		},
		Display: models.DisplayPreferences{
			Background: cfg.Display.Background,
			Foreground: cfg.Display.Foreground,
			FontSize:   cfg.Display.FontSize,
		}.Normalize(),
		Log: ClientLog{
			Path:  cfg.Log.Path,
			Level: cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}
