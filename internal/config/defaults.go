package config

import (
	"time"

	"github.com/hakkadots/braille-client/internal/app"
	"github.com/hakkadots/braille-client/models"
)

const (
	DefaultHTTPAddress      = "http://localhost:5000"
	DefaultConvertPath      = "/convert"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultPruneInterval    = time.Hour
	DefaultHistoryRetention = 30 * 24 * time.Hour
	DefaultLogLevel         = "debug"
)

// applyDefaults fills every field that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.DefaultInputMode == "" {
		cfg.App.DefaultInputMode = models.InputModeSixian.String()
	}
	if cfg.App.Locale == "" {
		cfg.App.Locale = app.DefaultLocale
	}
	if cfg.App.AutoCopy == nil {
		autoCopy := true
		cfg.App.AutoCopy = &autoCopy
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.ConvertPath == "" {
		cfg.Adapter.ConvertPath = DefaultConvertPath
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Workers.PruneInterval == 0 {
		cfg.Workers.PruneInterval = DefaultPruneInterval
	}
	if cfg.Workers.HistoryRetention == 0 {
		cfg.Workers.HistoryRetention = DefaultHistoryRetention
	}

	if cfg.Display.Background == "" {
		cfg.Display.Background = models.DefaultBackground
	}
	if cfg.Display.Foreground == "" {
		cfg.Display.Foreground = models.DefaultForeground
	}
	if cfg.Display.FontSize == 0 {
		cfg.Display.FontSize = models.DefaultFontSize
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
