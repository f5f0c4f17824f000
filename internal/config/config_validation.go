// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/hakkadots/braille-client/internal/app"
	"github.com/hakkadots/braille-client/models"
)

// validate checks the merged [StructuredConfig] after defaults are applied.
// Deeper checks that depend on the client view live in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if _, err := models.ParseInputMode(cfg.App.DefaultInputMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if !app.IsSupportedLocale(cfg.App.Locale) {
		return fmt.Errorf("%w: unsupported locale %q", ErrInvalidAppConfigs, cfg.App.Locale)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if !strings.HasPrefix(cfg.Adapter.ConvertPath, "/") {
		return fmt.Errorf("%w: convert path must start with /", ErrInvalidAdapterConfigs)
	}

	if !cfg.App.DefaultInputMode.IsValid() {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN != "" && (cfg.Workers.PruneInterval <= 0 || cfg.Workers.HistoryRetention <= 0) {
		return ErrInvalidWorkerConfigs
	}

	if err := cfg.Display.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDisplayConfigs, err)
	}

	return nil
}
