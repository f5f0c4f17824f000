// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from a .env file,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds conversion behaviour settings: default input mode, locale of
	// user-facing notices, automatic copy.
	App App `envPrefix:"APP_"`

	// Adapter holds the conversion service address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the history pruner schedule.
	Workers Workers `envPrefix:"WORKERS_"`

	// Display holds the initial display preferences of the session.
	Display Display `envPrefix:"DISPLAY_"`

	// Log holds the client log destination and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds conversion behaviour settings.
type App struct {
	// DefaultInputMode is used when a submission carries no input mode.
	// Accepts the canonical value or an ASCII alias (e.g. "hailu").
	// Env: APP_INPUT_MODE
	DefaultInputMode string `env:"INPUT_MODE"`

	// Locale selects the language of user-facing notices ("zh-TW" or "en").
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`

	// AutoCopy copies every successful conversion to the clipboard.
	// A nil value means "not configured by this source".
	// Env: APP_AUTO_COPY
	AutoCopy *bool `env:"AUTO_COPY"`

	// Text switches the client to one-shot mode: convert Text, print the
	// result and exit. Flag only.
	Text string
}

// Adapter holds the outbound conversion service settings.
type Adapter struct {
	// HTTPAddress is the base address of the conversion service, with or
	// without scheme (e.g. "localhost:5000", "https://braille.example.org").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ConvertPath is the path of the conversion endpoint.
	// Env: ADAPTER_CONVERT_PATH
	ConvertPath string `env:"CONVERT_PATH"`

	// RequestTimeout bounds a single conversion round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the history database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite history database settings.
type DB struct {
	// DSN is the SQLite file path. Empty disables the history.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PruneInterval is how often the history pruner runs.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`

	// HistoryRetention is how long history entries are kept.
	// Env: WORKERS_HISTORY_RETENTION
	HistoryRetention time.Duration `env:"HISTORY_RETENTION"`
}

// Display holds the initial display preferences.
type Display struct {
	// Background is the pane background colour (#rgb or #rrggbb).
	// Env: DISPLAY_BACKGROUND
	Background string `env:"BACKGROUND"`

	// Foreground is the pane text colour (#rgb or #rrggbb).
	// Env: DISPLAY_FOREGROUND
	Foreground string `env:"FOREGROUND"`

	// FontSize is the nominal font size in px.
	// Env: DISPLAY_FONT_SIZE
	FontSize int `env:"FONT_SIZE"`
}

// Log holds the client logger settings.
type Log struct {
	// Path is the log file. Empty means "logs" next to the executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, defaults and validates the configuration
// from all available sources using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(os.Getenv(envFileVariable)).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
