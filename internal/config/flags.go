package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client command line into a partial [StructuredConfig].
// Only flags that appear in args are reflected; everything else stays zero so
// it does not override other sources when merged.
//
// Flags:
//
//	-a conversion service address ([scheme://]host[:port])
//	-p conversion endpoint path
//	-request-timeout request timeout (e.g. "15s")
//	-mode default input mode (canonical value or alias)
//	-locale notice language (zh-TW, en)
//	-auto-copy copy every conversion automatically (true/false)
//	-d history database file (empty disables history)
//	-history-retention how long history is kept (e.g. "720h")
//	-prune-interval history pruner period (e.g. "1h")
//	-bg / -fg pane colours (#rrggbb)
//	-font-size font size in px
//	-log-file / -log-level client log settings
//	-c/-config json file path with configs
//	-text convert this text once, print the braille and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		address          string
		convertPath      string
		requestTimeout   time.Duration
		inputMode        string
		locale           string
		autoCopy         bool
		dsn              string
		historyRetention time.Duration
		pruneInterval    time.Duration
		background       string
		foreground       string
		fontSize         int
		logPath          string
		logLevel         string
		jsonConfigPath   string
		text             string
	)

	fs := flag.NewFlagSet("braille-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Conversion service address [scheme://]host[:port]")
	fs.StringVar(&convertPath, "p", "", "Conversion endpoint path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&inputMode, "mode", "", "Default input mode")
	fs.StringVar(&locale, "locale", "", "Notice language (zh-TW, en)")
	fs.BoolVar(&autoCopy, "auto-copy", true, "Copy conversions to the clipboard automatically")
	fs.StringVar(&dsn, "d", "", "History database file")
	fs.DurationVar(&historyRetention, "history-retention", 0, "History retention (e.g., 720h)")
	fs.DurationVar(&pruneInterval, "prune-interval", 0, "History prune interval (e.g., 1h)")
	fs.StringVar(&background, "bg", "", "Pane background colour")
	fs.StringVar(&foreground, "fg", "", "Pane text colour")
	fs.IntVar(&fontSize, "font-size", 0, "Font size in px")
	fs.StringVar(&logPath, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&text, "text", "", "Convert the text once and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DefaultInputMode: inputMode,
			Locale:           locale,
			Text:             text,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			ConvertPath:    convertPath,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Workers: Workers{
			PruneInterval:    pruneInterval,
			HistoryRetention: historyRetention,
		},
		Display: Display{
			Background: background,
			Foreground: foreground,
			FontSize:   fontSize,
		},
		Log: Log{
			Path:  logPath,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "auto-copy" {
			v := autoCopy
			cfg.App.AutoCopy = &v
		}
	})

	return cfg, nil
}
