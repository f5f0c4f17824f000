// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard writes text to the user's clipboard.
//
// The backend is chosen once by [New]: the system clipboard when the platform
// supports it, otherwise an OSC 52 escape sequence written to the terminal so
// the terminal emulator places the text on the clipboard.
package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/hakkadots/braille-client/internal/logger"
)

//go:generate mockgen -source=clipboard.go -destination=../mock/clipboard_mock.go -package=mock

// Clipboard is the write side of a clipboard.
type Clipboard interface {
	// WriteText replaces the clipboard contents with s.
	WriteText(s string) error
	// Name identifies the backend in logs.
	Name() string
}

// package-level hooks so tests can stand in for the platform clipboard.
var (
	systemUnsupported = func() bool { return clipboard.Unsupported }
	systemWriteAll    = clipboard.WriteAll
	insideTmux        = func() bool { return os.Getenv("TMUX") != "" }
)

// New selects a backend. out is the terminal used for the OSC 52 fallback;
// a nil out with no system clipboard yields a backend that always fails with
// [ErrUnavailable].
func New(out io.Writer, log *logger.Logger) Clipboard {
	var cb Clipboard
	switch {
	case !systemUnsupported():
		cb = systemClipboard{}
	case out != nil:
		cb = &osc52Clipboard{out: out, tmux: insideTmux()}
	default:
		cb = unavailableClipboard{}
	}

	log.Info().Str("backend", cb.Name()).Msg("clipboard backend selected")
	return cb
}

type systemClipboard struct{}

func (systemClipboard) Name() string { return "system" }

func (systemClipboard) WriteText(s string) error {
	if err := systemWriteAll(s); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

type osc52Clipboard struct {
	out  io.Writer
	tmux bool
}

func (c *osc52Clipboard) Name() string { return "osc52" }

func (c *osc52Clipboard) WriteText(s string) error {
	seq := osc52.New(s)
	if c.tmux {
		seq = seq.Tmux()
	}

	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

type unavailableClipboard struct{}

func (unavailableClipboard) Name() string { return "unavailable" }

func (unavailableClipboard) WriteText(string) error { return ErrUnavailable }
