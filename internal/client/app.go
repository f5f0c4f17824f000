package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/service"
)

var ErrMissingDependency = errors.New("client: missing dependency")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  Worker

	// text switches Run to one-shot mode.
	text string
	out  io.Writer

	logger *logger.Logger
}

// NewApp assembles the client. ui may be nil when text is set.
func NewApp(services *service.ClientServices, ui UI, workers Worker, text string, out io.Writer, log *logger.Logger) (*App, error) {
	if services == nil || services.ConversionService == nil {
		return nil, fmt.Errorf("%w: services", ErrMissingDependency)
	}
	if ui == nil && text == "" {
		return nil, fmt.Errorf("%w: ui", ErrMissingDependency)
	}
	if workers == nil {
		return nil, fmt.Errorf("%w: workers", ErrMissingDependency)
	}
	if out == nil {
		out = io.Discard
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		text:     text,
		out:      out,
		logger:   log,
	}, nil
}

// Run starts the background workers, then either converts the configured
// text once or runs the UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.workers.Stop()

	if a.text != "" {
		return a.RunOnce(ctx, a.text)
	}

	a.logger.Info().Msg("starting tui")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Msg("tui closed")

	return nil
}

// RunOnce converts text with the default input mode and writes the braille
// to the output followed by a newline. The copy status, if any, follows on
// its own line.
func (a *App) RunOnce(ctx context.Context, text string) error {
	conversion := a.services.ConversionService

	outcome, err := conversion.SubmitConversion(ctx, text, "")
	if err != nil {
		return fmt.Errorf("%s: %w", conversion.Alert(err), err)
	}

	if _, err = fmt.Fprintln(a.out, outcome.Braille); err != nil {
		return fmt.Errorf("write braille: %w", err)
	}
	if outcome.CopyStatus != "" {
		if _, err = fmt.Fprintln(a.out, outcome.CopyStatus); err != nil {
			return fmt.Errorf("write copy status: %w", err)
		}
	}

	return nil
}
