// Package tui is the terminal front end of the braille client, built on
// bubbletea. One program shows the converter screen, the history and the
// display preferences; every remote call runs as a tea.Cmd.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/service"
	"github.com/hakkadots/braille-client/models"
)

type TUI struct {
	services  *service.ClientServices
	state     State
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption

	logger *logger.Logger
}

func New(services *service.ClientServices, state State, buildInfo models.AppBuildInfo, log *logger.Logger, options ...tea.ProgramOption) (*TUI, error) {
	if services == nil || services.ConversionService == nil || services.Printer == nil {
		return nil, ErrMissingServices
	}
	if state == nil {
		return nil, ErrMissingState
	}
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}

	return &TUI{
		services:  services,
		state:     state,
		buildInfo: buildInfo,
		options:   options,
		logger:    log,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.state, t.buildInfo, t.logger)

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	if _, err := tea.NewProgram(model, options...).Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}
