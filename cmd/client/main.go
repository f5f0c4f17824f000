package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hakkadots/braille-client/internal/adapter"
	"github.com/hakkadots/braille-client/internal/client"
	"github.com/hakkadots/braille-client/internal/clipboard"
	"github.com/hakkadots/braille-client/internal/config"
	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/service"
	"github.com/hakkadots/braille-client/internal/session"
	"github.com/hakkadots/braille-client/internal/store"
	"github.com/hakkadots/braille-client/internal/tui"
	"github.com/hakkadots/braille-client/internal/workers"
	"github.com/hakkadots/braille-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("braille-client", cfg.Log.Path, cfg.Log.Level)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("braille client starting")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conversionAdapter, err := adapter.NewHTTPConversionAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create conversion adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	state := session.New(cfg.Display)
	cb := clipboard.New(os.Stderr, log)
	services := service.NewClientServices(cfg.App, storages, conversionAdapter, cb, state, log)
	bgWorkers := workers.NewClientWorkers(cfg.Workers, storages.Enabled(), services.HistoryService, log)

	var ui client.UI
	if cfg.App.Text == "" {
		t, err := tui.New(services, state, buildInfo, log)
		if err != nil {
			return fmt.Errorf("error creating ui: %w", err)
		}
		ui = t
	}

	app, err := client.NewApp(services, ui, bgWorkers, cfg.App.Text, os.Stdout, log)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}

	return nil
}
