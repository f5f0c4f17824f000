package service

import (
	"github.com/hakkadots/braille-client/internal/adapter"
	"github.com/hakkadots/braille-client/internal/app"
	"github.com/hakkadots/braille-client/internal/clipboard"
	"github.com/hakkadots/braille-client/internal/config"
	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/store"
	"github.com/hakkadots/braille-client/internal/utils"
)

// ClientServices groups the services one client session needs.
type ClientServices struct {
	ConversionService ConversionService
	HistoryService    HistoryService
	Printer           *app.Printer
}

func NewClientServices(
	appCfg config.ClientApp,
	storages *store.ClientStorages,
	conversionAdapter adapter.ConversionAdapter,
	cb clipboard.Clipboard,
	state UIState,
	logger *logger.Logger,
) *ClientServices {
	printer := app.NewPrinter(appCfg.Locale)
	historySvc := NewHistoryService(storages.HistoryRepository, logger)

	conversionSvc := NewConversionService(
		conversionAdapter,
		cb,
		state,
		historySvc,
		utils.NewUUIDGenerator(),
		printer,
		ConversionOptions{DefaultInputMode: appCfg.DefaultInputMode, AutoCopy: appCfg.AutoCopy},
		logger,
	)

	return &ClientServices{
		ConversionService: conversionSvc,
		HistoryService:    historySvc,
		Printer:           printer,
	}
}
