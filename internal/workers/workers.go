package workers

import (
	"context"

	"github.com/hakkadots/braille-client/internal/config"
	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups workers in start order.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewClientWorkers returns the background workers of the client. The history
// pruner only runs when history is enabled.
func NewClientWorkers(cfg config.ClientWorkers, historyEnabled bool, history service.HistoryService, log *logger.Logger) *Workers {
	if !historyEnabled {
		return NewWorkers()
	}

	return NewWorkers(NewHistoryPruner(history, cfg.PruneInterval, cfg.HistoryRetention, log))
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
