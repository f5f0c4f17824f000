// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/hakkadots/braille-client/internal/config"
	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/service"
)

// HistoryPruner deletes history entries older than the retention period on a
// ticker. It prunes once right after Start.
type HistoryPruner struct {
	history   service.HistoryService
	interval  time.Duration
	retention time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewHistoryPruner creates an idle pruner. Non-positive interval and
// retention fall back to the configuration defaults.
func NewHistoryPruner(history service.HistoryService, interval, retention time.Duration, log *logger.Logger) *HistoryPruner {
	if interval <= 0 {
		interval = config.DefaultPruneInterval
	}
	if retention <= 0 {
		retention = config.DefaultHistoryRetention
	}

	return &HistoryPruner{
		history:   history,
		interval:  interval,
		retention: retention,
		logger:    log,
	}
}

// Start implements [Worker]. Any previously running loop is stopped first.
func (p *HistoryPruner) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.prune(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.prune(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker].
func (p *HistoryPruner) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *HistoryPruner) prune(ctx context.Context) {
	if _, err := p.history.Prune(ctx, p.retention); err != nil && ctx.Err() == nil {
		p.logger.Err(err).Str("func", "HistoryPruner.prune").Msg("history pruning failed")
	}
}
