// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-genius/internal/config"
	"github.com/MKhiriev/go-chat-genius/internal/logger"
	"github.com/MKhiriev/go-chat-genius/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers builds the client's background workers: the status poller
// refreshing the session every cfg.StatusInterval. The workers live until
// ctx is cancelled or Stop is called.
func NewClientWorkers(ctx context.Context, cfg config.ClientWorkers, services *service.ClientServices, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		&periodicWorker{
			ctx:      ctx,
			name:     "status_poller",
			interval: cfg.StatusInterval,
			job:      services.StatusJob,
			logger:   logger,
		},
	}}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// periodicWorker runs a service.ClientStatusJob as a Worker.
type periodicWorker struct {
	ctx      context.Context
	name     string
	interval time.Duration
	job      service.ClientStatusJob
	logger   *logger.Logger
}

func (p *periodicWorker) Run() {
	p.logger.Info().Str("worker", p.name).Dur("interval", p.interval).Msg("starting worker")
	p.job.Start(p.ctx, p.interval)
}

func (p *periodicWorker) Stop() {
	p.job.Stop()
	p.logger.Info().Str("worker", p.name).Msg("worker stopped")
}
