// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-genius/models"
)

// DefaultStatusInterval is the refresh period used when none is configured.
const DefaultStatusInterval = 30 * time.Second

type statusRefresher interface {
	RefreshStatus(ctx context.Context) (models.ContentStatus, error)
}

type clientStatusJob struct {
	session statusRefresher

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientStatusJob creates a clientStatusJob that calls
// session.RefreshStatus on a ticker. The job is idle until Start is called.
func NewClientStatusJob(session statusRefresher) ClientStatusJob {
	return &clientStatusJob{session: session}
}

// Start implements ClientStatusJob. It stops any previously running job, then
// launches a background goroutine that refreshes the status every interval.
// The goroutine exits when ctx is cancelled or Stop is called. Refresh errors
// are logged by the session and otherwise ignored; the next tick retries.
func (j *clientStatusJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultStatusInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.session.RefreshStatus(jobCtx)
			}
		}
	}()
}

// Stop implements ClientStatusJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientStatusJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
