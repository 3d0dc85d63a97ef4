// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-genius/internal/config"
	"github.com/MKhiriev/go-chat-genius/internal/logger"
	"github.com/MKhiriev/go-chat-genius/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
	ws.Stop()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	// orderWorker records its index into the shared order slice
	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := &Workers{workers: []Worker{
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	}}
	ws.Run()
	ws.Stop()

	// started in order, stopped in reverse
	assert.Equal(t, []int{1, 2, 3, -3, -2, -1}, order)
}

func TestWorkers_Stop_CalledOnce(t *testing.T) {
	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w}}

	ws.Run()
	ws.Stop()

	if w.runCount != 1 || w.stopCount != 1 {
		t.Errorf("expected one Run and one Stop, got %d/%d", w.runCount, w.stopCount)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run and
// the negated ID on Stop.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, -o.id)
}

// fakeStatusJob records Start/Stop calls of the status poller.
type fakeStatusJob struct {
	started  atomic.Int64
	stopped  atomic.Int64
	interval atomic.Int64
}

func (f *fakeStatusJob) Start(_ context.Context, interval time.Duration) {
	f.started.Add(1)
	f.interval.Store(int64(interval))
}

func (f *fakeStatusJob) Stop() {
	f.stopped.Add(1)
}

func TestNewClientWorkers_DrivesStatusJob(t *testing.T) {
	job := &fakeStatusJob{}
	services := &service.ClientServices{StatusJob: job}

	ws := NewClientWorkers(context.Background(), config.ClientWorkers{StatusInterval: 15 * time.Second}, services, logger.Nop())
	require.Len(t, ws.workers, 1)

	ws.Run()
	assert.Equal(t, int64(1), job.started.Load())
	assert.Equal(t, int64(15*time.Second), job.interval.Load())

	ws.Stop()
	assert.Equal(t, int64(1), job.stopped.Load())
}
