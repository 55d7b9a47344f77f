// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-share-inbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySharingService считает вызовы Refresh.
type spySharingService struct {
	calls atomic.Int64
	err   error
}

func (s *spySharingService) Refresh(_ context.Context) ([]models.SharingRequest, error) {
	s.calls.Add(1)
	return []models.SharingRequest{{RequestID: "r1"}}, s.err
}

func (s *spySharingService) Pending(_ context.Context) ([]models.SharingRequest, error) {
	return nil, nil
}

func (s *spySharingService) UpdateSharingRequest(_ context.Context, _ string, _ bool) error {
	return nil
}

// ── NewClientRefreshJob ──────────────────────────────────────────────────────

func TestNewClientRefreshJob_ReturnsInterface(t *testing.T) {
	job := NewClientRefreshJob(&spySharingService{}, nil)
	require.NotNil(t, job)

	var _ ClientRefreshJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientRefreshJob_Start_CallsRefresh(t *testing.T) {
	spy := &spySharingService{}
	job := NewClientRefreshJob(spy, nil)

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Refresh должен быть вызван несколько раз, вызвано: %d", got)
}

func TestClientRefreshJob_DeliversResults(t *testing.T) {
	spy := &spySharingService{err: assert.AnError}

	var (
		mu      sync.Mutex
		results []error
		lastLen int
	)
	job := NewClientRefreshJob(spy, func(requests []models.SharingRequest, err error) {
		mu.Lock()
		defer mu.Unlock()
		results = append(results, err)
		lastLen = len(requests)
	})

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, results)
	assert.ErrorIs(t, results[0], assert.AnError, "ошибки не останавливают джоб и передаются обработчику")
	assert.Equal(t, 1, lastLen)
}

func TestClientRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySharingService{}
	job := NewClientRefreshJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestClientRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientRefreshJob(&spySharingService{}, nil)
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewClientRefreshJob(&spySharingService{}, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySharingService{}
	job := NewClientRefreshJob(spy, nil)

	// interval <= 0 → дефолт 5 минут, за 20ms вызовов быть не должно
	job.Start(context.Background(), -time.Second)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestClientRefreshJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySharingService{}
	job := NewClientRefreshJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start повторно на том же job, внутри вызовет Stop()
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "второй Start должен продолжить генерировать вызовы")
}

func TestClientRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewClientRefreshJob(&spySharingService{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}
