// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"
)

const defaultRefreshInterval = 5 * time.Minute

type clientRefreshJob struct {
	sharingService ClientSharingService
	onRefresh      RefreshHandler

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a job that calls sharingService.Refresh on a
// ticker and hands every result to onRefresh. onRefresh may be nil. The job
// is idle until Start is called.
func NewClientRefreshJob(sharingService ClientSharingService, onRefresh RefreshHandler) ClientRefreshJob {
	return &clientRefreshJob{sharingService: sharingService, onRefresh: onRefresh}
}

// Start implements ClientRefreshJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
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
				requests, err := j.sharingService.Refresh(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				if j.onRefresh != nil {
					j.onRefresh(requests, err)
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not
// running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
