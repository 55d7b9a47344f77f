// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-share-inbox/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSharingService defines the client-side contract for pending sharing
// requests.
type ClientSharingService interface {
	// Refresh fetches the requests addressed to the user, keeps the pending
	// ones, stores them in the local cache and returns them in cloud order.
	// When the cloud cannot be reached it returns the cached pending list
	// together with a non-nil error, so the caller can still show it.
	Refresh(ctx context.Context) ([]models.SharingRequest, error)

	// Pending returns the cached pending list without contacting the cloud.
	Pending(ctx context.Context) ([]models.SharingRequest, error)

	// UpdateSharingRequest sends the answer to the cloud and on success
	// records it in the cache. Errors carrying a cloud description are
	// returned unchanged.
	UpdateSharingRequest(ctx context.Context, requestID string, accept bool) error
}

// ClientRefreshJob periodically refreshes the pending list in the
// background.
type ClientRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// RefreshHandler receives the result of every background refresh.
type RefreshHandler func(requests []models.SharingRequest, err error)
