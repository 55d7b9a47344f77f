// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-share-inbox/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSharingRequestRepository caches the sharing requests last fetched
// from the cloud.
type LocalSharingRequestRepository interface {
	// ReplacePending drops every cached pending request and stores requests
	// in their list order.
	ReplacePending(ctx context.Context, requests []models.SharingRequest) error
	// GetPending returns cached pending requests in list order.
	GetPending(ctx context.Context) ([]models.SharingRequest, error)
	// SetStatus records the user's answer for requestID.
	SetStatus(ctx context.Context, requestID string, status models.SharingStatus) error
}
