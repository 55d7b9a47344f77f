// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sharing

import (
	"context"

	"github.com/MKhiriev/go-share-inbox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sharing_mock.go -package=mock

// Host is the screen presenting the pending list.
type Host interface {
	// ShowLoading shows a busy indicator with a localised label.
	ShowLoading(label string)

	// HideLoading hides the busy indicator.
	HideLoading()

	// ClearPendingRequests is called once the pending list becomes empty.
	ClearPendingRequests()

	// Render replaces the displayed rows.
	Render(rows []models.DisplayRow)

	// Notify shows a short message to the user.
	Notify(message string)
}

// Updater sends the user's answer to the cloud.
type Updater interface {
	UpdateSharingRequest(ctx context.Context, requestID string, accept bool) error
}

// RemoteError is implemented by errors that carry a server-provided message
// fit for the user.
type RemoteError interface {
	error
	Message() string
}
