// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the device-management cloud on behalf of the
// share-inbox client.
//
// The primary abstraction is [CloudAdapter], which decouples the service
// layer from the REST transport. [NewHTTPCloudAdapter] is the resty-backed
// implementation.
//
// Failures that carry a server-provided description are returned as
// [*CloudError] so that callers can show the message verbatim. Everything
// else is mapped to the sentinel values in errors.go and can be matched with
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-share-inbox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_adapter_mock.go -package=mock

// CloudAdapter defines the cloud operations used by the client.
type CloudAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored, or an empty string.
	Token() string

	// TokenSubject returns the user name carried by the stored token. The
	// token signature is not verified; the value is for display only.
	TokenSubject() (string, error)

	// GetSharingRequests returns every sharing request addressed to the
	// current user, following pagination until the cloud reports no next
	// page.
	GetSharingRequests(ctx context.Context) ([]models.SharingRequest, error)

	// UpdateSharingRequest accepts (accept == true) or declines the request
	// identified by requestID.
	UpdateSharingRequest(ctx context.Context, requestID string, accept bool) error
}
