// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrTokenIsExpiredOrInvalid is returned when the cloud rejects the
	// configured access token.
	ErrTokenIsExpiredOrInvalid = errors.New("access token is expired or invalid")

	// ErrNotAuthenticated is returned when no access token is configured.
	ErrNotAuthenticated = errors.New("no access token configured")

	// ErrSharingRequestNotFound is returned when the cloud does not know the
	// answered request, e.g. because it was withdrawn.
	ErrSharingRequestNotFound = errors.New("sharing request not found on cloud")

	// ErrCloudUnavailable is returned when the cloud could not be reached or
	// failed internally.
	ErrCloudUnavailable = errors.New("cloud is unavailable")

	// ErrRefreshFailed wraps every refresh failure.
	ErrRefreshFailed = errors.New("failed to refresh sharing requests")
)
