// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-share-inbox/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Cloud errors with a description pass through so the
// description can reach the user.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var cloudErr *adapter.CloudError
	if errors.As(err, &cloudErr) && cloudErr.Description != "" {
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrNoToken):
		return ErrNotAuthenticated
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrSharingRequestNotFound, err)
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrCloudUnavailable, err)
	}

	return err
}
