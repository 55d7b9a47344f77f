// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-share-inbox/models"
)

const (
	FieldRequestID       = "request_id"
	FieldPrimaryUserName = "primary_user_name"
	FieldNodeIDs         = "node_ids"
	FieldStatus          = "request_status"
	FieldTimestamp       = "request_timestamp"
)

var allowedStatuses = []models.SharingStatus{
	models.SharingStatusPending,
	models.SharingStatusAccepted,
	models.SharingStatusDeclined,
}

type SharingRequestValidator struct{}

func NewSharingRequestValidator() Validator {
	return &SharingRequestValidator{}
}

func (v *SharingRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SharingRequest:
		return v.validateSharingRequest(ctx, value, fields...)
	case *models.SharingRequest:
		return v.validateSharingRequest(ctx, *value, fields...)

	case []models.SharingRequest:
		return v.validateSeeds(ctx, value, fields...)

	case models.UpdateSharingRequest:
		return v.validateUpdate(ctx, value, fields...)
	case *models.UpdateSharingRequest:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSharingRequest treats an empty request id and an empty status as
// valid: the emulator fills both in.
func (v *SharingRequestValidator) validateSharingRequest(_ context.Context, req models.SharingRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrimaryUserName, FieldNodeIDs, FieldStatus, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldRequestID:
			if strings.TrimSpace(req.RequestID) == "" {
				return ErrEmptyRequestID
			}
		case FieldPrimaryUserName:
			if strings.TrimSpace(req.PrimaryUserName) == "" {
				return ErrEmptyPrimaryUser
			}
		case FieldNodeIDs:
			if len(req.NodeIDs) == 0 {
				return ErrEmptyNodeIDs
			}
			for _, id := range req.NodeIDs {
				if strings.TrimSpace(id) == "" {
					return ErrEmptyNodeID
				}
			}
		case FieldStatus:
			if req.Status != "" && !isAllowedStatus(req.Status) {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
			}
		case FieldTimestamp:
			if req.Timestamp < 0 {
				return ErrNegativeTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSeeds validates every request and rejects repeated non-empty ids.
func (v *SharingRequestValidator) validateSeeds(ctx context.Context, seeds []models.SharingRequest, fields ...string) error {
	seen := make(map[string]struct{}, len(seeds))
	for i, req := range seeds {
		if err := v.validateSharingRequest(ctx, req, fields...); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}

		if req.RequestID == "" {
			continue
		}
		if _, ok := seen[req.RequestID]; ok {
			return fmt.Errorf("validation error at index %d: %w: %s", i, ErrDuplicateRequestID, req.RequestID)
		}
		seen[req.RequestID] = struct{}{}
	}
	return nil
}

func (v *SharingRequestValidator) validateUpdate(_ context.Context, req models.UpdateSharingRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequestID}
	}

	for _, f := range fields {
		switch f {
		case FieldRequestID:
			if strings.TrimSpace(req.RequestID) == "" {
				return ErrEmptyRequestID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isAllowedStatus(s models.SharingStatus) bool {
	for _, allowed := range allowedStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}
