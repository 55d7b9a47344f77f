// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRequestID     = errors.New("request id is required")
	ErrDuplicateRequestID = errors.New("duplicate request id")
	ErrEmptyPrimaryUser   = errors.New("primary user name is required")
	ErrEmptyNodeIDs       = errors.New("node ids list cannot be empty")
	ErrEmptyNodeID        = errors.New("node id cannot be blank")
	ErrInvalidStatus      = errors.New("invalid request status")
	ErrNegativeTimestamp  = errors.New("request timestamp cannot be negative")
)
