// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	ErrSharingRequestNotFound = errors.New("sharing request not found")
	ErrAlreadyAnswered        = errors.New("sharing request already answered")
	ErrUnknownStartRequestID  = errors.New("unknown start_request_id")
	ErrRejectedByPolicy       = errors.New("sharing request rejected")
)

// Cloud error codes returned in the error_code field.
const (
	codeUnauthorized    = 101002
	codeInvalidRequest  = 108001
	codeNotFound        = 108002
	codeAlreadyAnswered = 108003
	codeQuotaExceeded   = 108007
)
