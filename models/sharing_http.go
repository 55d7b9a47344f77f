// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SharingRequestsResponse is the body of
// GET /v1/user/nodes/sharing/requests.
type SharingRequestsResponse struct {
	SharingRequests []SharingRequest `json:"sharing_requests"`

	// NextRequestID is set when more pages are available. It is passed back
	// as the start_request_id query parameter.
	NextRequestID string `json:"next_request_id,omitempty"`
}

// UpdateSharingRequest is the body of PUT /v1/user/nodes/sharing/requests.
type UpdateSharingRequest struct {
	RequestID string `json:"request_id"`
	Accept    bool   `json:"accept"`
}

// CloudStatus is the generic status body returned by the cloud for both
// successful updates and failures.
type CloudStatus struct {
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}
