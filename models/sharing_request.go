// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SharingStatus is the lifecycle state of a sharing request as reported by
// the cloud.
type SharingStatus string

const (
	// SharingStatusPending marks a request that still awaits an answer from
	// the secondary user.
	SharingStatusPending SharingStatus = "pending"
	// SharingStatusAccepted marks a request the secondary user accepted.
	SharingStatusAccepted SharingStatus = "accepted"
	// SharingStatusDeclined marks a request the secondary user declined.
	SharingStatusDeclined SharingStatus = "declined"
)

// SharingRequest is an invitation from a primary user to share one or more
// nodes (devices) with the current user.
type SharingRequest struct {
	// RequestID is the opaque identifier of the request, unique among
	// pending requests.
	RequestID string `json:"request_id"`

	// PrimaryUserName is the display name of the user offering the share.
	PrimaryUserName string `json:"primary_user_name"`

	// SecondaryUserName is the user the request is addressed to.
	SecondaryUserName string `json:"secondary_user_name,omitempty"`

	// NodeIDs lists the shared node identifiers in the order the cloud
	// returned them. Used for the general sentence.
	NodeIDs []string `json:"node_ids"`

	// Metadata is an optional JSON object. When present it may contain a
	// "devices" array of objects with a "name" field.
	Metadata string `json:"metadata,omitempty"`

	// Status is the request state.
	Status SharingStatus `json:"request_status"`

	// Timestamp is the request creation time in unix seconds.
	Timestamp int64 `json:"request_timestamp"`
}

// IsPending reports whether the request still awaits an answer. Requests
// without a status are treated as pending.
func (r SharingRequest) IsPending() bool {
	return r.Status == "" || r.Status == SharingStatusPending
}

// DisplayRow is the rendered form of one pending request.
type DisplayRow struct {
	RequestID string
	Text      string
}
