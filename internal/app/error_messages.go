// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the cloud emulator writes into
// the description field of its responses.
//
// The client shows failure descriptions to the user verbatim, so the wording
// follows the device cloud's own messages.
package app

const (
	// MsgUnauthorized is returned when the Authorization header carries no
	// bearer token.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidRequestBody is returned when the PUT body is not valid JSON.
	MsgInvalidRequestBody = "Invalid request body"

	MsgRequestIDRequired     = "Request id is required"
	MsgInvalidPrimaryUser    = "Invalid primary_user"
	MsgInvalidStartRequestID = "Invalid start_request_id"

	// MsgSharingRequestNotFound is returned for an unknown request id.
	MsgSharingRequestNotFound = "Sharing request not found"

	// MsgSharingRequestAnswered is returned when a request was already
	// accepted or declined.
	MsgSharingRequestAnswered = "Sharing request already answered"

	// MsgSharingQuotaExceeded is returned for request ids configured to be
	// rejected.
	MsgSharingQuotaExceeded = "Sharing quota exceeded"

	MsgSharingRequestAccepted = "Sharing request accepted successfully"
	MsgSharingRequestDeclined = "Sharing request declined successfully"
)
