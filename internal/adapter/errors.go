// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Transport errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrInvalidBaseURL = errors.New("invalid cloud base url")
	ErrNoToken        = errors.New("no access token set")
)

// CloudError is a failure reported by the cloud with a human readable
// description. The description is meant to be shown to the user as is.
type CloudError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Code is the cloud specific error_code, zero when absent.
	Code int
	// Description is the server-provided message.
	Description string
}

func (e *CloudError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("cloud error %d (code %d): %s", e.StatusCode, e.Code, e.Description)
	}
	return fmt.Sprintf("cloud error %d: %s", e.StatusCode, e.Description)
}

// Message returns the server-provided description.
func (e *CloudError) Message() string {
	return e.Description
}
