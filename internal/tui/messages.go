// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-share-inbox/internal/sharing"
	"github.com/MKhiriev/go-share-inbox/models"
)

type answerDoneMsg struct {
	outcome sharing.Outcome
}

type refreshDoneMsg struct {
	requests []models.SharingRequest
	err      error
	// background marks results of the refresh job; they never end a refresh
	// started from the screen.
	background bool
}

type copiedMsg struct {
	requestID string
}

type copyFailedMsg struct {
	err error
}

type clearToastMsg struct {
	seq int
}
