// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-share-inbox/internal/sharing"
	"github.com/MKhiriev/go-share-inbox/models"
)

// screenHost is the state the presenter draws into. It is only touched from
// the bubbletea update loop.
type screenHost struct {
	rows         []models.DisplayRow
	empty        bool
	loading      bool
	loadingLabel string
	// active counts ShowLoading calls not yet matched by HideLoading.
	active int
	toast        string
	toastSeq     int
}

var _ sharing.Host = (*screenHost)(nil)

func newScreenHost(rows []models.DisplayRow) *screenHost {
	return &screenHost{rows: rows, empty: len(rows) == 0}
}

func (h *screenHost) ShowLoading(label string) {
	h.active++
	h.loading = true
	h.loadingLabel = label
}

func (h *screenHost) HideLoading() {
	if h.active > 0 {
		h.active--
	}
	if h.active == 0 {
		h.loading = false
		h.loadingLabel = ""
	}
}

func (h *screenHost) ClearPendingRequests() {
	h.rows = nil
	h.empty = true
}

func (h *screenHost) Render(rows []models.DisplayRow) {
	h.rows = rows
	if len(rows) > 0 {
		h.empty = false
	}
}

func (h *screenHost) Notify(message string) {
	h.toast = message
	h.toastSeq++
}
