// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/service"
	"github.com/MKhiriev/go-share-inbox/internal/sharing"
	"github.com/MKhiriev/go-share-inbox/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options tune the screen.
type Options struct {
	// Language selects the screen texts ("en" or "ru").
	Language string
	// User is shown next to the title.
	User string
	// BuildInfo is shown on the about window.
	BuildInfo models.AppBuildInfo
	// Offline marks the initial list as coming from the cache.
	Offline bool
	// ProgramOptions are passed to tea.NewProgram.
	ProgramOptions []tea.ProgramOption
}

// TUI runs the sharing request screen.
type TUI struct {
	program *tea.Program
}

// New builds the screen over the initial pending list. Answers go through
// svc; formatter renders the rows.
func New(
	ctx context.Context,
	svc service.ClientSharingService,
	formatter *sharing.Formatter,
	initial []models.SharingRequest,
	opts Options,
	log *logger.Logger,
) *TUI {
	model := newInboxModel(ctx, svc, formatter, initial, opts, log)

	programOpts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts.ProgramOptions...)
	return &TUI{program: tea.NewProgram(model, programOpts...)}
}

// Run blocks until the user quits. It returns ErrUserQuit on a regular
// exit.
func (t *TUI) Run() error {
	final, err := t.program.Run()
	if err != nil {
		return err
	}

	result, ok := final.(inboxModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// RefreshHandler delivers background refresh results to the running
// screen.
func (t *TUI) RefreshHandler() service.RefreshHandler {
	return func(requests []models.SharingRequest, err error) {
		t.program.Send(refreshDoneMsg{requests: requests, err: err, background: true})
	}
}
