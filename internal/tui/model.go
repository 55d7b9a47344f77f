// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/service"
	"github.com/MKhiriev/go-share-inbox/internal/sharing"
	"github.com/MKhiriev/go-share-inbox/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	toastTTL     = 3 * time.Second
	minRowWidth  = 20
	rowIndentLen = 6
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type inboxModel struct {
	ctx       context.Context
	service   service.ClientSharingService
	presenter *sharing.Presenter
	host      *screenHost
	logger    *logger.Logger

	text      uiText
	user      string
	buildInfo models.AppBuildInfo

	spinner       spinner.Model
	cursor        int
	width         int
	refreshing    bool
	offline       bool
	showBuildInfo bool
	toastSeen     int
	quitByUser    bool
}

func newInboxModel(
	ctx context.Context,
	svc service.ClientSharingService,
	formatter *sharing.Formatter,
	initial []models.SharingRequest,
	opts Options,
	log *logger.Logger,
) inboxModel {
	if log == nil {
		log = logger.Nop()
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	host := newScreenHost(nil)
	presenter := sharing.NewPresenter(initial, host, svc, formatter, log)
	host.Render(presenter.Rows())

	return inboxModel{
		ctx:        ctx,
		service:    svc,
		presenter:  presenter,
		host:       host,
		logger:     log,
		text:       textFor(opts.Language),
		user:       opts.User,
		buildInfo:  opts.BuildInfo,
		spinner:    s,
		refreshing: true,
		offline:    opts.Offline,
	}
}

// Init starts the first refresh; the model is created with refreshing set.
func (m inboxModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefresh())
}

func (m inboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	nm := next.(inboxModel)

	// schedule hiding of a toast posted while handling msg
	if nm.host.toastSeq != nm.toastSeen {
		nm.toastSeen = nm.host.toastSeq
		cmd = tea.Batch(cmd, cmdClearToast(nm.toastSeen))
	}
	return nm, cmd
}

func (m inboxModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case answerDoneMsg:
		m.presenter.Complete(msg.outcome)
		m.clampCursor()
		return m, nil
	case refreshDoneMsg:
		return m.applyRefresh(msg)
	case copiedMsg:
		m.host.Notify(m.text.copied)
		return m, nil
	case copyFailedMsg:
		m.logger.Warn().Err(msg.err).Str("func", "inboxModel.update").Msg("clipboard write failed")
		m.host.Notify(m.text.copyFailed)
		return m, nil
	case clearToastMsg:
		if msg.seq == m.host.toastSeq {
			m.host.toast = ""
		}
		return m, nil
	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m inboxModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.host.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.accept):
		return m.answer(true)
	case key.Matches(msg, keys.decline):
		return m.answer(false)
	case key.Matches(msg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
	case key.Matches(msg, keys.copy):
		if m.cursor < 0 || m.cursor >= len(m.host.rows) {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.host.rows[m.cursor].RequestID)
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m inboxModel) answer(accept bool) (tea.Model, tea.Cmd) {
	action, err := m.presenter.Begin(m.cursor, accept)
	switch {
	case errors.Is(err, sharing.ErrRequestInFlight):
		m.host.Notify(m.text.inFlight)
		return m, nil
	case err != nil:
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, m.cmdAnswer(action))
}

func (m inboxModel) applyRefresh(msg refreshDoneMsg) (tea.Model, tea.Cmd) {
	if !msg.background {
		m.refreshing = false
	}
	m.offline = msg.err != nil

	if msg.err != nil {
		m.logger.Warn().Err(msg.err).Str("func", "inboxModel.applyRefresh").Msg("refresh failed")
		m.host.Notify(m.text.refreshFailed)
		if msg.requests == nil {
			return m, nil
		}
	}

	m.presenter.SetRequests(msg.requests)
	m.clampCursor()
	return m, nil
}

func (m *inboxModel) clampCursor() {
	if m.cursor >= len(m.host.rows) {
		m.cursor = len(m.host.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m inboxModel) busy() bool {
	return m.refreshing || m.host.loading
}

func (m inboxModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.text))
	}

	title := m.text.title
	if m.user != "" {
		title += "  ·  " + m.user
	}

	var b strings.Builder
	if m.offline {
		b.WriteString(offlineStyle.Render("[" + m.text.offline + "]"))
		b.WriteString("\n\n")
	}

	if m.host.empty || len(m.host.rows) == 0 {
		b.WriteString(m.text.empty)
		b.WriteString("\n")
	} else {
		width := m.width - rowIndentLen - 4
		if width < minRowWidth {
			width = 0
		}
		for i, row := range m.host.rows {
			line := fitText(row.Text, width)
			switch {
			case m.presenter.InFlight(row.RequestID):
				line = busyRowStyle.Render("  " + line)
			case i == m.cursor:
				line = selectedStyle.Render("> " + line)
			default:
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.busy() {
		label := m.host.loadingLabel
		if label == "" {
			label = m.text.refreshing
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), label))
		b.WriteString("\n")
	}

	if m.host.toast != "" {
		b.WriteString("\n")
		b.WriteString(toastStyle.Render(m.host.toast))
		b.WriteString("\n")
	}

	return appStyle.Render(renderPage(title, b.String(), m.text.help, m.text.quitHint))
}

func (m inboxModel) cmdAnswer(action sharing.Action) tea.Cmd {
	ctx := m.ctx
	presenter := m.presenter
	return func() tea.Msg {
		return answerDoneMsg{outcome: presenter.Execute(ctx, action)}
	}
}

func (m inboxModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.service
	return func() tea.Msg {
		requests, err := svc.Refresh(ctx)
		return refreshDoneMsg{requests: requests, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{requestID: text}
	}
}

func cmdClearToast(seq int) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}
