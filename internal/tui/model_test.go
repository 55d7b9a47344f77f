// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-share-inbox/internal/adapter"
	"github.com/MKhiriev/go-share-inbox/internal/mock"
	"github.com/MKhiriev/go-share-inbox/internal/sharing"
	"github.com/MKhiriev/go-share-inbox/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pending(ids ...string) []models.SharingRequest {
	out := make([]models.SharingRequest, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.SharingRequest{
			RequestID:       id,
			PrimaryUserName: "alice",
			NodeIDs:         []string{"node-" + id},
			Status:          models.SharingStatusPending,
		})
	}
	return out
}

func newTestModel(t *testing.T, initial []models.SharingRequest, opts Options) (inboxModel, *mock.MockClientSharingService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientSharingService(ctrl)
	formatter := sharing.NewFormatter(sharing.EnglishPhrases, sharing.PolicyFallback, nil)

	m := newInboxModel(context.Background(), svc, formatter, initial, opts, nil)
	m.refreshing = false
	return m, svc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m inboxModel, msg tea.Msg) (inboxModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(inboxModel)
	require.True(t, ok)
	return nm, cmd
}

// collect runs cmd and every command of a batch, returning the messages
// that are not spinner ticks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func findMsg[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("message %T not found in %v", zero, msgs)
	return zero
}

// ── initial state ────────────────────────────────────────────────────────────

func TestNewInboxModel_RendersInitialRows(t *testing.T) {
	m, _ := newTestModel(t, pending("a", "b"), Options{})

	require.Len(t, m.host.rows, 2)
	assert.False(t, m.host.empty)
	assert.Contains(t, m.View(), "alice wants to share node node-a with you.")
}

func TestNewInboxModel_EmptyState(t *testing.T) {
	m, _ := newTestModel(t, nil, Options{})

	assert.True(t, m.host.empty)
	assert.Contains(t, m.View(), englishText.empty)
}

func TestInit_Refreshes(t *testing.T) {
	m, svc := newTestModel(t, nil, Options{})
	svc.EXPECT().Refresh(gomock.Any()).Return(pending("x"), nil)

	msgs := collect(m.Init())
	done := findMsg[refreshDoneMsg](t, msgs)
	assert.Len(t, done.requests, 1)
}

// ── accept / decline ─────────────────────────────────────────────────────────

func TestAccept_RemovesRow(t *testing.T) {
	m, svc := newTestModel(t, pending("a", "b"), Options{})
	svc.EXPECT().UpdateSharingRequest(gomock.Any(), "a", true).Return(nil)

	m, cmd := send(t, m, runes("a"))
	assert.True(t, m.host.loading)
	assert.Equal(t, "Accepting...", m.host.loadingLabel)
	assert.Contains(t, m.View(), "Accepting...")

	done := findMsg[answerDoneMsg](t, collect(cmd))
	m, _ = send(t, m, done)

	assert.False(t, m.host.loading)
	require.Len(t, m.host.rows, 1)
	assert.Equal(t, "b", m.host.rows[0].RequestID)
	assert.Empty(t, m.host.toast)
}

func TestAccept_LastRowShowsEmptyState(t *testing.T) {
	m, svc := newTestModel(t, pending("a"), Options{})
	svc.EXPECT().UpdateSharingRequest(gomock.Any(), "a", true).Return(nil)

	m, cmd := send(t, m, runes("a"))
	m, _ = send(t, m, findMsg[answerDoneMsg](t, collect(cmd)))

	assert.True(t, m.host.empty)
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), englishText.empty)
}

func TestDecline_CloudErrorShowsMessage(t *testing.T) {
	m, svc := newTestModel(t, pending("a", "b"), Options{})
	svc.EXPECT().UpdateSharingRequest(gomock.Any(), "b", false).
		Return(&adapter.CloudError{StatusCode: 400, Description: "quota exceeded"})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.cursor)

	m, cmd := send(t, m, runes("d"))
	assert.Equal(t, "Declining...", m.host.loadingLabel)

	m, cmd = send(t, m, findMsg[answerDoneMsg](t, collect(cmd)))
	assert.NotNil(t, cmd, "тост должен скрыться по таймеру")

	assert.Len(t, m.host.rows, 2, "при ошибке список не меняется")
	assert.Equal(t, "quota exceeded", m.host.toast)
	assert.Contains(t, m.View(), "quota exceeded")
}

func TestAnswer_InFlightShowsToast(t *testing.T) {
	m, _ := newTestModel(t, pending("a"), Options{})

	m, _ = send(t, m, runes("a"))
	m, _ = send(t, m, runes("d"))

	assert.Equal(t, englishText.inFlight, m.host.toast)
	assert.True(t, m.presenter.InFlight("a"))
}

func TestAnswer_TwoRowsInFlightKeepLoading(t *testing.T) {
	m, svc := newTestModel(t, pending("a", "b"), Options{})
	svc.EXPECT().UpdateSharingRequest(gomock.Any(), "a", true).Return(nil)
	svc.EXPECT().UpdateSharingRequest(gomock.Any(), "b", false).Return(nil)

	m, first := send(t, m, runes("a"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, second := send(t, m, runes("d"))

	// первый ответ пришёл, второй ещё выполняется
	m, _ = send(t, m, findMsg[answerDoneMsg](t, collect(first)))
	assert.True(t, m.host.loading)
	assert.True(t, m.presenter.InFlight("b"))

	m, _ = send(t, m, findMsg[answerDoneMsg](t, collect(second)))
	assert.False(t, m.host.loading)
	assert.True(t, m.host.empty)
}

func TestAnswer_EmptyListIgnored(t *testing.T) {
	m, _ := newTestModel(t, nil, Options{})

	m, cmd := send(t, m, runes("a"))
	assert.Nil(t, cmd)
	assert.False(t, m.host.loading)
}

// ── refresh ──────────────────────────────────────────────────────────────────

func TestRefresh_KeyStartsRefresh(t *testing.T) {
	m, svc := newTestModel(t, pending("a"), Options{})
	svc.EXPECT().Refresh(gomock.Any()).Return(pending("a", "b"), nil)

	m, cmd := send(t, m, runes("r"))
	assert.True(t, m.refreshing)

	// повторное нажатие во время обновления игнорируется
	_, second := send(t, m, runes("r"))
	assert.Nil(t, second)

	m, _ = send(t, m, findMsg[refreshDoneMsg](t, collect(cmd)))
	assert.False(t, m.refreshing)
	assert.False(t, m.offline)
	assert.Len(t, m.host.rows, 2)
}

func TestRefresh_StaleListDoesNotRestoreAnsweredRow(t *testing.T) {
	m, svc := newTestModel(t, pending("a", "b"), Options{})
	svc.EXPECT().UpdateSharingRequest(gomock.Any(), "a", true).Return(nil)

	// список получен до ответа, а доставлен после него
	stale := refreshDoneMsg{requests: pending("a", "b")}

	m, cmd := send(t, m, runes("a"))
	m, _ = send(t, m, findMsg[answerDoneMsg](t, collect(cmd)))
	require.Len(t, m.host.rows, 1)

	m, _ = send(t, m, stale)
	require.Len(t, m.host.rows, 1)
	assert.Equal(t, "b", m.host.rows[0].RequestID)

	// фоновое обновление со старыми данными тоже не возвращает строку
	stale.background = true
	m, _ = send(t, m, stale)
	assert.Len(t, m.host.rows, 1)
}

func TestRefresh_BackgroundResultKeepsManualRefreshRunning(t *testing.T) {
	m, svc := newTestModel(t, pending("a"), Options{})
	svc.EXPECT().Refresh(gomock.Any()).Return(pending("a", "b"), nil)

	m, cmd := send(t, m, runes("r"))
	require.True(t, m.refreshing)

	m, _ = send(t, m, refreshDoneMsg{requests: pending("a", "c"), background: true})
	assert.True(t, m.refreshing, "ручное обновление ещё выполняется")
	assert.True(t, m.busy())
	assert.Equal(t, "c", m.host.rows[1].RequestID)

	// повторное нажатие всё ещё игнорируется
	_, second := send(t, m, runes("r"))
	assert.Nil(t, second)

	m, _ = send(t, m, findMsg[refreshDoneMsg](t, collect(cmd)))
	assert.False(t, m.refreshing)
	assert.Equal(t, "b", m.host.rows[1].RequestID)
}

func TestRefresh_FailureKeepsCachedList(t *testing.T) {
	m, _ := newTestModel(t, pending("a"), Options{})

	m, _ = send(t, m, refreshDoneMsg{requests: pending("cached1", "cached2"), err: errors.New("offline")})

	assert.True(t, m.offline)
	assert.Len(t, m.host.rows, 2)
	assert.Equal(t, englishText.refreshFailed, m.host.toast)
	assert.Contains(t, m.View(), englishText.offline)
}

func TestRefresh_FailureWithoutCacheKeepsCurrentRows(t *testing.T) {
	m, _ := newTestModel(t, pending("a"), Options{})

	m, _ = send(t, m, refreshDoneMsg{err: errors.New("offline")})

	require.Len(t, m.host.rows, 1)
	assert.Equal(t, "a", m.host.rows[0].RequestID)
}

func TestRefresh_ClampsCursor(t *testing.T) {
	m, _ := newTestModel(t, pending("a", "b", "c"), Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, m.cursor)

	m, _ = send(t, m, refreshDoneMsg{requests: pending("a")})
	assert.Equal(t, 0, m.cursor)

	m, _ = send(t, m, refreshDoneMsg{requests: nil})
	assert.True(t, m.host.empty)
	assert.Equal(t, 0, m.cursor)
}

// ── copy / toast ─────────────────────────────────────────────────────────────

func TestCopy_WritesRequestID(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	m, _ := newTestModel(t, pending("a", "b"), Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := send(t, m, runes("c"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, copiedMsg{requestID: "b"}, msg)
	assert.Equal(t, "b", copied)

	m, _ = send(t, m, msg)
	assert.Equal(t, englishText.copied, m.host.toast)
}

func TestCopy_Failure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { writeClipboard = orig })

	m, _ := newTestModel(t, pending("a"), Options{})
	_, cmd := send(t, m, runes("c"))
	msg := cmd()
	_, ok := msg.(copyFailedMsg)
	require.True(t, ok)

	m, _ = send(t, m, msg)
	assert.Equal(t, englishText.copyFailed, m.host.toast)
}

func TestClearToast_IgnoresStaleTimer(t *testing.T) {
	m, _ := newTestModel(t, pending("a"), Options{})
	m.host.Notify("first")
	first := m.host.toastSeq
	m.host.Notify("second")

	m, _ = send(t, m, clearToastMsg{seq: first})
	assert.Equal(t, "second", m.host.toast)

	m, _ = send(t, m, clearToastMsg{seq: m.host.toastSeq})
	assert.Empty(t, m.host.toast)
}

// ── build info / quit ────────────────────────────────────────────────────────

func TestBuildInfo_Toggle(t *testing.T) {
	m, _ := newTestModel(t, pending("a"), Options{BuildInfo: models.NewAppBuildInfo("1.2.3", "", "abc")})

	m, _ = send(t, m, runes("v"))
	view := m.View()
	assert.Contains(t, view, "ABOUT")
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "N/A")

	// действия недоступны, пока открыто окно
	m, cmd := send(t, m, runes("a"))
	assert.Nil(t, cmd)
	assert.False(t, m.host.loading)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, pending("a"), Options{})

	m, cmd := send(t, m, runes("q"))
	assert.True(t, m.quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView_RussianAndUser(t *testing.T) {
	m, _ := newTestModel(t, nil, Options{Language: "ru", User: "bob@example.com"})

	view := m.View()
	assert.Contains(t, view, russianText.title)
	assert.Contains(t, view, "bob@example.com")
	assert.Contains(t, view, russianText.empty)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 0))
	assert.Equal(t, "abcdef", fitText("abcdef", 6))
	assert.Equal(t, "abc...", fitText("abcdefgh", 6))
	assert.Equal(t, "Лам", fitText("Лампа", 3))
}
