// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sharing

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/models"
)

// Action is a user answer captured at click time. It identifies the row by
// request id, never by position.
type Action struct {
	RequestID string
	Accept    bool
}

// Outcome is the result of executing an Action against the cloud.
type Outcome struct {
	Action Action
	Err    error
}

// Presenter owns the ordered pending list and applies user answers to it.
//
// Begin and Complete are meant to be called from the host's UI goroutine;
// Execute may run anywhere. The list is guarded by a mutex so that reading
// rows from another goroutine is safe.
type Presenter struct {
	host      Host
	updater   Updater
	formatter *Formatter
	logger    *logger.Logger

	mu       sync.Mutex
	requests []models.SharingRequest
	inFlight map[string]struct{}
	// answered holds ids the cloud accepted an answer for. A list fetched
	// before the answer landed may still carry them as pending.
	answered map[string]struct{}
}

// NewPresenter returns a Presenter over a copy of requests.
func NewPresenter(requests []models.SharingRequest, host Host, updater Updater, formatter *Formatter, log *logger.Logger) *Presenter {
	if log == nil {
		log = logger.Nop()
	}

	return &Presenter{
		host:      host,
		updater:   updater,
		formatter: formatter,
		logger:    log,
		requests:  append([]models.SharingRequest(nil), requests...),
		inFlight:  make(map[string]struct{}),
		answered:  make(map[string]struct{}),
	}
}

// Rows renders every pending request in list order.
func (p *Presenter) Rows() []models.DisplayRow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rowsLocked()
}

// Len returns the number of pending requests.
func (p *Presenter) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// Requests returns a copy of the pending list.
func (p *Presenter) Requests() []models.SharingRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.SharingRequest(nil), p.requests...)
}

// SetRequests replaces the pending list, e.g. after a refresh, and renders
// it. Requests already answered in this session are dropped; answers still
// in flight are applied by id when they complete.
func (p *Presenter) SetRequests(requests []models.SharingRequest) {
	p.mu.Lock()
	p.requests = make([]models.SharingRequest, 0, len(requests))
	stillListed := make(map[string]struct{}, len(p.answered))
	for _, req := range requests {
		if _, ok := p.answered[req.RequestID]; ok {
			stillListed[req.RequestID] = struct{}{}
			continue
		}
		p.requests = append(p.requests, req)
	}
	// the cloud no longer lists these, so they cannot come back
	p.answered = stillListed
	rows := p.rowsLocked()
	empty := len(p.requests) == 0
	p.mu.Unlock()

	p.host.Render(rows)
	if empty {
		p.host.ClearPendingRequests()
	}
}

// InFlight reports whether an answer for requestID is being sent.
func (p *Presenter) InFlight(requestID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.inFlight[requestID]
	return ok
}

// Accept answers the request at index with "accept" and waits for the
// cloud. Remote failures are reported to the host, not returned.
func (p *Presenter) Accept(ctx context.Context, index int) error {
	return p.answer(ctx, index, true)
}

// Decline answers the request at index with "decline". See Accept.
func (p *Presenter) Decline(ctx context.Context, index int) error {
	return p.answer(ctx, index, false)
}

func (p *Presenter) answer(ctx context.Context, index int, accept bool) error {
	action, err := p.Begin(index, accept)
	if err != nil {
		return err
	}
	p.Complete(p.Execute(ctx, action))
	return nil
}

// Begin captures the request id of the row at index, marks it in flight and
// shows the loading indicator.
func (p *Presenter) Begin(index int, accept bool) (Action, error) {
	p.mu.Lock()
	if index < 0 || index >= len(p.requests) {
		p.mu.Unlock()
		return Action{}, ErrIndexOutOfRange
	}

	id := p.requests[index].RequestID
	if _, busy := p.inFlight[id]; busy {
		p.mu.Unlock()
		return Action{}, ErrRequestInFlight
	}
	p.inFlight[id] = struct{}{}
	p.mu.Unlock()

	p.host.ShowLoading(p.formatter.Phrases().ActionLabel(accept))

	return Action{RequestID: id, Accept: accept}, nil
}

// Execute sends the answer to the cloud. It does not touch the list.
func (p *Presenter) Execute(ctx context.Context, action Action) Outcome {
	err := p.updater.UpdateSharingRequest(ctx, action.RequestID, action.Accept)
	return Outcome{Action: action, Err: err}
}

// Complete applies an Outcome. On success the row is looked up by request
// id and removed; a row that is already gone is left alone. On failure the
// list is unchanged and the host is notified. The loading indicator is
// hidden in every case.
func (p *Presenter) Complete(outcome Outcome) {
	id := outcome.Action.RequestID

	p.mu.Lock()
	delete(p.inFlight, id)

	if outcome.Err != nil {
		p.mu.Unlock()

		p.logger.Warn().Err(outcome.Err).
			Str("func", "Presenter.Complete").
			Str("request_id", id).
			Bool("accept", outcome.Action.Accept).
			Msg("sharing request update failed")

		p.host.Notify(p.failureMessage(outcome.Err))
		p.host.HideLoading()
		return
	}

	p.answered[id] = struct{}{}
	removed := p.removeLocked(id)
	rows := p.rowsLocked()
	empty := len(p.requests) == 0
	p.mu.Unlock()

	p.logger.Info().
		Str("func", "Presenter.Complete").
		Str("request_id", id).
		Bool("accept", outcome.Action.Accept).
		Bool("removed", removed).
		Msg("sharing request answered")

	if removed {
		p.host.Render(rows)
		if empty {
			p.host.ClearPendingRequests()
		}
	}
	p.host.HideLoading()
}

func (p *Presenter) failureMessage(err error) string {
	var remote RemoteError
	if errors.As(err, &remote) && remote.Message() != "" {
		return remote.Message()
	}
	return p.formatter.Phrases().GenericError
}

func (p *Presenter) removeLocked(requestID string) bool {
	for i, req := range p.requests {
		if req.RequestID == requestID {
			p.requests = append(p.requests[:i], p.requests[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Presenter) rowsLocked() []models.DisplayRow {
	rows := make([]models.DisplayRow, 0, len(p.requests))
	for _, req := range p.requests {
		rows = append(rows, p.formatter.Row(req))
	}
	return rows
}
