// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-share-inbox/internal/app"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/models"
)

// getSharingRequests lists requests addressed to the caller. Requests sent
// by the caller (primary_user=true) are not emulated and come back empty.
func (h *Handler) getSharingRequests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	primary, err := parseBoolParam(query.Get("primary_user"))
	if err != nil {
		writeFailure(w, r, http.StatusBadRequest, codeInvalidRequest, app.MsgInvalidPrimaryUser)
		return
	}
	if primary {
		writeJSON(w, r, http.StatusOK, models.SharingRequestsResponse{SharingRequests: []models.SharingRequest{}})
		return
	}

	requests, next, err := h.store.page(query.Get("start_request_id"), h.pageSize)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.SharingRequestsResponse{
		SharingRequests: requests,
		NextRequestID:   next,
	})
}

func (h *Handler) updateSharingRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.UpdateSharingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFailure(w, r, http.StatusBadRequest, codeInvalidRequest, app.MsgInvalidRequestBody)
		return
	}
	if err := h.validator.Validate(r.Context(), body); err != nil {
		writeFailure(w, r, http.StatusBadRequest, codeInvalidRequest, app.MsgRequestIDRequired)
		return
	}
	body.RequestID = strings.TrimSpace(body.RequestID)

	if err := h.store.answer(body.RequestID, body.Accept); err != nil {
		log.Info().Err(err).Str("request_id", body.RequestID).Msg("sharing request update refused")
		writeStoreError(w, r, err)
		return
	}

	description := app.MsgSharingRequestDeclined
	if body.Accept {
		description = app.MsgSharingRequestAccepted
	}
	log.Info().Str("request_id", body.RequestID).Bool("accept", body.Accept).Msg("sharing request answered")

	writeJSON(w, r, http.StatusOK, models.CloudStatus{Status: statusSuccess, Description: description})
}

func parseBoolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
