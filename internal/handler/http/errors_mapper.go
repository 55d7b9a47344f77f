// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-share-inbox/internal/app"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/utils"
	"github.com/MKhiriev/go-share-inbox/models"
)

const (
	statusSuccess = "success"
	statusFailure = "failure"
)

// writeStoreError maps a store error to the cloud failure body.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSharingRequestNotFound):
		writeFailure(w, r, http.StatusNotFound, codeNotFound, app.MsgSharingRequestNotFound)
	case errors.Is(err, ErrAlreadyAnswered):
		writeFailure(w, r, http.StatusConflict, codeAlreadyAnswered, app.MsgSharingRequestAnswered)
	case errors.Is(err, ErrUnknownStartRequestID):
		writeFailure(w, r, http.StatusBadRequest, codeInvalidRequest, app.MsgInvalidStartRequestID)
	case errors.Is(err, ErrRejectedByPolicy):
		writeFailure(w, r, http.StatusBadRequest, codeQuotaExceeded, app.MsgSharingQuotaExceeded)
	default:
		logger.FromRequest(r).Err(err).Str("func", "writeStoreError").Msg("unexpected store error")
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, status, code int, description string) {
	writeJSON(w, r, status, models.CloudStatus{
		Status:      statusFailure,
		Description: description,
		ErrorCode:   code,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if _, err := utils.WriteJSON(w, v, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Msg("failed to write response body")
	}
}
