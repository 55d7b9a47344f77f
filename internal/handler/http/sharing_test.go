// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-share-inbox/internal/adapter"
	"github.com/MKhiriev/go-share-inbox/internal/app"
	"github.com/MKhiriev/go-share-inbox/internal/config"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/validators"
	"github.com/MKhiriev/go-share-inbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeds(ids ...string) []models.SharingRequest {
	out := make([]models.SharingRequest, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.SharingRequest{
			RequestID:       id,
			PrimaryUserName: "alice",
			NodeIDs:         []string{"node-" + id},
		})
	}
	return out
}

func newTestHandler(cfg config.Server, requests []models.SharingRequest) *Handler {
	return NewHandler(cfg, requests, models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc"), logger.Nop())
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, withToken bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if withToken {
		req.Header.Set("Authorization", "Bearer test-token")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) models.CloudStatus {
	t.Helper()
	var st models.CloudStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	return st
}

// ── GET ─────────────────────────────────────────────────────────────────────

func TestGetSharingRequests_Pagination(t *testing.T) {
	router := newTestHandler(config.Server{}, seeds("a", "b", "c")).Init()

	rec := doRequest(t, router, http.MethodGet, sharingRequestsPath+"?primary_user=false", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var first models.SharingRequestsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	require.Len(t, first.SharingRequests, 2)
	assert.Equal(t, "a", first.SharingRequests[0].RequestID)
	assert.Equal(t, models.SharingStatusPending, first.SharingRequests[0].Status)
	assert.NotZero(t, first.SharingRequests[0].Timestamp)
	assert.Equal(t, "c", first.NextRequestID)

	rec = doRequest(t, router, http.MethodGet, sharingRequestsPath+"?start_request_id=c", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var second models.SharingRequestsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	require.Len(t, second.SharingRequests, 1)
	assert.Empty(t, second.NextRequestID)
}

func TestGetSharingRequests_PrimaryUserIsEmpty(t *testing.T) {
	router := newTestHandler(config.Server{}, seeds("a")).Init()

	rec := doRequest(t, router, http.MethodGet, sharingRequestsPath+"?primary_user=true", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SharingRequestsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.SharingRequests)
}

func TestGetSharingRequests_BadParams(t *testing.T) {
	router := newTestHandler(config.Server{}, seeds("a")).Init()

	rec := doRequest(t, router, http.MethodGet, sharingRequestsPath+"?primary_user=maybe", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, codeInvalidRequest, decodeStatus(t, rec).ErrorCode)

	rec = doRequest(t, router, http.MethodGet, sharingRequestsPath+"?start_request_id=zzz", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidStartRequestID, decodeStatus(t, rec).Description)
}

func TestGetSharingRequests_Unauthorized(t *testing.T) {
	router := newTestHandler(config.Server{}, seeds("a")).Init()

	rec := doRequest(t, router, http.MethodGet, sharingRequestsPath, "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	st := decodeStatus(t, rec)
	assert.Equal(t, statusFailure, st.Status)
	assert.Equal(t, codeUnauthorized, st.ErrorCode)
}

// ── PUT ─────────────────────────────────────────────────────────────────────

func TestUpdateSharingRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantCode    int
		wantMessage string
	}{
		{"accept", `{"request_id":"a","accept":true}`, http.StatusOK, 0, app.MsgSharingRequestAccepted},
		{"decline", `{"request_id":"b","accept":false}`, http.StatusOK, 0, app.MsgSharingRequestDeclined},
		{"not found", `{"request_id":"zzz","accept":true}`, http.StatusNotFound, codeNotFound, app.MsgSharingRequestNotFound},
		{"rejected", `{"request_id":"r","accept":true}`, http.StatusBadRequest, codeQuotaExceeded, app.MsgSharingQuotaExceeded},
		{"missing id", `{"accept":true}`, http.StatusBadRequest, codeInvalidRequest, app.MsgRequestIDRequired},
		{"bad body", `{`, http.StatusBadRequest, codeInvalidRequest, app.MsgInvalidRequestBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(config.Server{RejectRequestIDs: []string{"r"}}, seeds("a", "b", "r")).Init()

			rec := doRequest(t, router, http.MethodPut, sharingRequestsPath, tt.body, true)
			assert.Equal(t, tt.wantStatus, rec.Code)

			st := decodeStatus(t, rec)
			assert.Equal(t, tt.wantCode, st.ErrorCode)
			assert.Equal(t, tt.wantMessage, st.Description)
		})
	}
}

func TestUpdateSharingRequest_AnsweredTwice(t *testing.T) {
	router := newTestHandler(config.Server{}, seeds("a")).Init()

	rec := doRequest(t, router, http.MethodPut, sharingRequestsPath, `{"request_id":"a","accept":true}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPut, sharingRequestsPath, `{"request_id":"a","accept":false}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, codeAlreadyAnswered, decodeStatus(t, rec).ErrorCode)
}

// ── router ──────────────────────────────────────────────────────────────────

func TestRouter_VersionAndTraceID(t *testing.T) {
	router := newTestHandler(config.Server{}, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.2.3", rec.Body.String())
	assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader))

	rec = doRequest(t, router, http.MethodGet, "/version", "", false)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader), "trace id генерируется, если не передан")
}

func TestRouter_UnsupportedMethodIsNotFound(t *testing.T) {
	router := newTestHandler(config.Server{}, nil).Init()

	rec := doRequest(t, router, http.MethodDelete, sharingRequestsPath, "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTokenSubject(t *testing.T) {
	// {"alg":"none"} . {"sub":"bob"}
	token := "eyJhbGciOiJub25lIn0.eyJzdWIiOiJib2IifQ."
	assert.Equal(t, "bob", tokenSubject(token))
	assert.Empty(t, tokenSubject("opaque-token"))
}

// ── store ───────────────────────────────────────────────────────────────────

func TestNewSharingStore_FillsDefaults(t *testing.T) {
	s := newSharingStore([]models.SharingRequest{{PrimaryUserName: "x"}}, []string{" ", "r"})

	require.Len(t, s.requests, 1)
	assert.NotEmpty(t, s.requests[0].RequestID)
	assert.Equal(t, models.SharingStatusPending, s.requests[0].Status)
	assert.Len(t, s.rejects, 1)
}

func TestLoadSeeds(t *testing.T) {
	got, err := LoadSeeds("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSeeds(), got)

	_, err = LoadSeeds("/nonexistent/seeds.json")
	assert.Error(t, err)

	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`[{"request_id":"s1","primary_user_name":"eve","node_ids":["n1"]}]`), 0o600))
	got, err = LoadSeeds(valid)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "eve", got[0].PrimaryUserName)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`[{"primary_user_name":"eve","node_ids":[]}]`), 0o600))
	_, err = LoadSeeds(invalid)
	assert.ErrorIs(t, err, validators.ErrEmptyNodeIDs)
}

// ── end to end ──────────────────────────────────────────────────────────────

func TestEmulator_WithCloudAdapter(t *testing.T) {
	h := newTestHandler(config.Server{RejectRequestIDs: []string{"r"}}, seeds("a", "b", "r"))
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	cloud, err := adapter.NewHTTPCloudAdapter(config.ClientAdapter{BaseURL: srv.URL, RequestTimeout: time.Second}, "test-token", logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()

	// адаптер проходит обе страницы
	requests, err := cloud.GetSharingRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 3)

	require.NoError(t, cloud.UpdateSharingRequest(ctx, "a", true))

	err = cloud.UpdateSharingRequest(ctx, "r", false)
	var cloudErr *adapter.CloudError
	require.True(t, errors.As(err, &cloudErr))
	assert.Equal(t, app.MsgSharingQuotaExceeded, cloudErr.Message())

	err = cloud.UpdateSharingRequest(ctx, "a", false)
	require.True(t, errors.As(err, &cloudErr))
	assert.Equal(t, http.StatusConflict, cloudErr.StatusCode)
}
