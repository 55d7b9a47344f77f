// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-share-inbox/internal/config"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/utils"
	"github.com/MKhiriev/go-share-inbox/models"
	"github.com/go-resty/resty/v2"
)

const (
	sharingRequestsPath = "/v1/user/nodes/sharing/requests"

	defaultRequestTimeout = 15 * time.Second

	// maxSharingRequestPages bounds pagination in case the cloud keeps
	// returning a next page.
	maxSharingRequestPages = 100
)

type httpCloudAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPCloudAdapter returns a resty-backed [CloudAdapter] rooted at
// cfg.BaseURL. token may be empty and set later with SetToken.
func NewHTTPCloudAdapter(cfg config.ClientAdapter, token string, log *logger.Logger) (CloudAdapter, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(u.String(), "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	a := &httpCloudAdapter{client: cli, logger: log}
	a.SetToken(token)

	return a, nil
}

func (h *httpCloudAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCloudAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpCloudAdapter) TokenSubject() (string, error) {
	token := h.Token()
	if token == "" {
		return "", ErrNoToken
	}
	return utils.UserNameFromJWT(token)
}

func (h *httpCloudAdapter) GetSharingRequests(ctx context.Context) ([]models.SharingRequest, error) {
	var (
		all       []models.SharingRequest
		startFrom string
		seen      = make(map[string]struct{})
	)

	for page := 0; page < maxSharingRequestPages; page++ {
		req := h.authedRequest(ctx).SetQueryParam("primary_user", "false")
		if startFrom != "" {
			req.SetQueryParam("start_request_id", startFrom)
		}

		resp, err := req.Get(sharingRequestsPath)
		if err != nil {
			return nil, fmt.Errorf("get sharing requests request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		var body models.SharingRequestsResponse
		if err = json.Unmarshal(resp.Body(), &body); err != nil {
			return nil, fmt.Errorf("decode sharing requests response: %w", err)
		}
		all = append(all, body.SharingRequests...)

		if body.NextRequestID == "" {
			break
		}
		if _, dup := seen[body.NextRequestID]; dup {
			h.logger.Warn().
				Str("func", "httpCloudAdapter.GetSharingRequests").
				Str("next_request_id", body.NextRequestID).
				Msg("cloud returned an already visited page, stopping")
			break
		}
		seen[body.NextRequestID] = struct{}{}
		startFrom = body.NextRequestID
	}

	h.logger.Debug().
		Str("func", "httpCloudAdapter.GetSharingRequests").
		Int("count", len(all)).
		Msg("sharing requests fetched")

	return all, nil
}

func (h *httpCloudAdapter) UpdateSharingRequest(ctx context.Context, requestID string, accept bool) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateSharingRequest{RequestID: requestID, Accept: accept}).
		Put(sharingRequestsPath)
	if err != nil {
		return fmt.Errorf("update sharing request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("func", "httpCloudAdapter.UpdateSharingRequest").
		Str("request_id", requestID).
		Bool("accept", accept).
		Msg("sharing request updated")

	return nil
}

func (h *httpCloudAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
