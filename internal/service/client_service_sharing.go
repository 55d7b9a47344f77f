// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-share-inbox/internal/adapter"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/store"
	"github.com/MKhiriev/go-share-inbox/models"
)

type clientSharingService struct {
	repo    store.LocalSharingRequestRepository
	adapter adapter.CloudAdapter
	logger  *logger.Logger
}

// NewClientSharingService wires the cache repository and the cloud adapter.
func NewClientSharingService(storages *store.ClientStorages, cloudAdapter adapter.CloudAdapter, log *logger.Logger) ClientSharingService {
	if log == nil {
		log = logger.Nop()
	}
	return &clientSharingService{
		repo:    storages.SharingRequestRepository,
		adapter: cloudAdapter,
		logger:  log,
	}
}

func (s *clientSharingService) Refresh(ctx context.Context) ([]models.SharingRequest, error) {
	all, err := s.adapter.GetSharingRequests(ctx)
	if err != nil {
		mapped := mapAdapterError(err)
		s.logger.Warn().Err(err).Str("func", "clientSharingService.Refresh").Msg("cloud refresh failed, using cache")

		cached, cacheErr := s.repo.GetPending(ctx)
		if cacheErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, errors.Join(mapped, cacheErr))
		}
		return cached, fmt.Errorf("%w: %w", ErrRefreshFailed, mapped)
	}

	pending := make([]models.SharingRequest, 0, len(all))
	for _, r := range all {
		if r.IsPending() {
			pending = append(pending, r)
		}
	}

	if err = s.repo.ReplacePending(ctx, pending); err != nil {
		// the fresh list is still usable
		s.logger.Err(err).Str("func", "clientSharingService.Refresh").Msg("failed to cache pending requests")
	}

	s.logger.Debug().
		Str("func", "clientSharingService.Refresh").
		Int("total", len(all)).
		Int("pending", len(pending)).
		Msg("sharing requests refreshed")

	return pending, nil
}

func (s *clientSharingService) Pending(ctx context.Context) ([]models.SharingRequest, error) {
	return s.repo.GetPending(ctx)
}

func (s *clientSharingService) UpdateSharingRequest(ctx context.Context, requestID string, accept bool) error {
	if err := s.adapter.UpdateSharingRequest(ctx, requestID, accept); err != nil {
		return mapAdapterError(err)
	}

	status := models.SharingStatusDeclined
	if accept {
		status = models.SharingStatusAccepted
	}

	if err := s.repo.SetStatus(ctx, requestID, status); err != nil && !errors.Is(err, store.ErrSharingRequestNotFound) {
		s.logger.Err(err).
			Str("func", "clientSharingService.UpdateSharingRequest").
			Str("request_id", requestID).
			Msg("answer sent but cache not updated")
	}

	return nil
}
