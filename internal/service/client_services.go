// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-share-inbox/internal/adapter"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/store"
)

// ClientServices groups the client services.
type ClientServices struct {
	SharingService ClientSharingService
}

func NewClientServices(storages *store.ClientStorages, cloudAdapter adapter.CloudAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		SharingService: NewClientSharingService(storages, cloudAdapter, log),
	}
}

// NewRefreshJob returns a refresh job over the sharing service.
func (s *ClientServices) NewRefreshJob(onRefresh RefreshHandler) ClientRefreshJob {
	return NewClientRefreshJob(s.SharingService, onRefresh)
}
