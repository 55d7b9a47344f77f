// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-share-inbox/internal/config"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/validators"
	"github.com/MKhiriev/go-share-inbox/models"
)

const defaultPageSize = 2

// Handler serves the emulated cloud API.
type Handler struct {
	store          *sharingStore
	validator      validators.Validator
	buildInfo      models.AppBuildInfo
	requestTimeout time.Duration
	pageSize       int

	logger *logger.Logger
}

// NewHandler builds a Handler whose store starts with seeds.
func NewHandler(cfg config.Server, seeds []models.SharingRequest, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Int("seeds", len(seeds)).Strs("reject_request_ids", cfg.RejectRequestIDs).Msg("http handler created")
	return &Handler{
		store:          newSharingStore(seeds, cfg.RejectRequestIDs),
		validator:      validators.NewSharingRequestValidator(),
		buildInfo:      buildInfo,
		requestTimeout: cfg.RequestTimeout,
		pageSize:       defaultPageSize,
		logger:         logger,
	}
}
