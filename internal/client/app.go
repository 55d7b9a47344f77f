// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-share-inbox/internal/adapter"
	"github.com/MKhiriev/go-share-inbox/internal/config"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/service"
	"github.com/MKhiriev/go-share-inbox/internal/sharing"
	"github.com/MKhiriev/go-share-inbox/internal/store"
	"github.com/MKhiriev/go-share-inbox/internal/tui"
	"github.com/MKhiriev/go-share-inbox/models"
)

var _ Client = (*App)(nil)

// App is the share-inbox client.
type App struct {
	cfg       *config.ClientConfig
	cloud     adapter.CloudAdapter
	storages  *store.ClientStorages
	services  *service.ClientServices
	formatter *sharing.Formatter
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewApp opens the local cache and builds every client dependency.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	formatter, err := newFormatter(cfg.App, log)
	if err != nil {
		return nil, err
	}

	cloud, err := adapter.NewHTTPCloudAdapter(cfg.Adapter, cfg.App.Token, log)
	if err != nil {
		return nil, fmt.Errorf("create cloud adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return &App{
		cfg:       cfg,
		cloud:     cloud,
		storages:  storages,
		services:  service.NewClientServices(storages, cloud, log),
		formatter: formatter,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

func newFormatter(cfg config.ClientApp, log *logger.Logger) (*sharing.Formatter, error) {
	phrases, err := sharing.PhrasesFor(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("select phrases: %w", err)
	}

	policy, err := sharing.ParseMalformedPolicy(cfg.MalformedDevicePolicy)
	if err != nil {
		return nil, fmt.Errorf("select malformed device policy: %w", err)
	}

	return sharing.NewFormatter(phrases, policy, log), nil
}

// Run shows the cached list right away, refreshes it in the background and
// blocks until the user quits. Quitting is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	initial, err := a.services.SharingService.Pending(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("cached sharing requests unavailable")
		initial = nil
	}

	ui := tui.New(ctx, a.services.SharingService, a.formatter, initial, tui.Options{
		Language:  a.cfg.App.Language,
		User:      a.userName(),
		BuildInfo: a.buildInfo,
	}, a.logger)

	job := a.services.NewRefreshJob(ui.RefreshHandler())
	job.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer job.Stop()

	err = ui.Run()
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// userName is the token subject, or empty for opaque tokens.
func (a *App) userName() string {
	name, err := a.cloud.TokenSubject()
	if err != nil {
		a.logger.Debug().Err(err).Msg("token subject unavailable")
		return ""
	}
	return name
}

// Close releases the local cache.
func (a *App) Close() error {
	return a.storages.Close()
}
