// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command mockcloud serves an in-memory emulation of the cloud sharing
// request API for local runs of the client.
package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-share-inbox/internal/config"
	myHTTP "github.com/MKhiriev/go-share-inbox/internal/handler/http"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/server"
	"github.com/MKhiriev/go-share-inbox/internal/utils"
	"github.com/MKhiriev/go-share-inbox/models"
)

const (
	demoUser     = "demo@example.com"
	demoTokenTTL = 24 * time.Hour
	demoSignKey  = "share-inbox-mockcloud"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("share-inbox-mockcloud")
	cfg, err := config.GetEmulatorConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	seeds, err := myHTTP.LoadSeeds(cfg.Server.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading seeds")
	}

	// the emulator accepts any bearer token; this one also carries a user name
	demoToken, err := utils.GenerateJWTToken("share-inbox-mockcloud", demoUser, demoTokenTTL, demoSignKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error generating demo token")
	}
	log.Info().Str("APP_TOKEN", demoToken).Msg("demo access token")

	handler := myHTTP.NewHandler(cfg.Server, seeds, buildInfo, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
