// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is the terminal inbox for pending device sharing requests.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-share-inbox/internal/client"
	"github.com/MKhiriev/go-share-inbox/internal/config"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("share-inbox-client", cfg.App.LogFile, cfg.App.LogLevel)

	ctx := context.Background()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)
	if err = app.Close(); err != nil {
		log.Error().Err(err).Msg("close local storage")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}
