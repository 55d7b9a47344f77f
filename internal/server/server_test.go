// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-share-inbox/internal/config"
	myHTTP "github.com/MKhiriev/go-share-inbox/internal/handler/http"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() *myHTTP.Handler {
	return myHTTP.NewHandler(config.Server{}, myHTTP.DefaultSeeds(), models.NewAppBuildInfo("test", "", ""), logger.Nop())
}

func TestNewServer_Errors(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: "localhost:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandler)

	_, err = NewServer(newHandler(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunAndStop(t *testing.T) {
	s, err := NewServer(newHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s.(*server).notify = func() (context.Context, context.CancelFunc) { return ctx, cancel }

	done := make(chan struct{})
	go func() {
		s.RunServer()
		close(done)
	}()

	// сигнал остановки
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	// после Shutdown сервер больше не принимает запросы
	assert.ErrorIs(t, s.(*server).httpServer.server.ListenAndServe(), http.ErrServerClosed)
}
