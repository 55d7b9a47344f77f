// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const sharingRequestsPath = "/v1/user/nodes/sharing/requests"

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withBearerToken)
		r.Get(sharingRequestsPath, h.getSharingRequests)
		r.Put(sharingRequestsPath, h.updateSharingRequest)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
