// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-share-inbox/internal/app"
	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/internal/utils"
)

// withBearerToken rejects requests without a bearer token. The emulator
// trusts any token; when it is a JWT its user name is added to the log.
func (h *Handler) withBearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeFailure(w, r, http.StatusUnauthorized, codeUnauthorized, app.MsgUnauthorized)
			return
		}

		if subject := tokenSubject(token); subject != "" {
			logger.FromRequest(r).Debug().Str("subject", subject).Msg("request authorized")
		}

		next.ServeHTTP(w, r)
	})
}

func tokenSubject(token string) string {
	subject, err := utils.UserNameFromJWT(token)
	if err != nil {
		return ""
	}
	return subject
}
