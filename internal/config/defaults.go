// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Supported values for App.Language.
const (
	LanguageEnglish = "en"
	LanguageRussian = "ru"
)

// Supported values for App.MalformedDevicePolicy.
const (
	PolicyFallback = "fallback"
	PolicySkip     = "skip"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Language:              LanguageEnglish,
			MalformedDevicePolicy: PolicyFallback,
			LogLevel:              "debug",
		},
		Storage: Storage{
			DB: DB{DSN: "share-inbox.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: 5 * time.Minute,
		},
	}
}
