// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour settings: credentials, language, logging.
	App App `envPrefix:"APP_"`

	// Storage holds the local cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the cloud emulator.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound cloud API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-level settings.
type App struct {
	// Token is the cloud access token sent as a bearer token.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Language selects the phrase bundle for sentences and labels ("en", "ru").
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`

	// MalformedDevicePolicy decides what a malformed entry inside the
	// metadata "devices" array does to the sentence ("fallback", "skip").
	// Env: APP_MALFORMED_DEVICE_POLICY
	MalformedDevicePolicy string `env:"MALFORMED_DEVICE_POLICY"`

	// LogFile is the client log destination. Empty means a file next to the
	// executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the local persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite cache location.
type DB struct {
	// DSN is the SQLite file path used for the pending requests cache.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the emulator listener settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SeedFile is an optional JSON file with the sharing requests the
	// emulator starts with. Empty means built-in samples.
	// Env: SERVER_SEED_FILE
	SeedFile string `env:"SEED_FILE"`

	// RejectRequestIDs lists request ids whose updates the emulator answers
	// with a cloud failure body.
	// Env: SERVER_REJECT_REQUEST_IDS (comma separated)
	RejectRequestIDs []string `env:"REJECT_REQUEST_IDS" envSeparator:","`
}

// Adapter holds the outbound cloud API settings.
type Adapter struct {
	// BaseURL is the cloud API root (e.g. "https://api.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the timeout of one outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval is how often the pending list is re-fetched.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// using the process environment and os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
