// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	switch cfg.App.Language {
	case LanguageEnglish, LanguageRussian:
	default:
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidAppConfigs, cfg.App.Language)
	}

	switch cfg.App.MalformedDevicePolicy {
	case PolicyFallback, PolicySkip:
	default:
		return fmt.Errorf("%w: unsupported malformed device policy %q", ErrInvalidAppConfigs, cfg.App.MalformedDevicePolicy)
	}

	return nil
}

func (cfg *EmulatorConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
