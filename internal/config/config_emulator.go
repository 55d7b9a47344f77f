// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// EmulatorConfig is the cloud emulator view of [StructuredConfig].
type EmulatorConfig struct {
	Server Server
}

// GetEmulatorConfig builds and validates the emulator configuration.
func GetEmulatorConfig() (*EmulatorConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	emuCfg := &EmulatorConfig{Server: cfg.Server}
	return emuCfg, emuCfg.validate()
}
