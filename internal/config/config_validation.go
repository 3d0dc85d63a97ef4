// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks source-independent invariants of the merged config.
// Client-specific rules live in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MaxUploadMB < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.MaxUploadSize <= 0 || !cfg.App.DefaultMode.Valid() || cfg.App.NudgeDelay < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.StatusInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return ErrInvalidLogConfigs
		}
	}

	return nil
}
