// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-chat-genius client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds chat behaviour settings: upload cap, initial mode and the
	// delay of the AI-mode nudge.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log destination and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// MaxUploadMB is the largest PDF, in MiB, the client submits.
	// Env: APP_MAX_UPLOAD_MB
	MaxUploadMB int `env:"MAX_UPLOAD_MB"`

	// DefaultMode is the mode assumed before the first status poll
	// ("basic" or "ai").
	// Env: APP_DEFAULT_MODE
	DefaultMode string `env:"DEFAULT_MODE"`

	// NudgeDelay is how long after a basic-mode reply the AI-mode
	// suggestion is shown (e.g. "1500ms").
	// Env: APP_NUDGE_DELAY
	NudgeDelay time.Duration `env:"NUDGE_DELAY"`
}

// Adapter holds the settings of the backend transport.
type Adapter struct {
	// HTTPAddress is the backend base address, either "host:port" or a full
	// URL (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero disables the timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// StatusInterval is how often the status poller refreshes the view.
	// Env: WORKERS_STATUS_INTERVAL
	StatusInterval time.Duration `env:"STATUS_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the log file. Empty means "logs" next to the binary.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults used when no source sets a value.
const (
	DefaultHTTPAddress    = "localhost:5000"
	DefaultMaxUploadMB    = 16
	DefaultMode           = "basic"
	DefaultNudgeDelay     = 1500 * time.Millisecond
	DefaultStatusInterval = 30 * time.Second
	DefaultLogLevel       = "debug"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			MaxUploadMB: DefaultMaxUploadMB,
			DefaultMode: DefaultMode,
			NudgeDelay:  DefaultNudgeDelay,
		},
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
		},
		Workers: Workers{
			StatusInterval: DefaultStatusInterval,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first source that sets a
// non-zero value wins:
//  1. Environment variables
//  2. Command-line flags (args)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
