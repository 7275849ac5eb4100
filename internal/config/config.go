// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the client.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the outbound HTTP transport to the finance API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings of the local SQLite database keeping the
	// persisted session token.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version label shown on the profile screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the finance API endpoint and transport timeouts.
type Adapter struct {
	// HTTPAddress is the base URL of the finance API, including the "/api"
	// prefix (e.g. "http://localhost:8000/api"). A scheme-less value is
	// treated as http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// TokenKey is the fixed name of the key/value slot holding the bearer
	// token.
	// Env: STORAGE_TOKEN_KEY
	TokenKey string `env:"TOKEN_KEY"`
}

// DB holds the SQLite connection settings.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logging output settings.
type Log struct {
	// FilePath is the log file; empty means next to the executable.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
}

// Defaults used for every field no source provides.
const (
	DefaultHTTPAddress    = "http://localhost:8000/api"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "fin-tracker.db"
	DefaultTokenKey       = "token"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB:       DB{DSN: DefaultDSN},
			TokenKey: DefaultTokenKey,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from defaults, environment variables, command-line flags and the optional
// JSON file, in that order.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
