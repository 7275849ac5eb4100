// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// ParseFlags parses the client configuration flags from the process command
// line.
//
// Flags:
//
//	-a finance API base URL (e.g. http://localhost:8000/api)
//	-request-timeout outbound request timeout (e.g. "15s")
//	-d SQLite database file
//	-token-key name of the token slot
//	-log-file log file path
//	-app-version version label
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var (
		apiAddress     string
		requestTimeout time.Duration
		databaseDSN    string
		tokenKey       string
		logFile        string
		version        string
		jsonConfigPath string
	)

	flag.StringVar(&apiAddress, "a", "", "Finance API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database file")
	flag.StringVar(&tokenKey, "token-key", "", "Name of the persisted token slot")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&version, "app-version", "", "Application version label")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{Version: version},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			TokenKey: tokenKey,
		},
		Log:          Log{FilePath: logFile},
		JSONFilePath: jsonConfigPath,
	}
}
