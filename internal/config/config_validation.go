// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged [StructuredConfig] is usable by the client.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	// an in-memory database would lose the token on every restart
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}
	if strings.TrimSpace(cfg.Storage.TokenKey) == "" {
		return ErrInvalidStorageConfigs
	}
	return nil
}
