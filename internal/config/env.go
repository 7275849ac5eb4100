// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the environment following the `env` and
// `envPrefix` tags of [StructuredConfig]. Unset variables leave fields zero
// so that mergo keeps the values of earlier sources.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{UseFieldNameByDefault: false}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
