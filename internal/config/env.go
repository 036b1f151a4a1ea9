// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the `env` and `envPrefix` tags of [StructuredConfig].
// Unset variables leave their fields zero so the merge keeps lower layers.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	return &cfg, nil
}
