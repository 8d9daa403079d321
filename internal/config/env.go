// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environment variables. The mapping is declared on
// [StructuredConfig] through `env` and `envPrefix` struct tags and resolved
// by caarlos0/env; a value that cannot be converted to its field type is a
// hard error.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
