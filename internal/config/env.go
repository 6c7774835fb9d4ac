// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, os.Environ())
}

// parseEnvFrom fills cfg from environ, a list of "KEY=value" pairs. Path
// fields are tagged with expand, so EXPORT_DIR=$HOME/qr resolves against the
// same list.
func parseEnvFrom(cfg *StructuredConfig, environ []string) error {
	opts := env.Options{Environment: env.ToMap(environ)}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
