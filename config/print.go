// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

// BuildVersion is the latest tagged release of i18nkit.
const BuildVersion string = "v1.0.0"

func (cfg *Config) print() {
	log.Debug().
		Str("version", BuildVersion).
		Msg("Starting i18nkit")

	configYAML, err := cfg.YAML()
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Debug().
		Str("config", string(configYAML)).
		Msg("Effective configuration")
}

// YAML returns the configuration as indented YAML.
func (cfg *Config) YAML() ([]byte, error) {
	return yaml.MarshalWithOptions(cfg, yaml.Indent(2))
}
