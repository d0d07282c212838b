// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog/log"

	"codeberg.org/chillnote/i18nkit/i18n"
)

const (
	// DefaultFile is the configuration file read when no path is given.
	DefaultFile = "./i18nkit.yaml"

	// fallbackFile is tried when DefaultFile does not exist.
	fallbackFile = "./i18nkit.yml"

	// ConfigFileEnv overrides the configuration file path.
	ConfigFileEnv = "I18NKIT_CONFIGFILE"
)

// Config holds the tool configuration.
//
// A Config is created per run by Load and passed explicitly to the
// components that need it.
type Config struct {
	Catalog struct {
		Path           string   `env:"I18NKIT_CATALOG,overwrite"          yaml:"path"`
		FallbackLocale string   `env:"I18NKIT_FALLBACK_LOCALE,overwrite"  yaml:"fallbackLocale"`
		RawLocales     []string `env:"I18NKIT_REQUIRED_LOCALES,overwrite" yaml:"requiredLocales"`

		// RequiredLocales is the validated form of RawLocales.
		RequiredLocales i18n.LocaleSet `yaml:"-"`
	} `yaml:"catalog"`

	Source struct {
		Root         string   `env:"I18NKIT_SOURCE_ROOT,overwrite"    yaml:"root"`
		Extension    string   `env:"I18NKIT_SOURCE_EXT,overwrite"     yaml:"extension"`
		Exclude      []string `env:"I18NKIT_SOURCE_EXCLUDE,overwrite" yaml:"exclude"`
		Constructors []string `env:"I18NKIT_CONSTRUCTORS,overwrite"   yaml:"constructors"`
		Modifiers    []string `env:"I18NKIT_MODIFIERS,overwrite"      yaml:"modifiers"`

		// ExcludeGlobs holds the compiled Exclude patterns.
		ExcludeGlobs []glob.Glob `yaml:"-"`
	} `yaml:"source"`

	Reports struct {
		Dir string `env:"I18NKIT_REPORTS_DIR,overwrite" yaml:"dir"`
	} `yaml:"reports"`

	Log struct {
		Level   string   `env:"I18NKIT_LOG_LEVEL,overwrite"   yaml:"level"`
		Outputs []string `env:"I18NKIT_LOG_OUTPUTS,overwrite" yaml:"outputs"`
		Format  string   `env:"I18NKIT_LOG_FORMAT,overwrite"  yaml:"format"`
	} `yaml:"log"`
}

// Load builds a Config from defaults, the YAML file at path, a .env file
// and the environment, in increasing order of precedence.
//
// When explicit is false the path is resolved as for an unset --config
// flag: ConfigFileEnv first, then DefaultFile, then "./i18nkit.yml".
// A missing file is not an error; an explicitly requested missing file is.
func Load(path string, explicit bool) (*Config, error) {
	cfg := &Config{}
	cfg.SetDefaults()

	configFilePath := resolvePath(path, explicit)

	if explicit {
		if _, err := os.Stat(configFilePath); err != nil {
			return nil, fmt.Errorf("configuration file %s: %w", configFilePath, err)
		}
	}

	if err := cfg.readYAML(configFilePath); err != nil {
		return nil, fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return nil, fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return nil, fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()
	cfg.print()

	return cfg, nil
}

// resolvePath determines the config file path with the following precedence:
//  1. explicitly requested path (--config)
//  2. environment variable (I18NKIT_CONFIGFILE)
//  3. DefaultFile, with a fallback check for "./i18nkit.yml"
func resolvePath(path string, explicit bool) string {
	if explicit {
		return path
	}

	if envVar := os.Getenv(ConfigFileEnv); envVar != "" {
		return envVar
	}

	if path == "" {
		path = DefaultFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if _, statErr := os.Stat(fallbackFile); statErr == nil {
			log.Debug().
				Str("path", fallbackFile).
				Msg("Using fallback configuration file")

			return fallbackFile
		}
	}

	return path
}
