// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog/log"

	"codeberg.org/chillnote/i18nkit/i18n"
)

// validation errors.
var (
	errEmptyCatalogPath      = errors.New("catalog.path cannot be empty")
	errEmptySourceRoot       = errors.New("source.root cannot be empty")
	errInvalidExtension      = errors.New("source.extension must start with '.'")
	errNoConstructs          = errors.New("at least one of source.constructors or source.modifiers is required")
	errInvalidConstructName  = errors.New("invalid construct name")
	errInvalidExcludePattern = errors.New("invalid source.exclude pattern")
	errEmptyReportsDir       = errors.New("reports.dir cannot be empty")
	errInvalidLogLevel       = errors.New("invalid log.level value")
	errInvalidLogFormat      = errors.New("invalid log.format value")
)

var identifierRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateAndSet validates the configuration and populates derived fields.
func (cfg *Config) validateAndSet() error {
	if cfg.Catalog.Path == "" {
		return errEmptyCatalogPath
	}

	locales, err := i18n.ParseLocaleSet(cfg.Catalog.RawLocales)
	if err != nil {
		return fmt.Errorf("catalog.requiredLocales: %w", err)
	}

	cfg.Catalog.RequiredLocales = locales

	if _, err := i18n.ParseLocale(cfg.Catalog.FallbackLocale); err != nil {
		return fmt.Errorf("catalog.fallbackLocale: %w", err)
	}

	if !cfg.Catalog.RequiredLocales.Contains(cfg.Catalog.FallbackLocale) {
		log.Warn().
			Str("locale", cfg.Catalog.FallbackLocale).
			Msg("Fallback locale is not one of the required locales")
	}

	if cfg.Source.Root == "" {
		return errEmptySourceRoot
	}

	if !strings.HasPrefix(cfg.Source.Extension, ".") {
		return fmt.Errorf("%w: %q", errInvalidExtension, cfg.Source.Extension)
	}

	if len(cfg.Source.Constructors) == 0 && len(cfg.Source.Modifiers) == 0 {
		return errNoConstructs
	}

	for _, name := range append(append([]string{}, cfg.Source.Constructors...), cfg.Source.Modifiers...) {
		if !identifierRegexp.MatchString(name) {
			return fmt.Errorf("%w: %q", errInvalidConstructName, name)
		}
	}

	cfg.Source.ExcludeGlobs = make([]glob.Glob, 0, len(cfg.Source.Exclude))

	for _, pattern := range cfg.Source.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return fmt.Errorf("%w %q: %w", errInvalidExcludePattern, pattern, err)
		}

		cfg.Source.ExcludeGlobs = append(cfg.Source.ExcludeGlobs, g)
	}

	if cfg.Reports.Dir == "" {
		return errEmptyReportsDir
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}
