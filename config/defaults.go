// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

// SetDefaults populates the configuration with default values.
func (cfg *Config) SetDefaults() {
	cfg.Catalog.Path = "chillnote/Resources/Localizable.xcstrings"
	cfg.Catalog.FallbackLocale = "en"
	cfg.Catalog.RawLocales = []string{"en", "zh-Hans", "zh-Hant", "ja", "fr", "de", "es", "ko"}

	cfg.Source.Root = "chillnote"
	cfg.Source.Extension = ".swift"
	cfg.Source.Exclude = nil
	cfg.Source.Constructors = []string{"Text", "Button", "Label", "TextField"}
	cfg.Source.Modifiers = []string{"alert", "navigationTitle", "accessibilityLabel", "accessibilityHint"}

	cfg.Reports.Dir = "docs/i18n"

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
