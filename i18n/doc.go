// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n holds the locale vocabulary shared by the configuration, the
reconciliation checks and the normalizer.

# Locale identifiers

Catalog locales are keyed by the identifier Xcode writes into the
.xcstrings file, for example "en", "zh-Hans" or "pt-BR". A [LocaleSet]
keeps those identifiers verbatim so they compare equal to catalog keys,
and only uses BCP 47 parsing to reject malformed or duplicate entries.

# Fallback

[BaseLocale] is the source language of the catalog. Its value seeds
translations for locales that have none; when it is empty too, the
catalog key itself is used.
*/
package i18n
