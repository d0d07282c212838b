// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package catalog reads and writes Xcode string catalogs (.xcstrings).
//
// A catalog is a JSON document whose "strings" member maps source text to
// an entry; each entry maps locale identifiers to a string unit:
//
//	{
//	  "sourceLanguage": "en",
//	  "strings": {
//	    "Save": {
//	      "localizations": {
//	        "fr": { "stringUnit": { "state": "translated", "value": "Enregistrer" } }
//	      }
//	    }
//	  },
//	  "version": "1.0"
//	}
//
// Member order and every field the package does not interpret are kept
// across Load and Save.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"codeberg.org/chillnote/i18nkit/core/fileutil"
)

// Field names of the .xcstrings format.
const (
	StringsField       = "strings"
	LocalizationsField = "localizations"
	StringUnitField    = "stringUnit"
	ValueField         = "value"
	StateField         = "state"
)

// Unit states.
const (
	StateNew        = "new"
	StateTranslated = "translated"
)

const filePermissions = 0o644

var prettyOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

// Catalog is a loaded string catalog.
type Catalog struct {
	root    *Object
	strings *Object
}

// Load reads and parses the catalog at path.
// All failures are reported as *FormatError.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- catalog path comes from configuration
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}

	c, err := Parse(data)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}

		return nil, err
	}

	log.Debug().
		Str("sys", "catalog").
		Str("path", path).
		Int("keys", c.Len()).
		Msg("Loaded catalog")

	return c, nil
}

// Parse parses catalog JSON.
func Parse(data []byte) (*Catalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, &FormatError{Err: ErrInvalidJSON}
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, &FormatError{Err: ErrNotObject}
	}

	strs := doc.Get(StringsField)
	if !strs.Exists() {
		return nil, &FormatError{Err: ErrMissingStrings}
	}

	if !strs.IsObject() {
		return nil, &FormatError{Err: fmt.Errorf("%w: %q is not an object", ErrMalformedEntry, StringsField)}
	}

	var duplicate string

	root := parseObject(doc, nil)
	entries := parseObject(strs, func(key string) {
		if duplicate == "" {
			duplicate = key
		}
	})

	if duplicate != "" {
		return nil, &FormatError{Err: fmt.Errorf("%w: %q", ErrDuplicateKey, duplicate)}
	}

	for _, key := range entries.Keys() {
		entry, ok := entries.Object(key)
		if !ok {
			return nil, &FormatError{Err: fmt.Errorf("%w: entry %q is not an object", ErrMalformedEntry, key)}
		}

		if entry.Has(LocalizationsField) {
			if _, ok := entry.Object(LocalizationsField); !ok {
				return nil, &FormatError{Err: fmt.Errorf("%w: %q of entry %q is not an object",
					ErrMalformedEntry, LocalizationsField, key)}
			}
		}
	}

	// Share the parsed entries with the tree so edits reach Marshal.
	root.SetObject(StringsField, entries)

	return &Catalog{root: root, strings: entries}, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return c.strings.Len()
}

// Keys returns the entry keys in catalog order.
func (c *Catalog) Keys() []string {
	return c.strings.Keys()
}

// Has reports whether key is an entry of the catalog.
func (c *Catalog) Has(key string) bool {
	return c.strings.Has(key)
}

// Entry returns the entry for key.
func (c *Catalog) Entry(key string) (*Entry, bool) {
	obj, ok := c.strings.Object(key)
	if !ok {
		return nil, false
	}

	return &Entry{key: key, obj: obj}, true
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	root := c.root.Clone()
	strs, _ := root.Object(StringsField)

	return &Catalog{root: root, strings: strs}
}

// Marshal returns the catalog as two-space indented JSON with a trailing
// newline.
func (c *Catalog) Marshal() []byte {
	return pretty.PrettyOptions(c.root.appendJSON(nil), prettyOptions)
}

// Save writes the catalog to path atomically.
func (c *Catalog) Save(path string) error {
	if err := fileutil.WriteAtomic(path, c.Marshal(), filePermissions); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	log.Debug().
		Str("sys", "catalog").
		Str("path", path).
		Int("keys", c.Len()).
		Msg("Saved catalog")

	return nil
}
