// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON    = errors.New("invalid JSON")
	ErrNotObject      = errors.New("root is not an object")
	ErrMissingStrings = errors.New(`missing "strings" member`)
	ErrMalformedEntry = errors.New("malformed entry")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// FormatError reports a catalog that cannot be read or does not have the
// expected structure.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("catalog: %v", e.Err)
	}

	return fmt.Sprintf("catalog %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
