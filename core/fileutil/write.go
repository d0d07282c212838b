// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package fileutil holds file helpers shared by the catalog writer and the
// report generators.
package fileutil

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// WriteAtomic replaces path with data so that readers see either the old
// or the new content, never a partial file.
//
// An existing file keeps its mode; a new file is created with perm.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	_, statErr := os.Stat(path)
	existed := statErr == nil

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if !existed {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("failed to set mode of %s: %w", path, err)
		}
	}

	return nil
}
