// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package extract

import "errors"

var errNotUTF8 = errors.New("not valid UTF-8 text")

// SourceReadError reports a source file that could not be read or decoded.
// It aborts the run: a binary or corrupted file under the source root
// points at a misconfigured root or extension.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return "cannot read source file " + e.Path + ": " + e.Err.Error()
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}
