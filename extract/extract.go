// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package extract finds user-facing string literals in a source tree.
//
// Extraction is a text search, not a parse: a literal is found only when it
// is the first argument of one of the registered constructs and is written
// as a single quoted string on the call site. Multi-argument formats,
// computed strings and literals split over several lines are not matched.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"
)

// ModifierContext is the Context of literals passed to a modifier call.
const ModifierContext = "modifier"

// InterpolationMarker starts a runtime substitution inside a literal.
const InterpolationMarker = `\(`

// literalExpr matches the body of a double quoted literal, honouring
// backslash escapes.
const literalExpr = `"((?:\\.|[^"\\])*)"`

var errNoConstructs = errors.New("no constructors or modifiers registered")

// Literal is a string literal found in a source file.
type Literal struct {
	Key     string // literal text with \n and \" resolved
	File    string // path as walked from the root
	Line    int    // 1-based
	Context string // constructor name, or ModifierContext
	Dynamic bool   // Key contains InterpolationMarker
}

// Options configures an Extractor.
type Options struct {
	// Extension selects source files, for example ".swift".
	Extension string
	// Constructors are call names taking the literal as first argument,
	// for example Text("...").
	Constructors []string
	// Modifiers are method names taking the literal as first argument,
	// for example .navigationTitle("...").
	Modifiers []string
	// Exclude holds patterns matched against the slash separated path
	// relative to the root; matching files and directories are skipped.
	Exclude []glob.Glob
}

// alternative describes one branch of the compiled pattern.
type alternative struct {
	nameGroup    int // submatch index of the construct name, or -1
	literalGroup int
}

// Extractor scans source files for UI literals.
type Extractor struct {
	opts         Options
	pattern      *regexp.Regexp
	alternatives []alternative
}

// New compiles the construct registry in opts into an Extractor.
func New(opts Options) (*Extractor, error) {
	var (
		branches     []string
		alternatives []alternative
		group        = 0
	)

	if len(opts.Constructors) > 0 {
		branches = append(branches, `\b(`+quoteAll(opts.Constructors)+`)\(\s*`+literalExpr)
		alternatives = append(alternatives, alternative{nameGroup: group + 1, literalGroup: group + 2})
		group += 2
	}

	if len(opts.Modifiers) > 0 {
		branches = append(branches, `\.(?:`+quoteAll(opts.Modifiers)+`)\(\s*`+literalExpr)
		alternatives = append(alternatives, alternative{nameGroup: -1, literalGroup: group + 1})
	}

	if len(branches) == 0 {
		return nil, errNoConstructs
	}

	pattern, err := regexp.Compile(strings.Join(branches, "|"))
	if err != nil {
		return nil, fmt.Errorf("failed to compile literal pattern: %w", err)
	}

	return &Extractor{opts: opts, pattern: pattern, alternatives: alternatives}, nil
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}

	return strings.Join(quoted, "|")
}

// ScanFile returns the literals found in content, in source order.
// path is only recorded in the returned literals.
func (x *Extractor) ScanFile(path string, content []byte) []Literal {
	var out []Literal

	for _, m := range x.pattern.FindAllSubmatchIndex(content, -1) {
		lit, ok := x.literal(content, m)
		if !ok {
			continue
		}

		lit.File = path
		lit.Line = 1 + bytes.Count(content[:m[0]], []byte{'\n'})
		out = append(out, lit)
	}

	return out
}

// literal decodes the submatch indexes m of one match.
func (x *Extractor) literal(content []byte, m []int) (Literal, bool) {
	for _, alt := range x.alternatives {
		start, end := m[2*alt.literalGroup], m[2*alt.literalGroup+1]
		if start < 0 || start == end {
			continue
		}

		construct := ModifierContext
		if alt.nameGroup >= 0 && m[2*alt.nameGroup] >= 0 {
			construct = string(content[m[2*alt.nameGroup]:m[2*alt.nameGroup+1]])
		}

		key := Unescape(string(content[start:end]))

		return Literal{
			Key:     key,
			Context: construct,
			Dynamic: IsDynamic(key),
		}, true
	}

	return Literal{}, false
}

// Unescape resolves the escaped newline and escaped quote sequences of a
// captured literal. No other escape is processed.
func Unescape(raw string) string {
	s := strings.ReplaceAll(raw, `\n`, "\n")

	return strings.ReplaceAll(s, `\"`, `"`)
}

// IsDynamic reports whether literal contains an interpolation marker.
func IsDynamic(literal string) bool {
	return strings.Contains(literal, InterpolationMarker)
}

// Literals returns the literals of every matching file under root.
//
// The sequence is lazy and can be ranged over more than once; every range
// walks the tree again. Files are visited in lexical order. Iteration
// stops after the first error, which is yielded with a zero Literal.
func (x *Extractor) Literals(root string) iter.Seq2[Literal, error] {
	return func(yield func(Literal, error) bool) {
		stopped := false

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return &SourceReadError{Path: path, Err: err}
			}

			if x.excluded(root, path) {
				if d.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if d.IsDir() || filepath.Ext(path) != x.opts.Extension {
				return nil
			}

			content, err := readSource(path)
			if err != nil {
				return err
			}

			for _, lit := range x.ScanFile(path, content) {
				if !yield(lit, nil) {
					stopped = true

					return filepath.SkipAll
				}
			}

			return nil
		})

		if err != nil && !stopped {
			yield(Literal{}, err)
		}
	}
}

func (x *Extractor) excluded(root, path string) bool {
	if len(x.opts.Exclude) == 0 || path == root {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	rel = filepath.ToSlash(rel)

	for _, g := range x.opts.Exclude {
		if g.Match(rel) {
			return true
		}
	}

	return false
}

// readSource reads a whole source file and checks that it is UTF-8 text.
func readSource(path string) ([]byte, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- walking the configured source root
	if err != nil {
		return nil, &SourceReadError{Path: path, Err: err}
	}

	if !utf8.Valid(content) {
		return nil, &SourceReadError{Path: path, Err: errNotUTF8}
	}

	return content, nil
}
