// SPDX-License-Identifier: MPL-2.0

// Package naming derives Kotlin enum constant names from pattern file paths.
package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	extSeparator  = "."
	pathSeparator = "/"
	wordSeparator = "-"
)

// ErrPathShape is the sentinel error wrapped by PathShapeError.
var ErrPathShape = errors.New("unsupported pattern path shape")

// PathShapeError is returned when a path does not have the
// "<dir>/<name-with-hyphens>.<ext>" shape Derive relies on.
// It wraps ErrPathShape for errors.Is() compatibility.
type PathShapeError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *PathShapeError) Error() string {
	return fmt.Sprintf("%s: %s (expected <dir>/<name>.<ext>)", e.Path, e.Reason)
}

// Unwrap returns ErrPathShape for errors.Is() compatibility.
func (e *PathShapeError) Unwrap() error {
	return ErrPathShape
}

// Derive returns the constant name for a pattern path.
//
// The path must be relative with exactly one directory component and an
// extension: "patterns/glider-gun.rle" gives "GliderGun". Everything from the
// first '.' on is dropped, the remainder is split on '/', and the second
// element is taken. That element is split on '-' and each word gets an
// upper-case first letter; the rest of each word is left untouched.
//
// Deeper paths select the component right after the leading directory
// ("a/b/c.rle" gives "B"); callers pass paths in the documented shape.
func Derive(path string) (string, error) {
	slashed := filepath.ToSlash(path)

	if !strings.Contains(slashed, extSeparator) {
		return "", &PathShapeError{Path: path, Reason: "missing file extension"}
	}
	stem, _, _ := strings.Cut(slashed, extSeparator)

	parts := strings.Split(stem, pathSeparator)
	if len(parts) < 2 {
		return "", &PathShapeError{Path: path, Reason: "missing directory component"}
	}

	name := camelCase(parts[1])
	if name == "" {
		return "", &PathShapeError{Path: path, Reason: "empty file name"}
	}
	return name, nil
}

// camelCase joins the '-'-separated words of s, capitalizing the first
// letter of each one.
func camelCase(s string) string {
	var sb strings.Builder
	for _, word := range strings.Split(s, wordSeparator) {
		sb.WriteString(upperFirst(word))
	}
	return sb.String()
}

func upperFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return ""
	}
	return string(unicode.ToTitle(r)) + word[size:]
}
