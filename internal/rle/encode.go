// SPDX-License-Identifier: MPL-2.0

package rle

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// CommentMarker starts a comment line (#N, #C, #O, ...).
	CommentMarker = '#'
	// HeaderMarker starts the dimensions header line ("x = 3, y = 3").
	HeaderMarker = 'x'

	// escapedRowEnd replaces every '$' in a surviving line.
	escapedRowEnd = `\$`

	// maxLineSize bounds a single line; pattern rows are usually < 80 chars
	// but some editors write the whole pattern on one line.
	maxLineSize = 16 * 1024 * 1024
)

// ErrFileAccess is the sentinel error wrapped by FileAccessError.
var ErrFileAccess = errors.New("pattern file not accessible")

// FileAccessError is returned when a pattern file cannot be opened or read.
// It wraps ErrFileAccess for errors.Is() compatibility.
type FileAccessError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFileAccess.
func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}

// EncodeFile opens path and returns its encoded content.
// The file is closed before EncodeFile returns on every path.
func EncodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }() // Read-only file; close error carries no data loss

	encoded, err := Encode(f)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	return encoded, nil
}

// Encode consumes r line by line and concatenates every pattern line with
// '$' escaped. Blank, comment and header lines are skipped. No separator is
// inserted between lines.
func Encode(r io.Reader) (string, error) {
	var sb strings.Builder

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(scanLines)
	for sc.Scan() {
		line, ok := FilterLine(sc.Text())
		if !ok {
			continue
		}
		sb.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read pattern: %w", err)
	}

	return sb.String(), nil
}

// FilterLine trims raw and reports whether it carries pattern data.
// When it does, the returned line has every '$' escaped.
func FilterLine(raw string) (string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return "", false
	}

	switch line[0] {
	case CommentMarker, HeaderMarker:
		return "", false
	}

	return strings.ReplaceAll(line, "$", escapedRowEnd), true
}

// scanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a
// lone "\r". The terminator is not part of the token.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// '\r' as the last buffered byte: wait to see whether '\n' follows.
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
