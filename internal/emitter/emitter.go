// SPDX-License-Identifier: MPL-2.0

// Package emitter turns pattern files into a rendered Kotlin enum listing.
package emitter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"golly2kt/internal/issue"
	"golly2kt/internal/listing"
	"golly2kt/internal/naming"
	"golly2kt/internal/rle"

	"github.com/charmbracelet/log"
)

type (
	// Options configures an Emitter.
	Options struct {
		// EnumName is the generated enum class name. Empty means "Patterns".
		EnumName string
		// Logger receives debug diagnostics. Nil discards them.
		Logger *log.Logger
	}

	// Emitter reads pattern files in order and renders them as one listing.
	Emitter struct {
		enumName string
		logger   *log.Logger
	}
)

// New creates an Emitter.
func New(opts Options) *Emitter {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Emitter{
		enumName: opts.EnumName,
		logger:   logger,
	}
}

// Collect derives a name and encodes the content of every path, in order.
// A name seen twice keeps its first position and takes the later content.
// The first failure stops the run.
func (e *Emitter) Collect(ctx context.Context, paths []string) (*listing.Listing, error) {
	l := listing.New()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation interrupted: %w", err)
		}

		name, err := naming.Derive(path)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("derive pattern name").
				WithResource(path).
				WithSuggestion("Pass pattern files as <dir>/<name>.<ext>, e.g. patterns/glider-gun.rle").
				WithSuggestion("Run golly2kt from the directory that contains the pattern folder").
				Wrap(err).
				BuildError()
		}

		content, err := rle.EncodeFile(path)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("encode pattern").
				WithResource(path).
				WithSuggestion("Check that the file exists and is readable").
				Wrap(err).
				BuildError()
		}

		if l.Set(name, content) {
			e.logger.Debug("duplicate pattern name, keeping latest content", "name", name, "path", path)
		}
		e.logger.Debug("encoded pattern", "name", name, "path", path, "length", utf8.RuneCountInString(content))
	}

	return l, nil
}

// Emit collects paths and writes the rendered listing to w. Nothing is
// written unless every file was processed.
func (e *Emitter) Emit(ctx context.Context, w io.Writer, paths []string) error {
	l, err := e.Collect(ctx, paths)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = listing.Render(&buf, l, listing.RenderOptions{
		EnumName: e.enumName,
		OnOmit: func(entry listing.Entry, length int) {
			e.logger.Debug("pattern omitted from listing",
				"name", entry.Name, "length", length, "limit", listing.MaxContentLength)
		},
	})
	if err != nil {
		return err
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	return nil
}
