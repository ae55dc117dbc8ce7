// SPDX-License-Identifier: MPL-2.0

package listing

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	// DefaultEnumName is the Kotlin enum class consumers reference.
	DefaultEnumName = "Patterns"

	// MaxContentLength is the exclusive upper bound on content length, in
	// characters. Longer patterns are left out of the listing.
	MaxContentLength = 5000

	entryIndent = "    "
)

// RenderOptions tunes Render.
type RenderOptions struct {
	// EnumName is the enum class name. Empty means DefaultEnumName.
	EnumName string
	// OnOmit, if set, is called for each entry left out because of
	// MaxContentLength.
	OnOmit func(e Entry, length int)
}

// Included reports whether content fits under MaxContentLength.
func Included(content string) bool {
	return utf8.RuneCountInString(content) < MaxContentLength
}

// Render writes l as a Kotlin enum class:
//
//	enum class Patterns(val value: String) {
//	    GliderGun("24bo\$22bobo..."),
//	}
//
// Content is written verbatim between double quotes; it is expected to be
// already escaped.
func Render(w io.Writer, l *Listing, opts RenderOptions) error {
	enumName := opts.EnumName
	if enumName == "" {
		enumName = DefaultEnumName
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "enum class %s(val value: String) {\n", enumName)
	for _, e := range l.entries {
		if !Included(e.Content) {
			if opts.OnOmit != nil {
				opts.OnOmit(e, utf8.RuneCountInString(e.Content))
			}
			continue
		}
		fmt.Fprintf(bw, "%s%s(\"%s\"),\n", entryIndent, e.Name, e.Content)
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	return nil
}
