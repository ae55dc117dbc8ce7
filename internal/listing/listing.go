// SPDX-License-Identifier: MPL-2.0

package listing

type (
	// Entry is a single enum constant.
	Entry struct {
		Name    string
		Content string
	}

	// Listing is an insertion-ordered mapping from constant name to content.
	// The zero value is ready to use.
	Listing struct {
		entries []Entry
		index   map[string]int
	}
)

// New creates an empty Listing.
func New() *Listing {
	return &Listing{}
}

// Set inserts name with content, or updates the content of an existing
// entry while keeping its original position. It reports whether an earlier
// entry was replaced.
func (l *Listing) Set(name, content string) (replaced bool) {
	if l.index == nil {
		l.index = make(map[string]int)
	}

	if i, ok := l.index[name]; ok {
		l.entries[i].Content = content
		return true
	}

	l.index[name] = len(l.entries)
	l.entries = append(l.entries, Entry{Name: name, Content: content})
	return false
}

// Get returns the content stored for name.
func (l *Listing) Get(name string) (string, bool) {
	i, ok := l.index[name]
	if !ok {
		return "", false
	}
	return l.entries[i].Content, true
}

// Len returns the number of distinct names.
func (l *Listing) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in first-seen order.
func (l *Listing) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
