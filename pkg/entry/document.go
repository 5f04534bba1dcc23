package entry

import "strings"

// A Document is the result of extracting entries from one source file.
// Inert holds the text around and between entries: Inert[0] precedes the
// first entry and Inert[i+1] follows entry i, so len(Inert) is always
// len(Entries)+1. Concatenating inert segments and entry spans in order
// reproduces the source byte for byte.
type Document struct {
	Entries  []Entry
	Inert    []string
	Warnings []Warning
}

// Text reassembles the source text the document was extracted from.
func (d Document) Text() string {
	var b strings.Builder
	for i, e := range d.Entries {
		b.WriteString(d.Inert[i])
		b.WriteString(e.Span.Text)
	}
	b.WriteString(d.Inert[len(d.Entries)])
	return b.String()
}

// Keys returns the entry keys in document order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Lookup returns the first entry whose key matches under the given fold
// function.
func (d Document) Lookup(key string, fold func(string) string) (Entry, bool) {
	want := fold(key)
	for _, e := range d.Entries {
		if fold(e.Key) == want {
			return e, true
		}
	}
	return Entry{}, false
}
