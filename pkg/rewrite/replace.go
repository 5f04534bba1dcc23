package rewrite

import (
	"strings"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
)

// Replace substitutes new span text for the entries at the given
// indices and returns the rewritten document text. Indices not present
// in the map are emitted unchanged. Replacement text must keep the
// span's trailing newline for the result to stay line aligned.
func Replace(doc entry.Document, replacements map[int]string) string {
	var b strings.Builder
	for i, e := range doc.Entries {
		b.WriteString(doc.Inert[i])
		if span, ok := replacements[i]; ok {
			b.WriteString(span)
		} else {
			b.WriteString(e.Span.Text)
		}
	}
	b.WriteString(doc.Inert[len(doc.Entries)])
	return b.String()
}
