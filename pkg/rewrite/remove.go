package rewrite

import (
	"strings"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/latex"
)

// Remove excises the entries whose keys match the given keys under the
// fold and returns the rewritten text, the removed entries in document
// order, and one key-not-found warning per requested key that matched
// nothing.
//
// Excising an entry also drops the blank separator that followed it, so
// removing an entry from a blank-line separated list does not leave a
// double blank behind. Comment lines above a removed entry stay in
// place. Text before the first entry is never touched.
func Remove(doc entry.Document, keys []string, fold func(string) string) (string, []entry.Entry, []entry.Warning) {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[fold(k)] = true
	}

	n := len(doc.Entries)
	inert := []string{doc.Inert[0]}
	var kept []entry.Entry
	var removed []entry.Entry
	found := make(map[string]bool, len(keys))

	for i, e := range doc.Entries {
		next := doc.Inert[i+1]
		if !drop[fold(e.Key)] {
			kept = append(kept, e)
			inert = append(inert, next)
			continue
		}
		found[fold(e.Key)] = true
		removed = append(removed, e)

		last := len(inert) - 1
		if i < n-1 {
			// The blank separator goes with the entry. Anything else
			// stays, merged into the preceding slot.
			if !latex.IsBlank(next) {
				inert[last] += next
			}
			continue
		}
		// Removing the final entry: collapse the now dangling blank
		// separator before it, but never rewrite the preamble slot.
		if latex.IsBlank(next) && latex.IsBlank(inert[last]) && last > 0 {
			inert[last] = next
		} else {
			inert[last] += next
		}
	}

	var warnings []entry.Warning
	warned := make(map[string]bool)
	for _, k := range keys {
		fk := fold(k)
		if found[fk] || warned[fk] {
			continue
		}
		warned[fk] = true
		warnings = append(warnings, entry.Warning{Kind: entry.WarnKeyNotFound, Key: k})
	}

	var b strings.Builder
	for i, e := range kept {
		b.WriteString(inert[i])
		b.WriteString(e.Span.Text)
	}
	b.WriteString(inert[len(inert)-1])
	return b.String(), removed, warnings
}
