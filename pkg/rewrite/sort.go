// Package rewrite produces new document text from an extracted
// document: reordering entries, excising entries by key, and splicing
// replacement entry text. Inert text keeps its position; only entry
// spans move.
package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/latex"
)

// CommentPolicy controls what happens to comment lines directly above
// an entry when entries are reordered.
type CommentPolicy string

const (
	// CommentsTravel moves the run of comment lines directly above an
	// entry together with that entry. A blank line breaks the run.
	CommentsTravel CommentPolicy = "travel"

	// CommentsFixed leaves all non-entry lines exactly where they are.
	CommentsFixed CommentPolicy = "fixed"
)

// ParsePolicy maps a configuration value to a CommentPolicy. The empty
// string selects CommentsTravel.
func ParsePolicy(s string) (CommentPolicy, error) {
	switch CommentPolicy(s) {
	case CommentsTravel, "":
		return CommentsTravel, nil
	case CommentsFixed:
		return CommentsFixed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Sort reorders the document's entries by the format's sort key and
// returns the rewritten text together with the entries in their new
// order. The sort is stable, so entries with equal keys keep their
// relative order. Text before the first entry and after the last stays
// put; under CommentsTravel the comment lines attached to an entry move
// with it, under CommentsFixed nothing but the entry spans moves.
// Sorting an already sorted document returns its text unchanged.
func Sort(doc entry.Document, format entry.Format, policy CommentPolicy) (string, []entry.Entry) {
	n := len(doc.Entries)
	if n == 0 {
		return doc.Text(), nil
	}

	keys := make([]string, n)
	perm := make([]int, n)
	for i, e := range doc.Entries {
		keys[i] = format.SortKey(e)
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return keys[perm[a]] < keys[perm[b]]
	})

	rest := make([]string, n)
	attach := make([]string, n)
	for i := range rest {
		rest[i], attach[i] = splitAttached(doc.Inert[i], policy)
	}

	ordered := make([]entry.Entry, n)
	var b strings.Builder
	for i, from := range perm {
		ordered[i] = doc.Entries[from]
		b.WriteString(rest[i])
		b.WriteString(attach[from])
		b.WriteString(doc.Entries[from].Span.Text)
	}
	b.WriteString(doc.Inert[n])
	return b.String(), ordered
}

// splitAttached splits the inert text before an entry into the part
// that stays put and the trailing comment lines that move with the
// entry.
func splitAttached(inert string, policy CommentPolicy) (rest, attached string) {
	if policy != CommentsTravel {
		return inert, ""
	}
	lines := latex.SplitLines(inert)
	cut := len(lines)
	for cut > 0 && isCommentLine(lines[cut-1]) {
		cut--
	}
	return strings.Join(lines[:cut], ""), strings.Join(lines[cut:], "")
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "%")
}
