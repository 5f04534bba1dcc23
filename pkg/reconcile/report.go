package reconcile

import (
	"github.com/adiepenbrock/latex-scripts/pkg/entry"
)

// A Report is the presentation-free outcome of one reconciliation run:
// where the definitions came from, which files were scanned, and how
// the keys classified. Formatting happens elsewhere.
type Report struct {
	DefinitionFile string
	ScannedFiles   []string
	Result         Result
	Warnings       []entry.Warning
}

// DefinedCount returns the number of keys the definition file defines.
func (r Report) DefinedCount() int {
	return len(r.Result.Matched) + len(r.Result.Unused)
}

// UsedCount returns the number of distinct keys referenced across the
// scanned files.
func (r Report) UsedCount() int {
	return len(r.Result.Matched) + len(r.Result.Missing)
}

// Clean reports whether the run found nothing missing and nothing
// unused.
func (r Report) Clean() bool {
	return len(r.Result.Missing) == 0 && len(r.Result.Unused) == 0
}
