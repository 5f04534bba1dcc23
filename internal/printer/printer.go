// Package printer renders operation reports in the console vocabulary
// of the LaTeX maintenance tools. All output goes through one writer so
// quiet mode can swap in io.Discard.
package printer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/reconcile"
)

var (
	heavyRule = strings.Repeat("=", 40)
	lightRule = strings.Repeat("-", 40)
)

// Printer writes report sections to a single output stream.
type Printer struct {
	out io.Writer
}

// New creates a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Line prints one formatted line.
func (p *Printer) Line(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

// Title prints a tool banner.
func (p *Printer) Title(title string) {
	p.Line("%s", title)
	p.Line("%s", heavyRule)
}

// BackupCreated reports the path a backup was written to.
func (p *Printer) BackupCreated(path string) {
	p.Line("📁 Backup created: %s", path)
}

// DryRunNotice reports that nothing was changed. noun names what would
// have been removed ("entries" or "definitions").
func (p *Printer) DryRunNotice(file, noun string) {
	p.Blank()
	p.Line("🔬 DRY RUN MODE: No changes made to '%s'", file)
	p.Line("💡 Run without --dry-run to actually remove these %s", noun)
}

// Warnings lists recoverable problems found while parsing.
func (p *Printer) Warnings(warnings []entry.Warning) {
	for _, w := range warnings {
		p.Line("Warning: %s", w)
	}
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// sortedEntries returns the entries ordered by key for display.
func sortedEntries(entries []entry.Entry) []entry.Entry {
	out := append([]entry.Entry(nil), entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// sortedMissing returns the missing keys ordered by key for display.
func sortedMissing(missing []reconcile.MissingKey) []reconcile.MissingKey {
	out := append([]reconcile.MissingKey(nil), missing...)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
