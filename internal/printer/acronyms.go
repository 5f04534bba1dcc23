package printer

import (
	"github.com/adiepenbrock/latex-scripts/pkg/acronyms"
	"github.com/adiepenbrock/latex-scripts/pkg/engine"
	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/reconcile"
)

func acronymLine(e entry.Entry) (abbrev, longform string) {
	abbrev, _ = e.Field(acronyms.FieldAbbreviation)
	longform, _ = e.Field(acronyms.FieldLongform)
	return abbrev, longform
}

// AcronymsScan reports what was loaded and how many files are checked.
func (p *Printer) AcronymsScan(r reconcile.Report) {
	p.Line("Found %d defined acronyms in '%s'", r.DefinedCount(), r.DefinitionFile)
	p.Line("Checking %d LaTeX files...", len(r.ScannedFiles))
	p.Warnings(r.Warnings)
}

// AcronymsResults prints the missing/unused sections and the summary of
// an acronym usage check.
func (p *Printer) AcronymsResults(r reconcile.Report) {
	p.Blank()
	p.Line("%s", heavyRule)
	p.Line("RESULTS")
	p.Line("%s", heavyRule)

	missing := sortedMissing(r.Result.Missing)
	if len(missing) > 0 {
		p.Blank()
		p.Line("🔴 MISSING DEFINITIONS (%d):", len(missing))
		p.Line("%s", lightRule)
		for _, m := range missing {
			p.Blank()
			p.Line("Acronym '%s' is used but not defined:", m.Key)
			for _, u := range m.Usages {
				p.Line("  📁 %s:%d", u.File, u.Line)
			}
		}
	} else {
		p.Blank()
		p.Line("✅ All used acronyms are properly defined!")
	}

	unused := sortedEntries(r.Result.Unused)
	if len(unused) > 0 {
		p.Blank()
		p.Line("🟡 UNUSED DEFINITIONS (%d):", len(unused))
		p.Line("%s", lightRule)
		for _, e := range unused {
			abbrev, longform := acronymLine(e)
			p.Line("  '%s' [%s] - %s", e.Key, abbrev, longform)
		}
	} else {
		p.Blank()
		p.Line("✅ All defined acronyms are being used!")
	}

	p.Blank()
	p.Line("📊 SUMMARY:")
	p.Line("  • Defined acronyms: %d", r.DefinedCount())
	p.Line("  • Used acronyms: %d", r.UsedCount())
	p.Line("  • Missing definitions: %d", len(r.Result.Missing))
	p.Line("  • Unused definitions: %d", len(r.Result.Unused))

	if len(missing) > 0 {
		p.Blank()
		p.Line("💡 TIP: Add these missing acronym definitions to '%s':", r.DefinitionFile)
		for _, m := range missing {
			p.Line("  \\acro{%s}[???]{???}", m.Key)
		}
	}
}

// AcronymsUnusedFound lists the definitions a removal run is about to
// touch.
func (p *Printer) AcronymsUnusedFound(unused []entry.Entry) {
	p.Blank()
	p.Line("🔍 Found %d unused acronym definitions:", len(unused))
	p.Line("%s", lightRule)
	for _, e := range sortedEntries(unused) {
		abbrev, longform := acronymLine(e)
		p.Line("  '%s' [%s] - %s", e.Key, abbrev, longform)
	}
}

// AcronymsRemoveOutcome prints what a live removal changed.
func (p *Printer) AcronymsRemoveOutcome(r engine.RemoveReport) {
	p.Blank()
	p.Line("✅ Successfully removed %d unused acronym definitions", len(r.Removed))
	p.Line("📝 Removed acronyms:")
	for _, e := range sortedEntries(r.Removed) {
		abbrev, longform := acronymLine(e)
		p.Line("   [%s] %s", abbrev, longform)
	}

	p.Blank()
	p.Line("📊 SUMMARY:")
	p.Line("  • Original definitions: %d", r.DefinedCount())
	p.Line("  • Removed definitions: %d", len(r.Removed))
	p.Line("  • Remaining definitions: %d", r.DefinedCount()-len(r.Removed))
}

// AcronymsSorted prints the new entry order after a sort.
func (p *Printer) AcronymsSorted(r engine.SortReport) {
	p.Line("✅ Successfully sorted %d acronym entries.", len(r.Entries))
	p.Line("📝 Sorted order:")
	for _, e := range r.Entries {
		abbrev, longform := acronymLine(e)
		p.Line("   %s: %s", abbrev, longform)
	}
}
