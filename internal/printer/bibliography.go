package printer

import (
	"github.com/adiepenbrock/latex-scripts/pkg/bibtex"
	"github.com/adiepenbrock/latex-scripts/pkg/engine"
	"github.com/adiepenbrock/latex-scripts/pkg/reconcile"
	"github.com/adiepenbrock/latex-scripts/pkg/urlcheck"
)

// BibliographyScan reports what was loaded and how many files are
// checked.
func (p *Printer) BibliographyScan(r reconcile.Report) {
	p.Line("Found %d entries in bibliography file '%s'", r.DefinedCount(), r.DefinitionFile)
	p.Line("Checking %d LaTeX files...", len(r.ScannedFiles))
	p.Warnings(r.Warnings)
}

// BibliographyResults prints the missing/unused sections and the
// summary of a bibliography usage check.
func (p *Printer) BibliographyResults(r reconcile.Report) {
	p.Blank()
	p.Line("%s", heavyRule)
	p.Line("RESULTS")
	p.Line("%s", heavyRule)

	missing := sortedMissing(r.Result.Missing)
	if len(missing) > 0 {
		p.Blank()
		p.Line("🔴 MISSING BIBLIOGRAPHY ENTRIES (%d):", len(missing))
		p.Line("%s", lightRule)
		for _, m := range missing {
			p.Blank()
			p.Line("Citation '%s' is used but not defined in bibliography:", m.Key)
			for _, u := range m.Usages {
				p.Line("  📁 %s:%d", u.File, u.Line)
			}
		}
	} else {
		p.Blank()
		p.Line("✅ All citations have corresponding bibliography entries!")
	}

	unused := sortedEntries(r.Result.Unused)
	if len(unused) > 0 {
		p.Blank()
		p.Line("🟡 UNUSED BIBLIOGRAPHY ENTRIES (%d):", len(unused))
		p.Line("%s", lightRule)
		for _, e := range unused {
			title, ok := e.Field(bibtex.FieldTitle)
			if !ok {
				title = "No title"
			}
			author, ok := e.Field(bibtex.FieldAuthor)
			if !ok {
				author = "No author"
			}
			p.Line("  '%s' - %s", e.Key, truncate(title, 50))
			p.Line("    Author: %s", author)
		}
	} else {
		p.Blank()
		p.Line("✅ All bibliography entries are being cited!")
	}

	p.Blank()
	p.Line("📊 SUMMARY:")
	p.Line("  • Bibliography entries: %d", r.DefinedCount())
	p.Line("  • Unique citations: %d", r.UsedCount())
	p.Line("  • Missing entries: %d", len(r.Result.Missing))
	p.Line("  • Unused entries: %d", len(r.Result.Unused))

	if len(missing) > 0 {
		p.Blank()
		p.Line("💡 TIP: Add these missing bibliography entries to '%s'", r.DefinitionFile)
	}
}

// BibliographyRemoveOutcome prints what a live removal changed.
func (p *Printer) BibliographyRemoveOutcome(r engine.RemoveReport) {
	p.Blank()
	p.Line("✅ Successfully removed %d unused bibliography entries", len(r.Removed))
	p.Line("📝 Removed entries:")
	for _, e := range sortedEntries(r.Removed) {
		p.Line("   %s", e.Key)
	}
}

// URLFound reports how many entries carry a checkable address.
func (p *Printer) URLFound(count int) {
	p.Line("Found %d entries with URLs", count)
	p.Line("Checking URL availability...")
}

// URLCheckStart announces one URL check.
func (p *Printer) URLCheckStart(key, url string) {
	p.Line("  Checking %s: %s", key, truncate(url, 60))
}

// URLCheckDone reports one URL check outcome.
func (p *Printer) URLCheckDone(res urlcheck.Result) {
	if res.Available {
		p.Line("    ✅ Available (Status: %d)", res.StatusCode)
	} else {
		p.Line("    ❌ Not available (Error: %s)", res.Err)
	}
}

// URLSummary prints the URL check totals.
func (p *Printer) URLSummary(r engine.VerifyReport) {
	p.Blank()
	p.Line("📊 URL CHECK SUMMARY:")
	p.Line("  • Total URLs checked: %d", len(r.Checked))
	p.Line("  • Available URLs: %d", r.Available)
	p.Line("  • Unavailable URLs: %d", r.Unavailable)
}

// DatesUpdated reports the access-date stamping outcome.
func (p *Printer) DatesUpdated(r engine.VerifyReport) {
	p.Blank()
	p.Line("✅ Updated access dates for %d entries", len(r.Updated))
	p.Line("📅 Current date: %s", r.Date)
}
