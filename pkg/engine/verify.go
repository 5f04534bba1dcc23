package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/adiepenbrock/latex-scripts/pkg/bibtex"
	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/rewrite"
	"github.com/adiepenbrock/latex-scripts/pkg/urlcheck"
)

// VerifyParams contains parameters for a Verify run.
type VerifyParams struct {
	File        string
	UpdateDates bool
	Backup      bool
	Checker     urlcheck.Checker

	// OnTargets reports how many entries carry a URL, before the first
	// check runs. Not called when there is nothing to check. May be nil.
	OnTargets func(count int)

	// OnCheckStart and OnCheckDone report per-URL progress. Either may
	// be nil.
	OnCheckStart func(key, url string)
	OnCheckDone  func(key string, res urlcheck.Result)

	// Now supplies the date stamped into notes. nil means time.Now.
	Now func() time.Time
}

// VerifiedEntry pairs an entry key with its URL check outcome.
type VerifiedEntry struct {
	Key    string
	Result urlcheck.Result
}

// VerifyReport describes the outcome of a Verify run.
type VerifyReport struct {
	File        string
	Total       int // entries in the bibliography
	WithURLs    int
	Checked     []VerifiedEntry
	Available   int
	Unavailable int
	Updated     []string // keys whose access date was stamped
	Date        string
	BackupPath  string
	Warnings    []entry.Warning
}

// Verify checks every bibliography URL for availability and, when
// enabled, stamps the current access date into the note field of the
// entries whose URL answered. The file is rewritten only when at least
// one note actually changed, so repeated runs on the same day are
// no-ops.
func (e *Engine) Verify(ctx context.Context, params VerifyParams) (VerifyReport, error) {
	doc, err := e.load(params.File)
	if err != nil {
		return VerifyReport{}, err
	}
	if len(doc.Entries) == 0 {
		return VerifyReport{}, fmt.Errorf("%w: %s", ErrNoEntries, params.File)
	}

	report := VerifyReport{
		File:     params.File,
		Total:    len(doc.Entries),
		Warnings: doc.Warnings,
	}

	type target struct {
		idx int
		url string
	}
	var targets []target
	for i, en := range doc.Entries {
		if u, ok := bibtex.EntryURL(en); ok {
			targets = append(targets, target{idx: i, url: u})
		}
	}
	report.WithURLs = len(targets)
	if len(targets) == 0 {
		return report, nil
	}
	if params.OnTargets != nil {
		params.OnTargets(len(targets))
	}

	now := params.Now
	if now == nil {
		now = time.Now
	}
	report.Date = now().Format("2006-01-02")

	replacements := make(map[int]string)
	for _, tg := range targets {
		en := doc.Entries[tg.idx]
		if params.OnCheckStart != nil {
			params.OnCheckStart(en.Key, tg.url)
		}
		res := params.Checker.Check(ctx, tg.url)
		if params.OnCheckDone != nil {
			params.OnCheckDone(en.Key, res)
		}
		report.Checked = append(report.Checked, VerifiedEntry{Key: en.Key, Result: res})

		if !res.Available {
			report.Unavailable++
			continue
		}
		report.Available++

		if !params.UpdateDates {
			continue
		}
		existing, _ := en.Field(bibtex.FieldNote)
		span, ok := bibtex.SetNote(en.Span.Text, bibtex.AccessNote(existing, report.Date))
		if !ok || span == en.Span.Text {
			continue
		}
		replacements[tg.idx] = span
		report.Updated = append(report.Updated, en.Key)
	}

	if len(replacements) == 0 {
		return report, nil
	}

	if params.Backup {
		if err := e.FS.CreateBackup(params.File, e.Config.BackupSuffix); err != nil {
			return report, fmt.Errorf("failed to create backup: %w", err)
		}
		report.BackupPath = params.File + e.Config.BackupSuffix
	}

	text := rewrite.Replace(doc, replacements)
	if err := e.FS.WriteFileAtomic(params.File, []byte(text), 0644); err != nil {
		return report, fmt.Errorf("failed to write %s: %w", params.File, err)
	}
	return report, nil
}
