package engine

import (
	"fmt"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/reconcile"
	"github.com/adiepenbrock/latex-scripts/pkg/rewrite"
)

// RemoveParams contains parameters for a RemoveUnused run.
type RemoveParams struct {
	DefinitionFile string
	Files          []string
	Directory      string
	Recursive      bool
	DryRun         bool
	Backup         bool

	// OnReconciled reports the scan outcome before any removal
	// decision is taken. May be nil.
	OnReconciled func(report reconcile.Report)

	// Confirm is consulted with the unused entries before anything is
	// written. nil means proceed without asking.
	Confirm func(unused []entry.Entry) (bool, error)
}

// RemoveReport describes the outcome of a RemoveUnused run. Removed is
// only populated when the file was actually rewritten.
type RemoveReport struct {
	reconcile.Report
	Removed    []entry.Entry
	BackupPath string
	DryRun     bool
	Aborted    bool
}

// RemoveUnused excises every definition no scanned file references.
// A dry run reports what would be removed without touching the file.
func (e *Engine) RemoveUnused(params RemoveParams) (RemoveReport, error) {
	doc, err := e.load(params.DefinitionFile)
	if err != nil {
		return RemoveReport{}, err
	}
	if len(doc.Entries) == 0 {
		return RemoveReport{}, fmt.Errorf("%w: %s", ErrNoEntries, params.DefinitionFile)
	}

	files, err := e.resolveFiles(params.Files, params.Directory, params.Recursive)
	if err != nil {
		return RemoveReport{}, err
	}

	usages, err := e.scanUsages(files)
	if err != nil {
		return RemoveReport{}, err
	}

	report := RemoveReport{
		Report: reconcile.Report{
			DefinitionFile: params.DefinitionFile,
			ScannedFiles:   files,
			Result:         reconcile.Reconcile(doc.Entries, usages, e.format.FoldKey),
			Warnings:       doc.Warnings,
		},
		DryRun: params.DryRun,
	}
	if params.OnReconciled != nil {
		params.OnReconciled(report.Report)
	}

	unused := report.Result.Unused
	if len(unused) == 0 || params.DryRun {
		return report, nil
	}

	if params.Confirm != nil {
		ok, err := params.Confirm(unused)
		if err != nil {
			return report, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			report.Aborted = true
			return report, nil
		}
	}

	keys := make([]string, len(unused))
	for i, en := range unused {
		keys[i] = en.Key
	}
	text, removed, warnings := rewrite.Remove(doc, keys, e.format.FoldKey)
	report.Warnings = append(report.Warnings, warnings...)

	if params.Backup {
		if err := e.FS.CreateBackup(params.DefinitionFile, e.Config.BackupSuffix); err != nil {
			return report, fmt.Errorf("failed to create backup: %w", err)
		}
		report.BackupPath = params.DefinitionFile + e.Config.BackupSuffix
	}

	if err := e.FS.WriteFileAtomic(params.DefinitionFile, []byte(text), 0644); err != nil {
		return report, fmt.Errorf("failed to write %s: %w", params.DefinitionFile, err)
	}

	report.Removed = removed
	return report, nil
}
