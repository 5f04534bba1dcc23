package engine

import (
	"fmt"

	"github.com/adiepenbrock/latex-scripts/pkg/reconcile"
)

// CheckParams contains parameters for a Check run.
type CheckParams struct {
	DefinitionFile string
	Files          []string // explicit files; bypasses discovery
	Directory      string   // discovery root when Files is empty
	Recursive      bool
}

// Check reconciles the definition file against every reference found in
// the scanned files.
func (e *Engine) Check(params CheckParams) (reconcile.Report, error) {
	doc, err := e.load(params.DefinitionFile)
	if err != nil {
		return reconcile.Report{}, err
	}
	if len(doc.Entries) == 0 {
		return reconcile.Report{}, fmt.Errorf("%w: %s", ErrNoEntries, params.DefinitionFile)
	}

	files, err := e.resolveFiles(params.Files, params.Directory, params.Recursive)
	if err != nil {
		return reconcile.Report{}, err
	}

	usages, err := e.scanUsages(files)
	if err != nil {
		return reconcile.Report{}, err
	}

	return reconcile.Report{
		DefinitionFile: params.DefinitionFile,
		ScannedFiles:   files,
		Result:         reconcile.Reconcile(doc.Entries, usages, e.format.FoldKey),
		Warnings:       doc.Warnings,
	}, nil
}
