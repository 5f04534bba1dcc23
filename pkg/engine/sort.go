package engine

import (
	"fmt"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/rewrite"
)

// SortParams contains parameters for a Sort run.
type SortParams struct {
	File   string
	Output string // empty writes back to File
}

// SortReport describes the outcome of a Sort run.
type SortReport struct {
	File     string
	Output   string
	Entries  []entry.Entry // new order
	Changed  bool
	Warnings []entry.Warning
}

// Sort rewrites the definition file with its entries in sort-key order.
// Nothing is written when the file is already sorted and no separate
// output path was requested.
func (e *Engine) Sort(params SortParams) (SortReport, error) {
	doc, err := e.load(params.File)
	if err != nil {
		return SortReport{}, err
	}
	if len(doc.Entries) == 0 {
		return SortReport{}, fmt.Errorf("%w: %s", ErrNoEntries, params.File)
	}

	policy, err := rewrite.ParsePolicy(e.Config.Sort.Comments)
	if err != nil {
		return SortReport{}, err
	}

	sorted, order := rewrite.Sort(doc, e.format, policy)
	output := params.Output
	if output == "" {
		output = params.File
	}

	report := SortReport{
		File:     params.File,
		Output:   output,
		Entries:  order,
		Changed:  sorted != doc.Text(),
		Warnings: doc.Warnings,
	}

	if report.Changed || output != params.File {
		if err := e.FS.WriteFileAtomic(output, []byte(sorted), 0644); err != nil {
			return SortReport{}, fmt.Errorf("failed to write %s: %w", output, err)
		}
	}
	return report, nil
}
