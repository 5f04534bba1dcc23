package main

import (
	"github.com/spf13/cobra"

	"github.com/adiepenbrock/latex-scripts/pkg/engine"
)

var (
	checkFiles       []string
	checkDirectory   string
	checkNoRecursive bool
)

func createCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check <bib-file>",
		Short: "Check bibliography usage and find unused/missing entries",
		Long: `Check every citation in the LaTeX sources against the bibliography
and report citations without a bibliography entry and entries that are
never cited. Exits non-zero when either is found.

Examples:
  bibliography check references.bib
  bibliography check references.bib --directory /path/to/latex/project
  bibliography check references.bib --files chapter1.tex chapter2.tex`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p := newPrinter()
			eng := newEngine(loadConfig())

			p.Title("LaTeX Bibliography Usage Checker")
			report, err := eng.Check(engine.CheckParams{
				DefinitionFile: args[0],
				Files:          checkFiles,
				Directory:      checkDirectory,
				Recursive:      !checkNoRecursive,
			})
			if err != nil {
				return reportScanError(err, args[0])
			}

			p.BibliographyScan(report)
			p.BibliographyResults(report)

			if !report.Clean() {
				return errSilent
			}
			return nil
		},
	}

	checkCmd.Flags().StringSliceVar(&checkFiles, "files", nil,
		"Specific LaTeX files to check (if not provided, searches directory)")
	checkCmd.Flags().StringVar(&checkDirectory, "directory", ".",
		"Directory to search for LaTeX files (default: current directory)")
	checkCmd.Flags().BoolVar(&checkNoRecursive, "no-recursive", false,
		"Do not search subdirectories recursively")

	return checkCmd
}
