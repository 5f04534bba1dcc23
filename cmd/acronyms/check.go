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
		Use:   "check <acronym-file>",
		Short: "Check LaTeX files for acronym usage and find missing/unused definitions",
		Long: `Check every acronym reference in the LaTeX sources against the
definition file and report acronyms that are used but never defined, and
definitions that are never used.

Examples:
  acronyms check acronyms.tex
  acronyms check acronyms.tex --directory /path/to/latex/project
  acronyms check acronyms.tex --files chapter1.tex chapter2.tex
  acronyms check acronyms.tex --no-recursive`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p := newPrinter()
			eng := newEngine(loadConfig())

			p.Title("LaTeX Acronym Usage Checker")
			report, err := eng.Check(engine.CheckParams{
				DefinitionFile: args[0],
				Files:          checkFiles,
				Directory:      checkDirectory,
				Recursive:      !checkNoRecursive,
			})
			if err != nil {
				return reportScanError(err, args[0])
			}

			p.AcronymsScan(report)
			p.AcronymsResults(report)
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
