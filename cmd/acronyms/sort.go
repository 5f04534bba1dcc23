package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adiepenbrock/latex-scripts/pkg/engine"
)

var sortOutput string

func createSortCmd() *cobra.Command {
	sortCmd := &cobra.Command{
		Use:   "sort <input-file>",
		Short: "Sort acronym definitions alphabetically by abbreviation",
		Long: `Sort the \acro entries of a definition file alphabetically by their
displayed abbreviation, keeping all surrounding text in place.

Examples:
  acronyms sort acronyms.tex
  acronyms sort acronyms.tex --output sorted_acronyms.tex`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p := newPrinter()
			eng := newEngine(loadConfig())

			report, err := eng.Sort(engine.SortParams{File: args[0], Output: sortOutput})
			if err != nil {
				switch {
				case errors.Is(err, engine.ErrDefinitionNotFound):
					fmt.Fprintf(os.Stderr, "Error: File '%s' not found.\n", args[0])
					return errSilent
				case errors.Is(err, engine.ErrNoEntries):
					fmt.Fprintln(os.Stderr, "No acronym entries found in the file.")
					return errSilent
				}
				return err
			}

			p.Warnings(report.Warnings)
			p.AcronymsSorted(report)
			return nil
		},
	}

	sortCmd.Flags().StringVarP(&sortOutput, "output", "o", "",
		"Output file (if not provided, overwrites input file)")

	return sortCmd
}
