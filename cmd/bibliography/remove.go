package main

import (
	"github.com/spf13/cobra"

	"github.com/adiepenbrock/latex-scripts/internal/printer"
	"github.com/adiepenbrock/latex-scripts/pkg/engine"
	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/reconcile"
)

var (
	removeFiles       []string
	removeDirectory   string
	removeNoRecursive bool
	removeDryRun      bool
	removeNoBackup    bool
	removeYes         bool
)

// removeOptions collects the removal flow settings so the clean command
// can reuse the flow with its own flags.
type removeOptions struct {
	files     []string
	directory string
	recursive bool
	dryRun    bool
	backup    bool
	yes       bool
}

func createRemoveCmd() *cobra.Command {
	removeCmd := &cobra.Command{
		Use:   "remove <bib-file>",
		Short: "Remove unused bibliography entries from the .bib file",
		Long: `Scan the LaTeX sources for citations and delete every bibliography
entry that is never cited. A backup of the bibliography is kept unless
--no-backup is given.

Examples:
  bibliography remove references.bib --dry-run
  bibliography remove references.bib
  bibliography remove references.bib --no-backup`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRemove(newPrinter(), newEngine(loadConfig()), args[0], removeOptions{
				files:     removeFiles,
				directory: removeDirectory,
				recursive: !removeNoRecursive,
				dryRun:    removeDryRun,
				backup:    !removeNoBackup,
				yes:       removeYes,
			})
		},
	}

	removeCmd.Flags().StringSliceVar(&removeFiles, "files", nil,
		"Specific LaTeX files to check (if not provided, searches directory)")
	removeCmd.Flags().StringVar(&removeDirectory, "directory", ".",
		"Directory to search for LaTeX files (default: current directory)")
	removeCmd.Flags().BoolVar(&removeNoRecursive, "no-recursive", false,
		"Do not search subdirectories recursively")
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false,
		"Show what would be removed without making changes")
	removeCmd.Flags().BoolVar(&removeNoBackup, "no-backup", false,
		"Do not create a backup file before removing entries")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false,
		"Remove without asking for confirmation")

	return removeCmd
}

// runRemove executes the removal flow, echoing the full usage check
// before anything is deleted.
func runRemove(p *printer.Printer, eng *engine.Engine, bibFile string, opts removeOptions) error {
	p.Title("LaTeX Bibliography Unused Entry Remover")
	report, err := eng.RemoveUnused(engine.RemoveParams{
		DefinitionFile: bibFile,
		Files:          opts.files,
		Directory:      opts.directory,
		Recursive:      opts.recursive,
		DryRun:         opts.dryRun,
		Backup:         opts.backup,
		OnReconciled: func(r reconcile.Report) {
			p.Title("LaTeX Bibliography Usage Checker")
			p.BibliographyScan(r)
			p.BibliographyResults(r)
		},
		Confirm: func(_ []entry.Entry) (bool, error) {
			if opts.yes {
				return true, nil
			}
			p.Blank()
			return eng.Prompt.PromptForConfirmation("Do you want to remove these entries?", false)
		},
	})
	if err != nil {
		return reportScanError(err, bibFile)
	}

	if len(report.Result.Unused) == 0 {
		p.Blank()
		p.Line("✅ No unused bibliography entries found!")
		return nil
	}
	if report.DryRun {
		p.DryRunNotice(bibFile, "entries")
		return nil
	}
	if report.Aborted {
		return nil
	}

	if report.BackupPath != "" {
		p.BackupCreated(report.BackupPath)
	}
	p.BibliographyRemoveOutcome(report)
	return nil
}
