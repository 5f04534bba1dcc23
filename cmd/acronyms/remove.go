package main

import (
	"github.com/spf13/cobra"

	"github.com/adiepenbrock/latex-scripts/pkg/engine"
	"github.com/adiepenbrock/latex-scripts/pkg/entry"
)

var (
	removeFiles       []string
	removeDirectory   string
	removeNoRecursive bool
	removeDryRun      bool
	removeNoBackup    bool
	removeYes         bool
)

func createRemoveCmd() *cobra.Command {
	removeCmd := &cobra.Command{
		Use:   "remove <acronym-file>",
		Short: "Remove unused acronym definitions from the acronyms file",
		Long: `Scan the LaTeX sources for acronym references and delete every
definition that is never used. A backup of the definition file is kept
unless --no-backup is given.

Examples:
  acronyms remove acronyms.tex --dry-run
  acronyms remove acronyms.tex
  acronyms remove acronyms.tex --no-backup
  acronyms remove acronyms.tex --files chapter1.tex chapter2.tex`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p := newPrinter()
			eng := newEngine(loadConfig())

			p.Title("LaTeX Acronym Unused Definition Remover")
			report, err := eng.RemoveUnused(engine.RemoveParams{
				DefinitionFile: args[0],
				Files:          removeFiles,
				Directory:      removeDirectory,
				Recursive:      !removeNoRecursive,
				DryRun:         removeDryRun,
				Backup:         !removeNoBackup,
				OnReconciled:   p.AcronymsScan,
				Confirm: func(unused []entry.Entry) (bool, error) {
					p.AcronymsUnusedFound(unused)
					if removeYes {
						return true, nil
					}
					p.Blank()
					return eng.Prompt.PromptForConfirmation("Do you want to remove these definitions?", false)
				},
			})
			if err != nil {
				return reportScanError(err, args[0])
			}

			if len(report.Result.Unused) == 0 {
				p.Blank()
				p.Line("✅ No unused acronym definitions found!")
				return nil
			}
			if report.DryRun {
				p.AcronymsUnusedFound(report.Result.Unused)
				p.DryRunNotice(args[0], "definitions")
				return nil
			}
			if report.Aborted {
				return nil
			}

			if report.BackupPath != "" {
				p.BackupCreated(report.BackupPath)
			}
			p.AcronymsRemoveOutcome(report)
			return nil
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
		"Do not create a backup file before removing definitions")
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false,
		"Remove without asking for confirmation")

	return removeCmd
}
