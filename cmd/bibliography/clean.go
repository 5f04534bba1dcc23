package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	cleanFiles          []string
	cleanDirectory      string
	cleanNoRecursive    bool
	cleanNoRemoveUnused bool
	cleanNoVerifyURLs   bool
	cleanNoBackup       bool
	cleanTimeout        int
	cleanYes            bool
)

func createCleanCmd() *cobra.Command {
	cleanCmd := &cobra.Command{
		Use:   "clean <bib-file>",
		Short: "Remove unused entries and verify URLs in one pass",
		Long: `Run the full bibliography cleanup: remove entries no LaTeX file
cites, then verify that the remaining URLs still answer and stamp their
access dates. URL verification is skipped when the removal step fails.

Examples:
  bibliography clean references.bib
  bibliography clean references.bib --no-verify-urls
  bibliography clean references.bib --no-backup --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter()
			cfg := loadConfig()
			eng := newEngine(cfg)

			success := true

			if !cleanNoRemoveUnused {
				p.Line("Step 1: Removing unused bibliography entries...")
				err := runRemove(p, eng, args[0], removeOptions{
					files:     cleanFiles,
					directory: cleanDirectory,
					recursive: !cleanNoRecursive,
					backup:    !cleanNoBackup,
					yes:       cleanYes,
				})
				if err != nil {
					if !errors.Is(err, errSilent) {
						fmt.Fprintln(os.Stderr, "Error:", err)
					}
					success = false
				}
				p.Blank()
			}

			if !cleanNoVerifyURLs && success {
				p.Line("Step 2: Verifying URL availability...")
				opts := verifyOptions{
					updateDates: true,
					backup:      !cleanNoBackup,
					timeout:     cfg.URLCheck.Timeout(),
					cachePath:   cfg.URLCheck.CachePath,
				}
				if cmd.Flags().Changed("timeout") {
					opts.timeout = time.Duration(cleanTimeout) * time.Second
				}
				err := runVerify(cmd.Context(), p, eng, cfg, args[0], opts)
				if err != nil {
					if !errors.Is(err, errSilent) {
						fmt.Fprintln(os.Stderr, "Error:", err)
					}
					success = false
				}
			}

			p.Blank()
			if !success {
				p.Line("❌ Bibliography cleanup completed with errors.")
				return errSilent
			}
			p.Line("🎉 Bibliography cleanup completed successfully!")
			return nil
		},
	}

	cleanCmd.Flags().StringSliceVar(&cleanFiles, "files", nil,
		"Specific LaTeX files to check (if not provided, searches directory)")
	cleanCmd.Flags().StringVar(&cleanDirectory, "directory", ".",
		"Directory to search for LaTeX files (default: current directory)")
	cleanCmd.Flags().BoolVar(&cleanNoRecursive, "no-recursive", false,
		"Do not search subdirectories recursively")
	cleanCmd.Flags().BoolVar(&cleanNoRemoveUnused, "no-remove-unused", false,
		"Skip removing unused entries")
	cleanCmd.Flags().BoolVar(&cleanNoVerifyURLs, "no-verify-urls", false,
		"Skip URL verification")
	cleanCmd.Flags().BoolVar(&cleanNoBackup, "no-backup", false,
		"Do not create backup files")
	cleanCmd.Flags().IntVar(&cleanTimeout, "timeout", 10,
		"Timeout for URL checks in seconds (default: 10)")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false,
		"Remove without asking for confirmation")

	return cleanCmd
}
