package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adiepenbrock/latex-scripts/internal/printer"
	"github.com/adiepenbrock/latex-scripts/pkg/config"
	"github.com/adiepenbrock/latex-scripts/pkg/engine"
	"github.com/adiepenbrock/latex-scripts/pkg/urlcache"
	"github.com/adiepenbrock/latex-scripts/pkg/urlcheck"
)

var (
	verifyNoUpdateDates bool
	verifyNoBackup      bool
	verifyTimeout       int
	verifyCachePath     string
)

// verifyOptions collects the verification flow settings so the clean
// command can reuse the flow with its own flags.
type verifyOptions struct {
	updateDates bool
	backup      bool
	timeout     time.Duration
	cachePath   string
}

func createVerifyCmd() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify <bib-file>",
		Short: "Verify URL availability and update access dates",
		Long: `Check that every bibliography URL still answers and stamp the
current access date into the note field of the entries whose URL does.
Check results are cached, so repeated runs only re-check stale URLs.

Examples:
  bibliography verify references.bib
  bibliography verify references.bib --no-update-dates
  bibliography verify references.bib --timeout 5
  bibliography verify references.bib --cache ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			opts := verifyOptions{
				updateDates: !verifyNoUpdateDates,
				backup:      !verifyNoBackup,
				timeout:     cfg.URLCheck.Timeout(),
				cachePath:   cfg.URLCheck.CachePath,
			}
			if cmd.Flags().Changed("timeout") {
				opts.timeout = time.Duration(verifyTimeout) * time.Second
			}
			if cmd.Flags().Changed("cache") {
				opts.cachePath = verifyCachePath
			}

			return runVerify(cmd.Context(), newPrinter(), newEngine(cfg), cfg, args[0], opts)
		},
	}

	verifyCmd.Flags().BoolVar(&verifyNoUpdateDates, "no-update-dates", false,
		"Do not update access dates in note fields")
	verifyCmd.Flags().BoolVar(&verifyNoBackup, "no-backup", false,
		"Do not create a backup file before updating dates")
	verifyCmd.Flags().IntVar(&verifyTimeout, "timeout", 10,
		"Timeout for URL checks in seconds (default: 10)")
	verifyCmd.Flags().StringVar(&verifyCachePath, "cache", "",
		"URL check cache file (empty disables the persistent cache)")

	return verifyCmd
}

// runVerify executes the URL verification flow and prints its report.
func runVerify(ctx context.Context, p *printer.Printer, eng *engine.Engine,
	cfg config.Config, bibFile string, opts verifyOptions) error {
	checker, err := urlcache.New(
		urlcheck.NewChecker(opts.timeout, cfg.URLCheck.UserAgent),
		opts.cachePath,
		cfg.URLCheck.CacheTTL(),
	)
	if err != nil {
		return fmt.Errorf("failed to open URL cache: %w", err)
	}
	defer checker.Close()

	p.Title("LaTeX Bibliography URL Verifier")
	report, err := eng.Verify(ctx, engine.VerifyParams{
		File:         bibFile,
		UpdateDates:  opts.updateDates,
		Backup:       opts.backup,
		Checker:      checker,
		OnTargets:    p.URLFound,
		OnCheckStart: p.URLCheckStart,
		OnCheckDone: func(_ string, res urlcheck.Result) {
			p.URLCheckDone(res)
		},
	})
	if err != nil {
		return reportScanError(err, bibFile)
	}

	if report.WithURLs == 0 {
		p.Line("No URLs found in bibliography entries.")
		return nil
	}

	p.Warnings(report.Warnings)
	p.URLSummary(report)
	if report.BackupPath != "" {
		p.BackupCreated(report.BackupPath)
	}
	if opts.updateDates && report.Available > 0 {
		p.DatesUpdated(report)
	}
	return nil
}
