// Package main provides the command-line interface for the acronyms tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/adiepenbrock/latex-scripts/internal/base"
	"github.com/adiepenbrock/latex-scripts/internal/printer"
	"github.com/adiepenbrock/latex-scripts/pkg/acronyms"
	"github.com/adiepenbrock/latex-scripts/pkg/config"
	"github.com/adiepenbrock/latex-scripts/pkg/engine"
	"github.com/adiepenbrock/latex-scripts/pkg/fs"
	"github.com/adiepenbrock/latex-scripts/pkg/logger"
	"github.com/adiepenbrock/latex-scripts/pkg/prompt"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// errSilent marks a non-zero exit whose message is already printed.
var errSilent = errors.New("silent")

// loadConfig loads the configuration, falling back to the built-in
// defaults when no config file exists.
func loadConfig() config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.NewManager(path).GetConfigWithFallback()
	if err != nil {
		log.Fatalf("Invalid configuration at %s: %v", path, err)
	}
	return cfg
}

// newEngine wires an engine for the acronym format over the loaded
// configuration.
func newEngine(cfg config.Config) *engine.Engine {
	activeLogger := logger.NewDefaultLogger()
	if quiet {
		activeLogger = logger.NewNoopLogger()
	}

	b := base.NewBase(base.NewBaseParams{
		FS:      fs.NewFS(),
		Config:  cfg,
		Logger:  activeLogger,
		Prompt:  prompt.NewPrompt(),
		Verbose: verbose && !quiet,
	})

	return engine.New(engine.Params{
		Base:    b,
		Format:  acronyms.NewFormat(),
		Grammar: acronyms.NewGrammar(cfg.Acronyms.ExtraCommands...),
	})
}

// newPrinter returns the report printer honoring quiet mode.
func newPrinter() *printer.Printer {
	if quiet {
		return printer.New(io.Discard)
	}
	return printer.New(os.Stdout)
}

// reportScanError prints the message for a degenerate scan input and
// converts the error into a silent non-zero exit.
func reportScanError(err error, acronymFile string) error {
	switch {
	case errors.Is(err, engine.ErrDefinitionNotFound):
		fmt.Fprintf(os.Stderr, "Error: Acronym file '%s' not found.\n", acronymFile)
		fmt.Fprintln(os.Stderr, "No acronym definitions found. Exiting.")
		return errSilent
	case errors.Is(err, engine.ErrNoEntries):
		fmt.Fprintln(os.Stderr, "No acronym definitions found. Exiting.")
		return errSilent
	case errors.Is(err, engine.ErrNoFiles):
		fmt.Fprintln(os.Stderr, "No LaTeX files found to check.")
		return errSilent
	default:
		return err
	}
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "acronyms",
		Short: "LaTeX Acronym Management Tool - Sort, check, and remove acronym definitions",
		Long: `Maintain the \acro definition list of a LaTeX project: sort it ` +
			`alphabetically, check which definitions are unused or missing, and ` +
			`remove the unused ones.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createSortCmd(), createCheckCmd(), createRemoveCmd())

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
