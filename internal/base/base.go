// Package base provides common functionality for the tool components.
package base

import (
	"fmt"

	"github.com/adiepenbrock/latex-scripts/pkg/config"
	"github.com/adiepenbrock/latex-scripts/pkg/fs"
	"github.com/adiepenbrock/latex-scripts/pkg/logger"
	"github.com/adiepenbrock/latex-scripts/pkg/prompt"
)

// Base carries the collaborators every tool component needs.
type Base struct {
	FS      fs.FS
	Config  config.Config
	Logger  logger.Logger
	Prompt  prompt.Prompter
	verbose bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	FS      fs.FS
	Config  config.Config
	Logger  logger.Logger
	Prompt  prompt.Prompter
	Verbose bool
}

// NewBase creates a new Base instance.
func NewBase(params NewBaseParams) *Base {
	return &Base{
		FS:      params.FS,
		Config:  params.Config,
		Logger:  params.Logger,
		Prompt:  params.Prompt,
		verbose: params.Verbose,
	}
}

// VerbosePrint prints a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (b *Base) IsVerbose() bool {
	return b.verbose
}
