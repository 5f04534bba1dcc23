// Package engine runs the definition-against-usage operations shared by
// the acronyms and bibliography tools. An Engine is parameterized by an
// entry format and a usage grammar; everything else about checking,
// sorting and removing is common.
package engine

import (
	"fmt"

	"github.com/adiepenbrock/latex-scripts/internal/base"
	"github.com/adiepenbrock/latex-scripts/pkg/discovery"
	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/usage"
)

// Engine binds one entry format and one usage grammar to the shared
// operations.
type Engine struct {
	*base.Base
	format  entry.Format
	scanner usage.Scanner
	disc    discovery.Discoverer
}

// Params contains parameters for creating a new Engine instance.
type Params struct {
	Base    *base.Base
	Format  entry.Format
	Grammar usage.Grammar
}

// New creates a new Engine instance.
func New(params Params) *Engine {
	return &Engine{
		Base:    params.Base,
		format:  params.Format,
		scanner: usage.NewScanner(params.Grammar),
		disc:    discovery.NewDiscoverer(params.Base.Config.Discovery),
	}
}

// load reads and extracts the definition file.
func (e *Engine) load(path string) (entry.Document, error) {
	if path == "" {
		return entry.Document{}, ErrEmptyPath
	}

	exists, err := e.FS.Exists(path)
	if err != nil {
		return entry.Document{}, fmt.Errorf("failed to access %s: %w", path, err)
	}
	if !exists {
		return entry.Document{}, fmt.Errorf("%w: %s", ErrDefinitionNotFound, path)
	}

	data, err := e.FS.ReadFile(path)
	if err != nil {
		return entry.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	e.VerbosePrint("Extracting entries from %s", path)
	return e.format.Extract(string(data)), nil
}

// resolveFiles returns the LaTeX files to scan: the explicit list when
// given, otherwise the discovery result for the directory.
func (e *Engine) resolveFiles(files []string, directory string, recursive bool) ([]string, error) {
	if len(files) > 0 {
		for _, f := range files {
			exists, err := e.FS.Exists(f)
			if err != nil {
				return nil, fmt.Errorf("failed to access %s: %w", f, err)
			}
			if !exists {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, f)
			}
		}
		return files, nil
	}

	if directory == "" {
		directory = "."
	}
	found, err := e.disc.Discover(directory, recursive)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, directory)
	}
	return found, nil
}

// scanUsages scans every file for references.
func (e *Engine) scanUsages(files []string) ([]usage.Usage, error) {
	var usages []usage.Usage
	for _, f := range files {
		data, err := e.FS.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		e.VerbosePrint("Scanning %s", f)
		usages = append(usages, e.scanner.Scan(f, string(data))...)
	}
	return usages, nil
}
