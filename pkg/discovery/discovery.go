// Package discovery finds the LaTeX source files a tool should scan.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/adiepenbrock/latex-scripts/pkg/config"
)

//go:generate mockgen -source=discovery.go -destination=mockdiscovery.gen.go -package=discovery

// Discoverer interface provides source file discovery.
type Discoverer interface {
	// Discover returns the files under root carrying one of the
	// configured extensions, in lexicographic path order. When recursive
	// is false only the top level of root is searched.
	Discover(root string, recursive bool) ([]string, error)
}

type realDiscoverer struct {
	cfg config.DiscoveryConfig
}

// NewDiscoverer creates a new Discoverer instance.
func NewDiscoverer(cfg config.DiscoveryConfig) Discoverer {
	return &realDiscoverer{cfg: cfg}
}

// Discover returns the files under root carrying one of the configured extensions.
func (d *realDiscoverer) Discover(root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	if !recursive {
		return d.globTopLevel(root)
	}
	return d.walk(root)
}

func (d *realDiscoverer) walk(root string) ([]string, error) {
	skip := make(map[string]bool, len(d.cfg.SkipDirs))
	for _, name := range d.cfg.SkipDirs {
		skip[name] = true
	}

	var gi *ignore.GitIgnore
	if d.cfg.Gitignore {
		gi = loadGitignore(root)
	}

	var results []string
	err := filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}

		name := entry.Name()
		if entry.IsDir() {
			if path == root {
				return nil
			}
			if skip[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if entry.Type()&os.ModeSymlink != 0 {
			return nil
		}
		if !d.matchesExtension(name) {
			return nil
		}

		if gi != nil {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil
			}
			if gi.MatchesPath(rel) {
				return nil
			}
		}

		results = append(results, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(results)
	return results, nil
}

func (d *realDiscoverer) globTopLevel(root string) ([]string, error) {
	var results []string
	for _, ext := range d.cfg.Extensions {
		matches, err := filepath.Glob(filepath.Join(root, "*"+ext))
		if err != nil {
			return nil, fmt.Errorf("failed to glob %s: %w", root, err)
		}
		for _, m := range matches {
			if strings.HasPrefix(filepath.Base(m), ".") {
				continue
			}
			results = append(results, m)
		}
	}

	sort.Strings(results)
	return results, nil
}

func (d *realDiscoverer) matchesExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, want := range d.cfg.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
