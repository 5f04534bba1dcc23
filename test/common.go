//go:build e2e

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adiepenbrock/latex-scripts/internal/base"
	"github.com/adiepenbrock/latex-scripts/pkg/acronyms"
	"github.com/adiepenbrock/latex-scripts/pkg/bibtex"
	"github.com/adiepenbrock/latex-scripts/pkg/config"
	"github.com/adiepenbrock/latex-scripts/pkg/engine"
	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/fs"
	"github.com/adiepenbrock/latex-scripts/pkg/logger"
	"github.com/adiepenbrock/latex-scripts/pkg/prompt"
	"github.com/adiepenbrock/latex-scripts/pkg/usage"
	"github.com/stretchr/testify/require"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir      string
	DocsDir      string
	AcronymsPath string
	BibPath      string
}

// setupTestEnvironment creates a temporary test environment
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "latex-scripts-e2e-test-*")
	require.NoError(t, err)

	docsDir := filepath.Join(tempDir, "docs")
	require.NoError(t, os.MkdirAll(docsDir, 0755))

	return &TestSetup{
		TempDir:      tempDir,
		DocsDir:      docsDir,
		AcronymsPath: filepath.Join(tempDir, "acronyms.tex"),
		BibPath:      filepath.Join(tempDir, "references.bib"),
	}
}

// cleanupTestEnvironment removes the temporary test environment
func cleanupTestEnvironment(t *testing.T, setup *TestSetup) {
	t.Helper()
	if setup != nil && setup.TempDir != "" {
		require.NoError(t, os.RemoveAll(setup.TempDir))
	}
}

// newEngine creates an engine against the real filesystem with the
// default configuration. mutate may adjust the configuration first.
func newEngine(t *testing.T, format entry.Format, grammar usage.Grammar, mutate func(*config.Config)) *engine.Engine {
	t.Helper()

	cfg := config.NewManager("").DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	return engine.New(engine.Params{
		Base: base.NewBase(base.NewBaseParams{
			FS:     fs.NewFS(),
			Config: cfg,
			Logger: logger.NewNoopLogger(),
			Prompt: prompt.NewPrompt(),
		}),
		Format:  format,
		Grammar: grammar,
	})
}

func newAcronymsEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return newEngine(t, acronyms.NewFormat(), acronyms.NewGrammar(), nil)
}

func newBibliographyEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return newEngine(t, bibtex.NewFormat(), bibtex.NewGrammar(), nil)
}

// writeFile writes content to path, creating parent directories as
// needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// readFile returns the content of path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// fileExists reports whether path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// entryKeys returns the keys of entries in order.
func entryKeys(entries []entry.Entry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

const acronymDefinitions = `\acro{api}[API]{Application Programming Interface}
\acro{cpu}[CPU]{Central Processing Unit}
\acro{gpu}[GPU]{Graphics Processing Unit}
\acro{xml}[XML]{Extensible Markup Language}
`

const introDoc = `\section{Introduction}
The \ac{api} surface is small and the \ac{cpu} load is modest.
We still have to document \ac{json} output somewhere.
`

const implDoc = `\section{Implementation}
Rendering happens on the \acf{gpu}, orchestrated through the \ac{api}.
`

// writeAcronymProject writes the default acronym fixture: four
// definitions, two chapters, one undefined reference (json) and one
// unused definition (xml).
func writeAcronymProject(t *testing.T, setup *TestSetup) {
	t.Helper()
	writeFile(t, setup.AcronymsPath, acronymDefinitions)
	writeFile(t, filepath.Join(setup.DocsDir, "intro.tex"), introDoc)
	writeFile(t, filepath.Join(setup.DocsDir, "chapters", "impl.tex"), implDoc)
}

const bibliographyDefinitions = `@article{lamport1994,
  author = {Leslie Lamport},
  title = {LaTeX: A Document Preparation System},
  year = {1994}
}

@book{knuth1984,
  author = {Donald E. Knuth},
  title = {The TeXbook},
  year = {1984}
}

@misc{unused2020,
  title = {Never Cited},
  year = {2020}
}
`

const paperDoc = `\section{Background}
Typesetting follows \cite{lamport1994} and \citep{knuth1984,missing2001}.
`

// writeBibliographyProject writes the default bibliography fixture:
// three entries, one paper, one uncited entry (unused2020) and one
// citation without an entry (missing2001).
func writeBibliographyProject(t *testing.T, setup *TestSetup) {
	t.Helper()
	writeFile(t, setup.BibPath, bibliographyDefinitions)
	writeFile(t, filepath.Join(setup.DocsDir, "paper.tex"), paperDoc)
}
