//go:build e2e

package test

import (
	"path/filepath"
	"testing"

	"github.com/adiepenbrock/latex-scripts/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBibliographyUsage(t *testing.T) {
	setup := setupTestEnvironment(t)
	defer cleanupTestEnvironment(t, setup)

	writeBibliographyProject(t, setup)
	eng := newBibliographyEngine(t)

	report, err := eng.Check(engine.CheckParams{
		DefinitionFile: setup.BibPath,
		Directory:      setup.DocsDir,
		Recursive:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.DefinedCount())
	assert.Equal(t, 3, report.UsedCount())

	// missing2001 is cited in the multi-key \citep but has no entry.
	require.Len(t, report.Result.Missing, 1)
	missing := report.Result.Missing[0]
	assert.Equal(t, "missing2001", missing.Key)
	require.Len(t, missing.Usages, 1)
	assert.Equal(t, filepath.Join(setup.DocsDir, "paper.tex"), missing.Usages[0].File)
	assert.Equal(t, 2, missing.Usages[0].Line)

	assert.Equal(t, []string{"unused2020"}, entryKeys(report.Result.Unused))
	assert.Equal(t, []string{"lamport1994", "knuth1984"}, report.Result.Matched)
}

func TestCheckBibliographyKeysAreCaseSensitive(t *testing.T) {
	setup := setupTestEnvironment(t)
	defer cleanupTestEnvironment(t, setup)

	writeBibliographyProject(t, setup)
	writeFile(t, filepath.Join(setup.DocsDir, "related.tex"), `See also \cite{Lamport1994}.`+"\n")

	eng := newBibliographyEngine(t)
	report, err := eng.Check(engine.CheckParams{
		DefinitionFile: setup.BibPath,
		Directory:      setup.DocsDir,
		Recursive:      true,
	})
	require.NoError(t, err)

	// BibTeX keys do not fold, so the capitalized citation is a
	// different, undefined key.
	var missingKeys []string
	for _, m := range report.Result.Missing {
		missingKeys = append(missingKeys, m.Key)
	}
	assert.Contains(t, missingKeys, "Lamport1994")
	assert.Contains(t, report.Result.Matched, "lamport1994")
}
