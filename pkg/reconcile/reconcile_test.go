//go:build unit

package reconcile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/usage"
)

func identity(s string) string { return s }

func defs(keys ...string) []entry.Entry {
	entries := make([]entry.Entry, len(keys))
	for i, k := range keys {
		entries[i] = entry.Entry{Key: k}
	}
	return entries
}

func TestReconcileAcronymScenario(t *testing.T) {
	defined := defs("api", "cpu", "xml")
	usages := []usage.Usage{
		{Key: "api", Command: "ac", File: "main.tex", Line: 3},
		{Key: "json", Command: "ac", File: "main.tex", Line: 5},
	}

	res := Reconcile(defined, usages, strings.ToLower)

	require.Len(t, res.Missing, 1)
	assert.Equal(t, "json", res.Missing[0].Key)
	require.Len(t, res.Missing[0].Usages, 1)
	assert.Equal(t, "main.tex", res.Missing[0].Usages[0].File)
	assert.Equal(t, 5, res.Missing[0].Usages[0].Line)

	require.Len(t, res.Unused, 2)
	assert.Equal(t, "cpu", res.Unused[0].Key)
	assert.Equal(t, "xml", res.Unused[1].Key)

	assert.Equal(t, []string{"api"}, res.Matched)
}

func TestReconcileBibliographyScenario(t *testing.T) {
	defined := defs("key1", "key2")
	usages := []usage.Usage{
		{Key: "key1", Command: "citep", File: "ch1.tex", Line: 10},
		{Key: "key3", Command: "citep", File: "ch1.tex", Line: 10},
	}

	res := Reconcile(defined, usages, identity)

	require.Len(t, res.Missing, 1)
	assert.Equal(t, "key3", res.Missing[0].Key)
	require.Len(t, res.Unused, 1)
	assert.Equal(t, "key2", res.Unused[0].Key)
	assert.Equal(t, []string{"key1"}, res.Matched)
}

func TestReconcileFoldControlsMatching(t *testing.T) {
	defined := defs("API")
	usages := []usage.Usage{{Key: "api", File: "a.tex", Line: 1}}

	folded := Reconcile(defined, usages, strings.ToLower)
	assert.Empty(t, folded.Missing)
	assert.Empty(t, folded.Unused)
	assert.Equal(t, []string{"API"}, folded.Matched)

	exact := Reconcile(defined, usages, identity)
	require.Len(t, exact.Missing, 1)
	assert.Equal(t, "api", exact.Missing[0].Key)
	require.Len(t, exact.Unused, 1)
	assert.Equal(t, "API", exact.Unused[0].Key)
}

func TestReconcileAggregatesMissingUsages(t *testing.T) {
	usages := []usage.Usage{
		{Key: "GPU", File: "a.tex", Line: 2},
		{Key: "net", File: "a.tex", Line: 4},
		{Key: "gpu", File: "b.tex", Line: 1},
	}

	res := Reconcile(nil, usages, strings.ToLower)

	require.Len(t, res.Missing, 2)
	assert.Equal(t, "GPU", res.Missing[0].Key, "first seen spelling wins")
	require.Len(t, res.Missing[0].Usages, 2)
	assert.Equal(t, "a.tex", res.Missing[0].Usages[0].File)
	assert.Equal(t, "b.tex", res.Missing[0].Usages[1].File)
	assert.Equal(t, "net", res.Missing[1].Key)
}

func TestReconcileEmptyInputs(t *testing.T) {
	res := Reconcile(nil, nil, identity)
	assert.Empty(t, res.Missing)
	assert.Empty(t, res.Unused)
	assert.Empty(t, res.Matched)

	res = Reconcile(defs("a", "b"), nil, identity)
	assert.Empty(t, res.Missing)
	assert.Len(t, res.Unused, 2)
	assert.Empty(t, res.Matched)
}

func TestReconcilePartitionsDefinitions(t *testing.T) {
	defined := defs("a", "b", "c", "d")
	usages := []usage.Usage{
		{Key: "b", File: "x.tex", Line: 1},
		{Key: "d", File: "x.tex", Line: 2},
		{Key: "e", File: "x.tex", Line: 3},
		{Key: "b", File: "y.tex", Line: 1},
	}

	res := Reconcile(defined, usages, identity)

	// Every definition lands in exactly one of Matched or Unused.
	assert.Equal(t, len(defined), len(res.Matched)+len(res.Unused))
	seen := make(map[string]bool)
	for _, k := range res.Matched {
		seen[k] = true
	}
	for _, e := range res.Unused {
		assert.False(t, seen[e.Key])
		seen[e.Key] = true
	}
	for _, e := range defined {
		assert.True(t, seen[e.Key])
	}

	// Every missing key is referenced and undefined.
	for _, m := range res.Missing {
		assert.NotContains(t, []string{"a", "b", "c", "d"}, m.Key)
		assert.NotEmpty(t, m.Usages)
	}
}

func TestReportCounts(t *testing.T) {
	rep := Report{
		DefinitionFile: "acronyms.tex",
		ScannedFiles:   []string{"main.tex"},
		Result: Result{
			Missing: []MissingKey{{Key: "json"}},
			Unused:  defs("cpu", "xml"),
			Matched: []string{"api"},
		},
	}

	assert.Equal(t, 3, rep.DefinedCount())
	assert.Equal(t, 2, rep.UsedCount())
	assert.False(t, rep.Clean())

	assert.True(t, Report{}.Clean())
}
