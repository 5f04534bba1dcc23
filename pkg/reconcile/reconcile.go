// Package reconcile classifies defined against referenced keys: which
// references lack a definition, which definitions are never referenced,
// and which keys appear on both sides.
package reconcile

import (
	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/usage"
)

// A MissingKey is a referenced key with no definition, carrying every
// place it is referenced from. Key keeps the spelling of the first
// reference seen.
type MissingKey struct {
	Key    string
	Usages []usage.Usage
}

// A Result classifies every defined and referenced key. Missing keys
// come in discovery order (file order, then line order), Unused and
// Matched in definition-file order.
type Result struct {
	Missing []MissingKey
	Unused  []entry.Entry
	Matched []string
}

// Reconcile is a pure set difference over the two sides. fold
// normalizes keys for comparison and usages must already be in
// discovery order; the result is deterministic given its inputs.
func Reconcile(defined []entry.Entry, usages []usage.Usage, fold func(string) string) Result {
	definedSet := make(map[string]bool, len(defined))
	for _, e := range defined {
		definedSet[fold(e.Key)] = true
	}

	var res Result
	used := make(map[string]bool)
	missingIdx := make(map[string]int)
	for _, u := range usages {
		k := fold(u.Key)
		used[k] = true
		if definedSet[k] {
			continue
		}
		i, ok := missingIdx[k]
		if !ok {
			i = len(res.Missing)
			missingIdx[k] = i
			res.Missing = append(res.Missing, MissingKey{Key: u.Key})
		}
		res.Missing[i].Usages = append(res.Missing[i].Usages, u)
	}

	for _, e := range defined {
		if used[fold(e.Key)] {
			res.Matched = append(res.Matched, e.Key)
		} else {
			res.Unused = append(res.Unused, e)
		}
	}
	return res
}
