// Package usage scans LaTeX source text for reference commands and
// records every key they mention.
package usage

import (
	"strings"

	"github.com/adiepenbrock/latex-scripts/pkg/latex"
)

//go:generate mockgen -source=usage.go -destination=mockusage.gen.go -package=usage

// A Usage is one occurrence of a key inside a reference command.
type Usage struct {
	Key     string
	Command string
	File    string
	Line    int
}

// Scanner extracts usages from LaTeX source text.
type Scanner interface {
	// Scan returns every usage found in text, in document order. The
	// file name is recorded on each usage for reporting.
	Scan(file, text string) []Usage
}

type realScanner struct {
	grammar Grammar
}

// NewScanner creates a scanner for the given grammar.
func NewScanner(g Grammar) Scanner {
	return &realScanner{grammar: g}
}

// Scan walks the comment-stripped text once. A reference starts at a
// backslash followed by the longest run of letters that names a grammar
// command, and counts only when an opening brace follows the name
// directly. A doubled backslash is a line break, not a command start.
func (s *realScanner) Scan(file, text string) []Usage {
	clean := latex.Shadow(text)

	var usages []Usage
	line := 1
	i := 0
	for i < len(clean) {
		switch clean[i] {
		case '\n':
			line++
			i++
		case '\\':
			if i+1 < len(clean) && clean[i+1] == '\\' {
				i += 2
				continue
			}
			j := i + 1
			for j < len(clean) && isLetter(clean[j]) {
				j++
			}
			name := clean[i+1 : j]
			if !s.grammar.Has(name) || j >= len(clean) || clean[j] != '{' {
				i = max(j, i+1)
				continue
			}
			end, ok := latex.MatchBrace(clean, j)
			if !ok {
				i = j + 1
				continue
			}
			usages = append(usages, s.argUsages(name, clean[j+1:end], file, line)...)
			line += strings.Count(clean[i:end+1], "\n")
			i = end + 1
		default:
			i++
		}
	}
	return usages
}

func (s *realScanner) argUsages(name, arg, file string, line int) []Usage {
	if s.grammar.MultiKey(name) {
		keys := latex.SplitKeys(arg)
		usages := make([]Usage, 0, len(keys))
		for _, key := range keys {
			usages = append(usages, Usage{Key: key, Command: name, File: file, Line: line})
		}
		return usages
	}
	key := strings.TrimSpace(arg)
	if key == "" {
		return nil
	}
	return []Usage{{Key: key, Command: name, File: file, Line: line}}
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
