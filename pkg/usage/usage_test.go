//go:build unit

package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func acronymGrammar() Grammar {
	return NewGrammar([]string{"ac", "acp", "acs", "acl", "acf"}, nil)
}

func citeGrammar() Grammar {
	return NewGrammar(nil, []string{"cite", "citep", "citet"})
}

func TestScan_SingleKey(t *testing.T) {
	s := NewScanner(acronymGrammar())

	usages := s.Scan("main.tex", `We use an \ac{api} here.`)

	assert.Equal(t, []Usage{{Key: "api", Command: "ac", File: "main.tex", Line: 1}}, usages)
}

func TestScan_MaximalMunch(t *testing.T) {
	s := NewScanner(acronymGrammar())

	// \acp must not be read as \ac followed by "p".
	usages := s.Scan("main.tex", `Many \acp{api} exist.`)
	assert.Equal(t, []Usage{{Key: "api", Command: "acp", File: "main.tex", Line: 1}}, usages)

	// \acused is not a grammar command and must not match its \ac prefix.
	usages = s.Scan("main.tex", `\acused{api}`)
	assert.Empty(t, usages)
}

func TestScan_RequiresBrace(t *testing.T) {
	s := NewScanner(acronymGrammar())

	assert.Empty(t, s.Scan("main.tex", `\ac [short]{api}`))
	assert.Empty(t, s.Scan("main.tex", `the word ac{api} without backslash`))
}

func TestScan_Comments(t *testing.T) {
	s := NewScanner(acronymGrammar())

	text := `\ac{used} % \ac{commented}
% \ac{alsocommented}
50\% of \ac{cpu} time`

	usages := s.Scan("main.tex", text)

	assert.Equal(t, []Usage{
		{Key: "used", Command: "ac", File: "main.tex", Line: 1},
		{Key: "cpu", Command: "ac", File: "main.tex", Line: 3},
	}, usages)
}

func TestScan_DoubledBackslash(t *testing.T) {
	s := NewScanner(citeGrammar())

	// \\cite is a line break followed by plain text.
	assert.Empty(t, s.Scan("main.tex", `end of line\\cite{x}`))
	assert.Len(t, s.Scan("main.tex", `end of line\\ \cite{x}`), 1)
}

func TestScan_MultiKey(t *testing.T) {
	s := NewScanner(citeGrammar())

	usages := s.Scan("refs.tex", `As shown \citep{smith2020, jones2021,lee2022}.`)

	assert.Equal(t, []Usage{
		{Key: "smith2020", Command: "citep", File: "refs.tex", Line: 1},
		{Key: "jones2021", Command: "citep", File: "refs.tex", Line: 1},
		{Key: "lee2022", Command: "citep", File: "refs.tex", Line: 1},
	}, usages)
}

func TestScan_SingleKeyKeepsCommas(t *testing.T) {
	// Acronym commands take their whole argument as one key.
	s := NewScanner(acronymGrammar())

	usages := s.Scan("main.tex", `\ac{a,b}`)

	assert.Equal(t, []Usage{{Key: "a,b", Command: "ac", File: "main.tex", Line: 1}}, usages)
}

func TestScan_LineNumbers(t *testing.T) {
	s := NewScanner(citeGrammar())

	text := "line one\n\\cite{a}\n\ntext \\cite{b,\n  c} more\n\\cite{d}\n"

	usages := s.Scan("doc.tex", text)

	assert.Equal(t, []Usage{
		{Key: "a", Command: "cite", File: "doc.tex", Line: 2},
		{Key: "b", Command: "cite", File: "doc.tex", Line: 4},
		{Key: "c", Command: "cite", File: "doc.tex", Line: 4},
		{Key: "d", Command: "cite", File: "doc.tex", Line: 6},
	}, usages)
}

func TestScan_EmptyAndUnbalancedArguments(t *testing.T) {
	s := NewScanner(acronymGrammar())

	assert.Empty(t, s.Scan("main.tex", `\ac{}`))
	assert.Empty(t, s.Scan("main.tex", `\ac{api`))
	assert.Empty(t, s.Scan("main.tex", ``))
}

func TestGrammar(t *testing.T) {
	g := NewGrammar([]string{"ac"}, []string{"cite"})

	assert.True(t, g.Has("ac"))
	assert.True(t, g.Has("cite"))
	assert.False(t, g.Has("frac"))
	assert.False(t, g.MultiKey("ac"))
	assert.True(t, g.MultiKey("cite"))
	assert.Equal(t, 2, g.Commands())
}
