package bibtex

import "github.com/adiepenbrock/latex-scripts/pkg/usage"

// defaultCommands lists the citation commands recognized out of the
// box: plain LaTeX, natbib and biblatex variants.
var defaultCommands = []string{
	"cite", "citep", "citet", "citealt", "citealp",
	"citeauthor", "citeyear", "citeyearpar",
	"Cite", "Citep", "Citet",
	"autocite", "textcite", "parencite", "footcite", "fullcite",
}

// NewGrammar returns the usage grammar for citations. Extra command
// names extend the default set. Every citation command accepts a
// comma-separated key list.
func NewGrammar(extra ...string) usage.Grammar {
	commands := make([]string, 0, len(defaultCommands)+len(extra))
	commands = append(commands, defaultCommands...)
	commands = append(commands, extra...)
	return usage.NewGrammar(nil, commands)
}
