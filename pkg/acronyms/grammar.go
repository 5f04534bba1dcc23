package acronyms

import "github.com/adiepenbrock/latex-scripts/pkg/usage"

// defaultCommands lists the acro package reference commands recognized
// out of the box, including the capitalized and glossaries-style
// variants.
var defaultCommands = []string{
	"ac", "acp", "acs", "acl", "acf",
	"acrshort", "acrlong", "acrfull",
	"Ac", "Acp", "Acs", "Acl", "Acf",
	"ACshort", "AClong", "ACfull",
}

// NewGrammar returns the usage grammar for acronym references. Extra
// command names extend the default set. Acronym commands reference a
// single key; none of them take a key list.
func NewGrammar(extra ...string) usage.Grammar {
	commands := make([]string, 0, len(defaultCommands)+len(extra))
	commands = append(commands, defaultCommands...)
	commands = append(commands, extra...)
	return usage.NewGrammar(commands, nil)
}
