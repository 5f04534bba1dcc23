package usage

// A Grammar describes one family of reference commands: which command
// names carry keys and which of them accept a comma-separated key list.
type Grammar struct {
	multiKey map[string]bool
}

// NewGrammar builds a grammar from command names, given without the
// leading backslash. Commands in multi accept a comma-separated key
// list; commands in single reference exactly one key.
func NewGrammar(single, multi []string) Grammar {
	g := Grammar{multiKey: make(map[string]bool, len(single)+len(multi))}
	for _, name := range single {
		g.multiKey[name] = false
	}
	for _, name := range multi {
		g.multiKey[name] = true
	}
	return g
}

// Has reports whether name is a reference command of this grammar.
func (g Grammar) Has(name string) bool {
	_, ok := g.multiKey[name]
	return ok
}

// MultiKey reports whether name accepts a comma-separated key list.
func (g Grammar) MultiKey(name string) bool {
	return g.multiKey[name]
}

// Commands returns the number of commands the grammar knows.
func (g Grammar) Commands() int {
	return len(g.multiKey)
}
