// Package entry defines the document model shared by every definition
// format: parsed entries, the inert text around them, and the warnings
// collected while parsing.
package entry

// A Field is one named value inside an entry body.
type Field struct {
	Name  string
	Value string
}

// A Span records where an entry sits in its source file and carries the
// verbatim text of the entry, including the trailing newline when the
// source has one.
type Span struct {
	StartLine int
	EndLine   int
	Text      string
}

// An Entry is a single parsed definition, such as an \acro line or a
// BibTeX record. Type holds the defining construct in lower case
// ("acro", "article", ...).
type Entry struct {
	Key    string
	Type   string
	Fields []Field
	Span   Span
}

// Field returns the value of the named field and whether it is present.
func (e Entry) Field(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}
