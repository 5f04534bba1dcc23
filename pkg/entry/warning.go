package entry

import "fmt"

// WarningKind classifies a parse or rewrite warning.
type WarningKind string

const (
	// WarnParse marks text that looked like an entry but could not be
	// parsed and was kept as inert text.
	WarnParse WarningKind = "parse"
	// WarnDuplicateKey marks a key defined more than once. The first
	// definition wins.
	WarnDuplicateKey WarningKind = "duplicate-key"
	// WarnKeyNotFound marks a key requested for removal that the
	// document does not define.
	WarnKeyNotFound WarningKind = "key-not-found"
)

// A Warning reports a recoverable problem. The surrounding text is
// preserved; warnings never abort an operation.
type Warning struct {
	Kind   WarningKind
	Key    string
	Line   int
	Detail string
}

func (w Warning) String() string {
	switch {
	case w.Key != "" && w.Line > 0:
		return fmt.Sprintf("%s: %q (line %d): %s", w.Kind, w.Key, w.Line, w.Detail)
	case w.Key != "":
		return fmt.Sprintf("%s: %q: %s", w.Kind, w.Key, w.Detail)
	case w.Line > 0:
		return fmt.Sprintf("%s (line %d): %s", w.Kind, w.Line, w.Detail)
	default:
		return fmt.Sprintf("%s: %s", w.Kind, w.Detail)
	}
}
