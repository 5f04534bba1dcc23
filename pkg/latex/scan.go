// Package latex provides low-level scanning primitives for LaTeX source
// text: balanced-delimiter matching and line-level comment handling.
package latex

import "strings"

// MatchDelim returns the index of the delimiter that closes s[start].
// s[start] must be the opening delimiter. Nested pairs are tracked with a
// depth counter; ok is false when the text ends before the pair closes.
func MatchDelim(s string, start int, open, close byte) (int, bool) {
	if start >= len(s) || s[start] != open {
		return 0, false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// MatchBrace returns the index of the brace closing s[start], where s[start]
// must be '{'.
func MatchBrace(s string, start int) (int, bool) {
	return MatchDelim(s, start, '{', '}')
}

// MatchEntryBrace returns the index of the brace closing s[start] while
// treating double-quoted regions as opaque, so a '}' inside a quoted BibTeX
// field value does not close the entry. Quotes only delimit values at the
// top nesting level of the entry body; inside a braced group a '"' is
// literal.
func MatchEntryBrace(s string, start int) (int, bool) {
	if start >= len(s) || s[start] != '{' {
		return 0, false
	}
	depth := 0
	inQuote := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inQuote {
			if c == '"' {
				inQuote = false
			}
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		case '"':
			// Field values are quote-delimited only directly inside the
			// entry body (depth 1).
			if depth == 1 {
				inQuote = true
			}
		}
	}
	return 0, false
}

// CutComment returns line truncated at its first comment marker. A '%' is a
// comment marker when preceded by an even number of backslashes; "\%" is an
// escaped percent sign and stays part of the text.
func CutComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '%' {
			continue
		}
		backslashes := 0
		for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			return line[:i]
		}
	}
	return line
}

// IsBlank reports whether s contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SplitKeys splits a comma-separated key list, trimming whitespace around
// each key and dropping empty elements.
func SplitKeys(arg string) []string {
	parts := strings.Split(arg, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
