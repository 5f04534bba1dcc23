package bibtex

import (
	"strings"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/latex"
)

// fieldRange is one located name = value segment. The extents cover the
// value with its delimiters, trimmed of surrounding whitespace.
type fieldRange struct {
	name     string
	from, to int
}

// scanFields walks the name = value list between from and to at the top
// brace level. Malformed segments are skipped without failing; a
// trailing comma is fine. The same walker backs field extraction and
// the in-place note rewrite.
func scanFields(s string, from, to int) []fieldRange {
	var out []fieldRange
	i := from
	for i < to {
		nameStart := i
		for i < to && s[i] != '=' && s[i] != ',' {
			i++
		}
		if i >= to {
			break
		}
		if s[i] == ',' {
			i++
			continue
		}
		name := strings.ToLower(strings.TrimSpace(s[nameStart:i]))
		i++
		for i < to && isSpace(s[i]) {
			i++
		}
		vs := i
		i = skipValue(s, i, to)
		ve := i
		for ve > vs && isSpace(s[ve-1]) {
			ve--
		}
		if i < to {
			i++
		}
		if validFieldName(name) {
			out = append(out, fieldRange{name: name, from: vs, to: ve})
		}
	}
	return out
}

// skipValue advances past one field value: delimited components, bare
// tokens and # concatenations, stopping at a top-level comma.
func skipValue(s string, i, to int) int {
	for i < to && s[i] != ',' {
		switch s[i] {
		case '{':
			if end, ok := latex.MatchBrace(s[:to], i); ok {
				i = end + 1
				continue
			}
			i++
		case '"':
			if end, ok := matchQuote(s[:to], i); ok {
				i = end + 1
				continue
			}
			i++
		default:
			i++
		}
	}
	return i
}

// matchQuote finds the closing quote of a quote-delimited value. Braces
// nest inside quoted values and a quote inside braces is literal.
func matchQuote(s string, start int) (int, bool) {
	depth := 0
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func parseFields(s string) []entry.Field {
	ranges := scanFields(s, 0, len(s))
	fields := make([]entry.Field, 0, len(ranges))
	for _, r := range ranges {
		fields = append(fields, entry.Field{Name: r.name, Value: cleanValue(s[r.from:r.to])})
	}
	return fields
}

// cleanValue strips one level of brace or quote delimiters when the
// whole value is a single delimited component. Concatenated values are
// kept verbatim.
func cleanValue(s string) string {
	if len(s) >= 2 {
		switch s[0] {
		case '{':
			if end, ok := latex.MatchBrace(s, 0); ok && end == len(s)-1 {
				return strings.TrimSpace(s[1 : len(s)-1])
			}
		case '"':
			if end, ok := matchQuote(s, 0); ok && end == len(s)-1 {
				return strings.TrimSpace(s[1 : len(s)-1])
			}
		}
	}
	return strings.TrimSpace(s)
}

func validFieldName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isIdentChar(name[i]) {
			return false
		}
	}
	return true
}
