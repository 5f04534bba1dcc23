// Package acronyms implements the definition format of the LaTeX acro
// package: one \acro{key}[ABBREV]{long form} per entry, wrapped in an
// acronym environment the tool never interprets.
package acronyms

import (
	"fmt"
	"strings"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/latex"
)

// Field names recorded on extracted entries.
const (
	FieldAbbreviation = "abbreviation"
	FieldLongform     = "longform"
)

const entryPrefix = `\acro{`

type format struct{}

// NewFormat returns the acronym-list format.
func NewFormat() entry.Format {
	return format{}
}

func (format) Name() string { return "acronyms" }

// FoldKey compares acronym keys case-insensitively, matching how the
// acro package resolves them.
func (format) FoldKey(key string) string { return strings.ToLower(key) }

// SortKey orders entries by their displayed abbreviation.
func (format) SortKey(e entry.Entry) string {
	abbrev, _ := e.Field(FieldAbbreviation)
	return strings.ToLower(abbrev)
}

// Extract scans text line by line for \acro definitions. A definition
// must open at the first non-whitespace column of its line; the long
// form may span lines as long as its braces stay balanced. Everything
// else, including comment lines and the environment wrapper, is kept
// as inert text.
func (format) Extract(text string) entry.Document {
	lines := latex.SplitLines(text)
	shadow := latex.ShadowLines(lines)

	var (
		doc     entry.Document
		pending strings.Builder
		seen    = make(map[string]int)
	)

	for i := 0; i < len(lines); {
		if !strings.HasPrefix(strings.TrimSpace(shadow[i]), entryPrefix) {
			pending.WriteString(lines[i])
			i++
			continue
		}

		e, last, warn := parseEntry(lines, shadow, i)
		if warn != nil {
			doc.Warnings = append(doc.Warnings, *warn)
			pending.WriteString(lines[i])
			i++
			continue
		}

		folded := strings.ToLower(e.Key)
		if first, dup := seen[folded]; dup {
			doc.Warnings = append(doc.Warnings, entry.Warning{
				Kind:   entry.WarnDuplicateKey,
				Key:    e.Key,
				Line:   i + 1,
				Detail: fmt.Sprintf("already defined on line %d, first definition wins", first),
			})
			pending.WriteString(e.Span.Text)
			i = last + 1
			continue
		}
		seen[folded] = i + 1

		doc.Inert = append(doc.Inert, pending.String())
		pending.Reset()
		doc.Entries = append(doc.Entries, e)
		i = last + 1
	}

	doc.Inert = append(doc.Inert, pending.String())
	return doc
}

// parseEntry reads one \acro definition starting on line i. It returns
// the entry and the index of its last line, or a warning when the line
// opens like a definition but does not complete one.
func parseEntry(lines, shadow []string, i int) (entry.Entry, int, *entry.Warning) {
	text := strings.Join(shadow[i:], "")
	start := strings.Index(text, entryPrefix)

	fail := func(detail string) (entry.Entry, int, *entry.Warning) {
		return entry.Entry{}, 0, &entry.Warning{Kind: entry.WarnParse, Line: i + 1, Detail: detail}
	}

	keyOpen := start + len(entryPrefix) - 1
	keyEnd, ok := latex.MatchBrace(text, keyOpen)
	if !ok {
		return fail("unbalanced braces in \\acro key")
	}
	key := strings.TrimSpace(text[keyOpen+1 : keyEnd])
	if key == "" {
		return fail("\\acro definition with empty key")
	}

	abbrevOpen := keyEnd + 1
	if abbrevOpen >= len(text) || text[abbrevOpen] != '[' {
		return fail(fmt.Sprintf("\\acro{%s} is missing its [abbreviation] part", key))
	}
	abbrevEnd, ok := latex.MatchDelim(text, abbrevOpen, '[', ']')
	if !ok {
		return fail(fmt.Sprintf("unbalanced brackets in \\acro{%s} abbreviation", key))
	}

	longOpen := abbrevEnd + 1
	if longOpen >= len(text) || text[longOpen] != '{' {
		return fail(fmt.Sprintf("\\acro{%s} is missing its {long form} part", key))
	}
	longEnd, ok := latex.MatchBrace(text, longOpen)
	if !ok {
		return fail(fmt.Sprintf("unbalanced braces in \\acro{%s} long form", key))
	}

	last := i + strings.Count(text[:longEnd+1], "\n")
	return entry.Entry{
		Key:  key,
		Type: "acro",
		Fields: []entry.Field{
			{Name: FieldAbbreviation, Value: strings.TrimSpace(text[abbrevOpen+1 : abbrevEnd])},
			{Name: FieldLongform, Value: strings.TrimSpace(text[longOpen+1 : longEnd])},
		},
		Span: entry.Span{
			StartLine: i + 1,
			EndLine:   last + 1,
			Text:      strings.Join(lines[i:last+1], ""),
		},
	}, last, nil
}
