// Package bibtex implements the BibTeX definition format: @type{key, ...}
// records with brace- or quote-delimited field values.
//
// Comment handling is asymmetric on purpose. A record only starts where
// the comment-stripped line opens with @, so commented-out entries stay
// inert. The record body itself is matched on the raw text, because %
// is a legal literal inside BibTeX field values.
package bibtex

import (
	"fmt"
	"strings"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/adiepenbrock/latex-scripts/pkg/latex"
)

// Field names the tools read from parsed entries.
const (
	FieldTitle        = "title"
	FieldAuthor       = "author"
	FieldURL          = "url"
	FieldHowPublished = "howpublished"
	FieldNote         = "note"
)

type format struct{}

// NewFormat returns the BibTeX format.
func NewFormat() entry.Format {
	return format{}
}

func (format) Name() string { return "bibtex" }

// FoldKey keeps BibTeX keys case-sensitive, matching how BibTeX
// resolves citations.
func (format) FoldKey(key string) string { return key }

// SortKey orders entries by citation key, case-insensitively.
func (format) SortKey(e entry.Entry) string { return strings.ToLower(e.Key) }

func (format) Extract(text string) entry.Document {
	lines := latex.SplitLines(text)
	shadow := latex.ShadowLines(lines)

	var (
		doc     entry.Document
		pending strings.Builder
		seen    = make(map[string]int)
	)

	for i := 0; i < len(lines); {
		if !strings.HasPrefix(strings.TrimSpace(shadow[i]), "@") {
			pending.WriteString(lines[i])
			i++
			continue
		}

		res := parseRecord(lines, i)
		switch {
		case res.warn != nil:
			doc.Warnings = append(doc.Warnings, *res.warn)
			pending.WriteString(lines[i])
			i++
		case res.inert:
			pending.WriteString(strings.Join(lines[i:res.last+1], ""))
			i = res.last + 1
		default:
			if first, dup := seen[res.entry.Key]; dup {
				doc.Warnings = append(doc.Warnings, entry.Warning{
					Kind:   entry.WarnDuplicateKey,
					Key:    res.entry.Key,
					Line:   i + 1,
					Detail: fmt.Sprintf("already defined on line %d, first definition wins", first),
				})
				pending.WriteString(res.entry.Span.Text)
				i = res.last + 1
				continue
			}
			seen[res.entry.Key] = i + 1

			doc.Inert = append(doc.Inert, pending.String())
			pending.Reset()
			doc.Entries = append(doc.Entries, res.entry)
			i = res.last + 1
		}
	}

	doc.Inert = append(doc.Inert, pending.String())
	return doc
}

type record struct {
	entry entry.Entry
	last  int
	inert bool
	warn  *entry.Warning
}

// parseRecord reads one @-construct starting on line i of the raw
// lines. @comment, @preamble and @string blocks come back as inert
// spans; an @ that opens no braced block at all is ordinary text.
func parseRecord(lines []string, i int) record {
	text := strings.Join(lines[i:], "")
	at := strings.IndexByte(text, '@')

	j := at + 1
	for j < len(text) && isIdentChar(text[j]) {
		j++
	}
	typ := strings.ToLower(text[at+1 : j])
	for j < len(text) && isSpace(text[j]) {
		j++
	}
	if typ == "" || j >= len(text) || text[j] != '{' {
		return record{inert: true, last: i}
	}

	warnf := func(detail string, args ...any) record {
		return record{warn: &entry.Warning{
			Kind:   entry.WarnParse,
			Line:   i + 1,
			Detail: fmt.Sprintf(detail, args...),
		}}
	}

	end, ok := latex.MatchEntryBrace(text, j)
	if !ok {
		return warnf("unbalanced braces in @%s", typ)
	}
	last := i + strings.Count(text[:end+1], "\n")

	switch typ {
	case "comment", "preamble", "string":
		return record{inert: true, last: last}
	}

	body := text[j+1 : end]
	key, rest, ok := splitKey(body)
	if !ok {
		return warnf("malformed key in @%s entry", typ)
	}
	if key == "" {
		return warnf("@%s entry with empty key", typ)
	}

	return record{
		entry: entry.Entry{
			Key:    key,
			Type:   typ,
			Fields: parseFields(rest),
			Span: entry.Span{
				StartLine: i + 1,
				EndLine:   last + 1,
				Text:      strings.Join(lines[i:last+1], ""),
			},
		},
		last: last,
	}
}

// splitKey separates the citation key from the field list. The key runs
// to the first comma or whitespace; anything other than a comma after
// it makes the record malformed.
func splitKey(body string) (key, rest string, ok bool) {
	i := 0
	for i < len(body) && isSpace(body[i]) {
		i++
	}
	start := i
	for i < len(body) && !isSpace(body[i]) && body[i] != ',' {
		i++
	}
	key = body[start:i]
	for i < len(body) && isSpace(body[i]) {
		i++
	}
	if i < len(body) {
		if body[i] != ',' {
			return "", "", false
		}
		i++
	}
	return key, body[i:], true
}

func isIdentChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_' || c == '-'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
