//go:build unit

package bibtex

import (
	"testing"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `% references
@article{smith2020,
  title = {A Study of Things},
  author = {Smith, J. and Jones, K.},
  year = {2020},
}

@misc{web,
  howpublished = {\url{https://example.org/page}},
  note = {Resource},
}
`

func TestExtract_Entries(t *testing.T) {
	doc := NewFormat().Extract(sampleFile)

	require.Len(t, doc.Entries, 2)
	assert.Empty(t, doc.Warnings)
	assert.Equal(t, []string{"smith2020", "web"}, doc.Keys())

	smith := doc.Entries[0]
	assert.Equal(t, "article", smith.Type)
	assert.Equal(t, 2, smith.Span.StartLine)
	assert.Equal(t, 6, smith.Span.EndLine)

	title, ok := smith.Field("title")
	require.True(t, ok)
	assert.Equal(t, "A Study of Things", title)
	author, _ := smith.Field("author")
	assert.Equal(t, "Smith, J. and Jones, K.", author)

	web := doc.Entries[1]
	assert.Equal(t, "misc", web.Type)
	assert.Equal(t, 8, web.Span.StartLine)
}

func TestExtract_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "typical file", text: sampleFile},
		{name: "empty file", text: ""},
		{name: "no entries", text: "just text\n% a comment\n"},
		{name: "no trailing newline", text: "@misc{a,\n  title = {T},\n}"},
		{name: "string block", text: "@string{ieee = {IEEE Trans.}}\n@article{a,\n  journal = ieee,\n}\n"},
		{name: "commented-out entry", text: "% @article{dead,\n%   title = {Gone},\n% }\n@misc{live,\n  title = {Here},\n}\n"},
		{name: "broken entry kept verbatim", text: "@article{broken,\n  title = {never closed\n"},
		{name: "literal percent in value", text: "@misc{pct,\n  title = {50% better},\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewFormat().Extract(tt.text)
			assert.Equal(t, tt.text, doc.Text())
		})
	}
}

func TestExtract_QuotedValues(t *testing.T) {
	text := "@article{q,\n  title = \"Brace } inside\",\n  pages = \"1--5\",\n}\n"

	doc := NewFormat().Extract(text)

	require.Len(t, doc.Entries, 1)
	title, _ := doc.Entries[0].Field("title")
	assert.Equal(t, "Brace } inside", title)
	pages, _ := doc.Entries[0].Field("pages")
	assert.Equal(t, "1--5", pages)
	assert.Equal(t, text, doc.Text())
}

func TestExtract_LiteralPercentInValue(t *testing.T) {
	doc := NewFormat().Extract("@misc{pct,\n  title = {50% better},\n}\n")

	require.Len(t, doc.Entries, 1)
	assert.Empty(t, doc.Warnings)
	title, _ := doc.Entries[0].Field("title")
	assert.Equal(t, "50% better", title)
}

func TestExtract_CommentedOutEntryIsInert(t *testing.T) {
	doc := NewFormat().Extract("% @article{dead,\n%   title = {Gone},\n% }\n@misc{live,\n  title = {Here},\n}\n")

	assert.Equal(t, []string{"live"}, doc.Keys())
	assert.Empty(t, doc.Warnings)
}

func TestExtract_SpecialBlocksAreInert(t *testing.T) {
	text := "@string{ieee = {IEEE Trans.}}\n@preamble{\"\\newcommand{\\x}{y}\"}\n@comment{scratch}\n@article{a,\n  journal = ieee,\n}\n"

	doc := NewFormat().Extract(text)

	assert.Equal(t, []string{"a"}, doc.Keys())
	assert.Empty(t, doc.Warnings)
	journal, _ := doc.Entries[0].Field("journal")
	assert.Equal(t, "ieee", journal)
}

func TestExtract_FieldNamesAreFolded(t *testing.T) {
	doc := NewFormat().Extract("@misc{a,\n  TITLE = {T},\n  Year = 2021,\n}\n")

	require.Len(t, doc.Entries, 1)
	title, ok := doc.Entries[0].Field("title")
	assert.True(t, ok)
	assert.Equal(t, "T", title)
	year, ok := doc.Entries[0].Field("year")
	assert.True(t, ok)
	assert.Equal(t, "2021", year)
}

func TestExtract_ZeroFieldEntry(t *testing.T) {
	doc := NewFormat().Extract("@misc{alone}\n")

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "alone", doc.Entries[0].Key)
	assert.Empty(t, doc.Entries[0].Fields)
}

func TestExtract_SoftFailures(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantDetail string
	}{
		{name: "unbalanced braces", text: "@article{bad,\n  title = {open\n", wantDetail: "unbalanced braces"},
		{name: "unterminated quote", text: "@article{bad,\n  title = \"open {\n}\n", wantDetail: "unbalanced braces"},
		{name: "empty key", text: "@article{,\n  title = {T},\n}\n", wantDetail: "empty key"},
		{name: "space in key", text: "@article{two words,\n  title = {T},\n}\n", wantDetail: "malformed key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewFormat().Extract(tt.text + "@misc{ok,\n  title = {Still parsed},\n}\n")

			assert.Contains(t, doc.Keys(), "ok", "remaining entries must still parse")
			require.NotEmpty(t, doc.Warnings)
			assert.Equal(t, entry.WarnParse, doc.Warnings[0].Kind)
			assert.Equal(t, 1, doc.Warnings[0].Line)
			assert.Contains(t, doc.Warnings[0].Detail, tt.wantDetail)
		})
	}
}

func TestExtract_DuplicateKeys(t *testing.T) {
	text := "@misc{a,\n  title = {First},\n}\n@misc{a,\n  title = {Second},\n}\n"

	doc := NewFormat().Extract(text)

	require.Len(t, doc.Entries, 1)
	title, _ := doc.Entries[0].Field("title")
	assert.Equal(t, "First", title)
	require.Len(t, doc.Warnings, 1)
	assert.Equal(t, entry.WarnDuplicateKey, doc.Warnings[0].Kind)
	assert.Equal(t, 4, doc.Warnings[0].Line)
	assert.Equal(t, text, doc.Text())
}

func TestExtract_KeysAreCaseSensitive(t *testing.T) {
	doc := NewFormat().Extract("@misc{Key,\n  title = {One},\n}\n@misc{key,\n  title = {Two},\n}\n")

	assert.Equal(t, []string{"Key", "key"}, doc.Keys())
	assert.Empty(t, doc.Warnings)
}

func TestFoldKeyIsIdentity(t *testing.T) {
	f := NewFormat()
	assert.NotEqual(t, f.FoldKey("Key"), f.FoldKey("key"))
}

func TestNewGrammar(t *testing.T) {
	g := NewGrammar("citefield")

	assert.True(t, g.Has("cite"))
	assert.True(t, g.Has("parencite"))
	assert.True(t, g.Has("citefield"))
	assert.True(t, g.MultiKey("cite"))
	assert.True(t, g.MultiKey("citefield"))
	assert.Equal(t, 17, g.Commands())
}
