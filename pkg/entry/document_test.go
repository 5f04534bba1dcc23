//go:build unit

package entry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleDocument() Document {
	return Document{
		Entries: []Entry{
			{Key: "api", Span: Span{StartLine: 2, EndLine: 2, Text: "\\acro{api}{Application Programming Interface}\n"}},
			{Key: "cpu", Span: Span{StartLine: 4, EndLine: 4, Text: "\\acro{cpu}{Central Processing Unit}\n"}},
		},
		Inert: []string{"% preamble\n", "\n", "% trailer\n"},
	}
}

func TestDocumentText_RoundTrip(t *testing.T) {
	doc := sampleDocument()

	want := "% preamble\n" +
		"\\acro{api}{Application Programming Interface}\n" +
		"\n" +
		"\\acro{cpu}{Central Processing Unit}\n" +
		"% trailer\n"
	assert.Equal(t, want, doc.Text())
}

func TestDocumentText_Empty(t *testing.T) {
	doc := Document{Inert: []string{"no entries here\n"}}
	assert.Equal(t, "no entries here\n", doc.Text())
}

func TestDocumentKeys(t *testing.T) {
	assert.Equal(t, []string{"api", "cpu"}, sampleDocument().Keys())
}

func TestDocumentLookup(t *testing.T) {
	doc := sampleDocument()

	e, ok := doc.Lookup("API", strings.ToLower)
	assert.True(t, ok)
	assert.Equal(t, "api", e.Key)

	_, ok = doc.Lookup("API", func(s string) string { return s })
	assert.False(t, ok)
}

func TestEntryField(t *testing.T) {
	e := Entry{Fields: []Field{{Name: "url", Value: "https://example.org"}}}

	v, ok := e.Field("url")
	assert.True(t, ok)
	assert.Equal(t, "https://example.org", v)

	_, ok = e.Field("note")
	assert.False(t, ok)
}
