//go:build unit

package bibtex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessNote(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		want     string
	}{
		{name: "empty note", existing: "", want: "Accessed: 2026-08-23"},
		{name: "plain note", existing: "Technical report", want: "Technical report. Accessed: 2026-08-23"},
		{name: "stamp only", existing: "Accessed: 2020-01-01", want: "Accessed: 2026-08-23"},
		{name: "note with old stamp", existing: "Technical report. Accessed: 2020-01-01", want: "Technical report. Accessed: 2026-08-23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccessNote(tt.existing, "2026-08-23"))
		})
	}
}

func TestAccessNote_Idempotent(t *testing.T) {
	once := AccessNote("Survey data", "2026-08-23")
	twice := AccessNote(once, "2026-08-23")
	assert.Equal(t, once, twice)
}

func TestSetNote_ReplacesBracedValue(t *testing.T) {
	span := "@misc{w,\n  note = {Old},\n}\n"

	got, ok := SetNote(span, "New")

	require.True(t, ok)
	assert.Equal(t, "@misc{w,\n  note = {New},\n}\n", got)
}

func TestSetNote_NormalizesQuotedValue(t *testing.T) {
	span := "@misc{w,\n  note = \"Old note\",\n}\n"

	got, ok := SetNote(span, "New")

	require.True(t, ok)
	assert.Equal(t, "@misc{w,\n  note = {New},\n}\n", got)
}

func TestSetNote_AddsMissingField(t *testing.T) {
	tests := []struct {
		name string
		span string
		want string
	}{
		{
			name: "after last field",
			span: "@misc{w,\n  title = {T}\n}\n",
			want: "@misc{w,\n  title = {T},\n  note = {V}\n}\n",
		},
		{
			name: "trailing comma present",
			span: "@misc{w,\n  title = {T},\n}\n",
			want: "@misc{w,\n  title = {T},\n  note = {V}\n}\n",
		},
		{
			name: "zero fields",
			span: "@misc{w}\n",
			want: "@misc{w,\n  note = {V}}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SetNote(tt.span, "V")
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetNote_IgnoresNestedNoteText(t *testing.T) {
	span := "@misc{w,\n  title = {note = trap},\n  note = {Old},\n}\n"

	got, ok := SetNote(span, "New")

	require.True(t, ok)
	assert.Equal(t, "@misc{w,\n  title = {note = trap},\n  note = {New},\n}\n", got)
}

func TestSetNote_RejectsNonRecord(t *testing.T) {
	_, ok := SetNote("plain text", "V")
	assert.False(t, ok)

	_, ok = SetNote("@misc{unclosed", "V")
	assert.False(t, ok)
}

func TestSetNote_RepeatedUpdateStaysStable(t *testing.T) {
	span := "@misc{w,\n  title = {T},\n  note = {Data portal},\n}\n"

	doc := NewFormat().Extract(span)
	require.Len(t, doc.Entries, 1)
	note, _ := doc.Entries[0].Field("note")

	first, ok := SetNote(span, AccessNote(note, "2026-08-22"))
	require.True(t, ok)

	doc = NewFormat().Extract(first)
	require.Len(t, doc.Entries, 1)
	note, _ = doc.Entries[0].Field("note")

	second, ok := SetNote(first, AccessNote(note, "2026-08-23"))
	require.True(t, ok)
	assert.Equal(t, "@misc{w,\n  title = {T},\n  note = {Data portal. Accessed: 2026-08-23},\n}\n", second)
}
