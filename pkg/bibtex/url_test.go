//go:build unit

package bibtex

import (
	"testing"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
	"github.com/stretchr/testify/assert"
)

func entryWith(fields ...entry.Field) entry.Entry {
	return entry.Entry{Key: "k", Type: "misc", Fields: fields}
}

func TestEntryURL(t *testing.T) {
	tests := []struct {
		name   string
		e      entry.Entry
		want   string
		wantOK bool
	}{
		{
			name:   "url field",
			e:      entryWith(entry.Field{Name: "url", Value: "https://example.org/data"}),
			want:   "https://example.org/data",
			wantOK: true,
		},
		{
			name:   "url field wins over howpublished",
			e:      entryWith(entry.Field{Name: "url", Value: "https://a.example"}, entry.Field{Name: "howpublished", Value: `\url{https://b.example}`}),
			want:   "https://a.example",
			wantOK: true,
		},
		{
			name:   "howpublished with url macro",
			e:      entryWith(entry.Field{Name: "howpublished", Value: `\url{https://example.org/page}`}),
			want:   "https://example.org/page",
			wantOK: true,
		},
		{
			name:   "howpublished bare www",
			e:      entryWith(entry.Field{Name: "howpublished", Value: "Online: www.example.org/doc"}),
			want:   "www.example.org/doc",
			wantOK: true,
		},
		{
			name:   "howpublished without link",
			e:      entryWith(entry.Field{Name: "howpublished", Value: "Personal communication"}),
			wantOK: false,
		},
		{
			name:   "url field without scheme hint",
			e:      entryWith(entry.Field{Name: "url", Value: "ftp://example.org"}),
			wantOK: false,
		},
		{
			name:   "no fields",
			e:      entryWith(),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EntryURL(tt.e)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
