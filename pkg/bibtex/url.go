package bibtex

import (
	"regexp"
	"strings"

	"github.com/adiepenbrock/latex-scripts/pkg/entry"
)

var linkRe = regexp.MustCompile(`https?://[^\s}]+|www\.[^\s}]+`)

// EntryURL returns the address an entry points at: the url field when
// present, otherwise the first link found inside howpublished. An
// address must mention http or www. to count.
func EntryURL(e entry.Entry) (string, bool) {
	raw, hasURL := e.Field(FieldURL)
	if !hasURL {
		raw, _ = e.Field(FieldHowPublished)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.Contains(raw, "http") && !strings.Contains(raw, "www.") {
		return "", false
	}
	if !hasURL {
		if m := linkRe.FindString(raw); m != "" {
			return m, true
		}
	}
	return raw, true
}
