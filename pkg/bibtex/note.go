package bibtex

import (
	"regexp"
	"strings"

	"github.com/adiepenbrock/latex-scripts/pkg/latex"
)

var accessStampRe = regexp.MustCompile(`\s*\.?\s*Accessed:\s*\d{4}-\d{2}-\d{2}`)

// AccessNote merges an access-date stamp into an existing note value.
// Any previous stamp is removed first, so repeated verification runs do
// not stack dates or separators.
func AccessNote(existing, date string) string {
	cleaned := strings.TrimSpace(accessStampRe.ReplaceAllString(existing, ""))
	if cleaned == "" {
		return "Accessed: " + date
	}
	return cleaned + ". Accessed: " + date
}

// SetNote returns the entry span with its note field value replaced by
// value, adding the field before the closing brace when the entry has
// none. The value delimiter is normalized to braces. ok is false when
// span is not a braced record.
func SetNote(span, value string) (string, bool) {
	open := strings.IndexByte(span, '{')
	if open < 0 {
		return span, false
	}
	end, ok := latex.MatchEntryBrace(span, open)
	if !ok {
		return span, false
	}

	from := open + 1
	for from < end && span[from] != ',' {
		from++
	}
	if from < end {
		from++
	}
	for _, r := range scanFields(span, from, end) {
		if r.name == FieldNote {
			return span[:r.from] + "{" + value + "}" + span[r.to:], true
		}
	}

	p := end - 1
	for p > open && isSpace(span[p]) {
		p--
	}
	sep := ","
	if span[p] == ',' || span[p] == '{' {
		sep = ""
	}
	return span[:p+1] + sep + "\n  note = {" + value + "}" + span[p+1:], true
}
