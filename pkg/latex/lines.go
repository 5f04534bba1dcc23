package latex

import "strings"

// SplitLines cuts text into physical lines, each keeping its trailing
// newline. A trailing newline does not produce an empty final line, so
// joining the result restores text exactly.
func SplitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ShadowLines returns comment-stripped copies of lines with the line
// structure intact. The shadow is for matching only; callers slice the
// original lines for verbatim spans.
func ShadowLines(lines []string) []string {
	shadow := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasSuffix(line, "\n") {
			shadow[i] = CutComment(line[:len(line)-1]) + "\n"
		} else {
			shadow[i] = CutComment(line)
		}
	}
	return shadow
}

// Shadow strips comments from every line of text, preserving line
// breaks so positions keep their line numbers.
func Shadow(text string) string {
	return strings.Join(ShadowLines(SplitLines(text)), "")
}
