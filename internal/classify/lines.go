// Package classify provides per-line heuristics for resume text: turning raw
// text into positioned lines, scoring each line against the four signal axes,
// and delimiting logical sections.
package classify

import "strings"

// TextLine is a trimmed, non-empty line of the source document together with
// its original ordinal position. Gaps in Pos between adjacent TextLines mark
// blank lines in the source.
type TextLine struct {
	Text string
	Pos  int
}

// Lines normalizes line endings and returns the trimmed, non-empty lines of
// the document with their original positions.
func Lines(raw string) []TextLine {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var out []TextLine
	for i, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, TextLine{Text: trimmed, Pos: i})
	}
	return out
}
