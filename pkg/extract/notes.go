package extract

import (
	"regexp"
	"strings"
)

// noteMarkerRe matches footnote numbering like "(1)" at the start of a line.
var noteMarkerRe = regexp.MustCompile(`^\(\d+\)`)

// extractNotes collects the footnote block that follows the notes marker
// line. A line starting with a parenthesized numeral or carrying the bullet
// glyph closes the open note and starts a new one; unmarked lines append to
// the open note, space-joined (wrapped note text). Returns the merged notes
// in order, or nil when the marker never appears.
func extractNotes(lines []string, marker, bullet string) []string {
	var notes []string
	collecting := false
	current := ""

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if strings.Contains(line, marker) {
			collecting = true
			line = strings.TrimSpace(strings.Replace(line, marker, "", 1))
		}
		if !collecting || line == "" {
			continue
		}

		startsNew := noteMarkerRe.MatchString(line) || strings.Contains(line, bullet)
		switch {
		case startsNew:
			if current != "" {
				notes = append(notes, current)
			}
			current = line
		case current != "":
			current += " " + line
		default:
			current = line
		}
	}

	if current != "" {
		notes = append(notes, current)
	}
	return notes
}
