package layout

import (
	"math"
	"sort"
	"strings"
)

// Words groups the page's characters into words: characters are sorted into
// visual lines by Y tolerance, then split on horizontal gaps. A gap starts a
// new word when it exceeds the X tolerance or 30% of the next character's
// width, whichever is hit first.
func (p *Page) Words(opts ...Option) []Word {
	cfg := applyOptions(opts)

	var words []Word
	for _, line := range groupCharsIntoLines(p.chars, cfg.yTolerance) {
		words = append(words, splitLineIntoWords(line, cfg.xTolerance)...)
	}
	return words
}

// Lines groups the page's characters into visual lines, top to bottom.
// Each line's text joins its words with single spaces.
func (p *Page) Lines(opts ...Option) []Line {
	cfg := applyOptions(opts)

	var lines []Line
	for _, lineChars := range groupCharsIntoLines(p.chars, cfg.yTolerance) {
		words := splitLineIntoWords(lineChars, cfg.xTolerance)
		if len(words) == 0 {
			continue
		}

		var text strings.Builder
		bbox := words[0].BBox()
		for i, w := range words {
			if i > 0 {
				text.WriteByte(' ')
			}
			text.WriteString(w.Text)
			bbox.X0 = math.Min(bbox.X0, w.X0)
			bbox.Y0 = math.Min(bbox.Y0, w.Y0)
			bbox.X1 = math.Max(bbox.X1, w.X1)
			bbox.Y1 = math.Max(bbox.Y1, w.Y1)
		}
		lines = append(lines, Line{Text: text.String(), BBox: bbox, Words: words})
	}
	return lines
}

// groupCharsIntoLines sorts characters top-to-bottom then left-to-right and
// buckets them into lines whose Y positions agree within the tolerance.
func groupCharsIntoLines(chars []Char, yTolerance float64) [][]Char {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]Char, len(chars))
	copy(sorted, chars)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y0 != sorted[j].Y0 {
			return sorted[i].Y0 < sorted[j].Y0
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines [][]Char
	current := []Char{sorted[0]}
	currentY := sorted[0].Y0

	for _, ch := range sorted[1:] {
		if math.Abs(ch.Y0-currentY) > yTolerance {
			lines = append(lines, current)
			current = []Char{ch}
			currentY = ch.Y0
		} else {
			current = append(current, ch)
		}
	}
	return append(lines, current)
}

// splitLineIntoWords splits one line's characters into words on horizontal
// gaps.
func splitLineIntoWords(lineChars []Char, xTolerance float64) []Word {
	if len(lineChars) == 0 {
		return nil
	}

	sort.Slice(lineChars, func(i, j int) bool {
		return lineChars[i].X0 < lineChars[j].X0
	})

	var words []Word
	current := []Char{lineChars[0]}

	for i := 1; i < len(lineChars); i++ {
		ch := lineChars[i]
		gap := ch.X0 - lineChars[i-1].X1
		if gap > xTolerance || gap > ch.Width*0.3 {
			words = append(words, buildWord(current))
			current = []Char{ch}
		} else {
			current = append(current, ch)
		}
	}
	return append(words, buildWord(current))
}

func buildWord(chars []Char) Word {
	var text strings.Builder
	minX, minY := chars[0].X0, chars[0].Y0
	maxX, maxY := chars[0].X1, chars[0].Y1

	for _, ch := range chars {
		text.WriteString(ch.Text)
		minX = math.Min(minX, ch.X0)
		minY = math.Min(minY, ch.Y0)
		maxX = math.Max(maxX, ch.X1)
		maxY = math.Max(maxY, ch.Y1)
	}

	return Word{Text: text.String(), X0: minX, Y0: minY, X1: maxX, Y1: maxY, Chars: chars}
}
