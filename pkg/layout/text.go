package layout

import "strings"

// Text renders the page as plain text with line breaks preserved: visual
// lines top to bottom, each line's words joined by single spaces.
func (p *Page) Text(opts ...Option) string {
	lines := p.Lines(opts...)
	if len(lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.Text)
	}
	return sb.String()
}

// TextLines returns the page text as a slice of trimmed lines. Convenience
// for callers that index lines positionally.
func (p *Page) TextLines(opts ...Option) []string {
	lines := p.Lines(opts...)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSpace(line.Text)
	}
	return out
}
