package extract

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// sectionHeader is a specification section header line and its position in
// the page's line sequence.
type sectionHeader struct {
	name  string
	index int
}

// findSectionHeaders collects all lines containing the section marker, in
// line order.
func findSectionHeaders(lines []string, marker string) []sectionHeader {
	var headers []sectionHeader
	for i, line := range lines {
		if strings.Contains(line, marker) {
			headers = append(headers, sectionHeader{name: strings.TrimSpace(line), index: i})
		}
	}
	sort.Slice(headers, func(i, j int) bool { return headers[i].index < headers[j].index })
	return headers
}

// locateSection returns the section header governing the table that starts
// at tableIndex: the last header h with h.index <= tableIndex, using
// closed-open intervals [h_i, h_{i+1}). A table above the first header
// resolves to the first header (degrade gracefully rather than error); a
// table below the last header belongs to it. No headers at all yields the
// empty string and the caller skips the table.
func locateSection(headers []sectionHeader, tableIndex int) string {
	if len(headers) == 0 {
		return ""
	}
	if tableIndex < headers[0].index {
		return headers[0].name
	}
	for i, h := range headers {
		next := int(^uint(0) >> 1) // open-ended final interval
		if i+1 < len(headers) {
			next = headers[i+1].index
		}
		if h.index <= tableIndex && tableIndex < next {
			return h.name
		}
	}
	return headers[len(headers)-1].name
}

var titleCaser = cases.Title(language.English)

// formatSectionName turns a header line into a stable record key:
// non-alphanumeric runs become single underscores and each token is
// title-cased, so "Physical/Operational Specifications" becomes
// "Physical_Operational_Specifications".
func formatSectionName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	var tokens []string
	for _, tok := range strings.Split(b.String(), "_") {
		if tok == "" {
			continue
		}
		tokens = append(tokens, titleCaser.String(tok))
	}
	return strings.Join(tokens, "_")
}
