package extract

import (
	"regexp"
	"strings"
)

// resolveModelName finds the product model code, preferring the page text
// and falling back to the filename. The pattern's first capture group is
// the code (e.g. "520R" out of "HSR-520R"); the result is canonical
// uppercase. Absence is an empty string, never an error.
func resolveModelName(text, filename string, re *regexp.Regexp) string {
	for _, source := range []string{text, filename} {
		if source == "" {
			continue
		}
		if m := re.FindStringSubmatch(source); len(m) > 1 {
			return strings.ToUpper(m[1])
		}
	}
	return ""
}
