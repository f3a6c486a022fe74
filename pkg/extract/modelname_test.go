package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveModelName(t *testing.T) {
	p := DefaultProfile()
	re := p.modelRegexp()

	tests := []struct {
		name     string
		text     string
		filename string
		want     string
	}{
		{"from page text", "HSR-520R Reed Relay datasheet", "scan001.pdf", "520R"},
		{"text wins over filename", "HSR-520R", "HSR-312.pdf", "520R"},
		{"filename fallback", "no model anywhere in text", "HSR-312W.pdf", "312W"},
		{"case insensitive, canonical uppercase", "hsr-520r reed relay", "x.pdf", "520R"},
		{"plain numeric code", "HSR-850 series", "x.pdf", "850"},
		{"absent everywhere", "generic relay", "scan.pdf", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveModelName(tt.text, tt.filename, re))
		})
	}
}
