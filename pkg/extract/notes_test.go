package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNotesNumberedWithWrap(t *testing.T) {
	lines := []string{
		"Physical Specifications",
		"Notes:",
		"(1) Measured at 25°C",
		"with rated load",
		"(2) Coil voltage within ±10% of nominal",
	}

	notes := extractNotes(lines, "Notes:", "•")
	require.Equal(t, []string{
		"(1) Measured at 25°C with rated load",
		"(2) Coil voltage within ±10% of nominal",
	}, notes)
}

func TestExtractNotesMarkerLineCarriesText(t *testing.T) {
	lines := []string{
		"Notes: (1) All values at nominal coil voltage",
		"(2) Contact ratings are resistive",
	}

	notes := extractNotes(lines, "Notes:", "•")
	require.Len(t, notes, 2)
	assert.Equal(t, "(1) All values at nominal coil voltage", notes[0])
}

func TestExtractNotesBulletDelimited(t *testing.T) {
	lines := []string{
		"Notes:",
		"• Operate time excludes bounce",
		"measured dynamically",
		"• Storage temperature applies unpowered",
	}

	notes := extractNotes(lines, "Notes:", "•")
	require.Equal(t, []string{
		"• Operate time excludes bounce measured dynamically",
		"• Storage temperature applies unpowered",
	}, notes)
}

func TestExtractNotesNoMarker(t *testing.T) {
	lines := []string{"(1) looks like a note but the block never opened"}
	assert.Nil(t, extractNotes(lines, "Notes:", "•"))
}
