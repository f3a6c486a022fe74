package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBulletsNoBulletGlyph(t *testing.T) {
	lines := []string{"Electrical Specifications", "Coil Resistance 500 Ohm"}
	assert.Nil(t, parseBullets(lines, "•", 2))
}

func TestParseBulletsContinuationMerge(t *testing.T) {
	lines := []string{
		"• Voltage Breakdown of",
		"10kV",
		"• Hermetically Sealed Contacts",
	}

	items := parseBullets(lines, "•", 2)
	require.Equal(t, []string{
		"Voltage Breakdown of 10kV",
		"Hermetically Sealed Contacts",
	}, items)
}

func TestParseBulletsLongLineStartsNewItem(t *testing.T) {
	lines := []string{
		"• High Reliability Contacts",
		"Rated for one billion operations",
	}

	items := parseBullets(lines, "•", 2)
	require.Equal(t, []string{
		"High Reliability Contacts",
		"Rated for one billion operations",
	}, items)
}

func TestParseBulletsMultipleSegmentsPerLine(t *testing.T) {
	lines := []string{"• Fast Switching • Low Power Consumption"}

	items := parseBullets(lines, "•", 2)
	require.Equal(t, []string{"Fast Switching", "Low Power Consumption"}, items)
}

func TestParseBulletsDropsDuplicatesAndSingleWords(t *testing.T) {
	lines := []string{
		"• Compact",
		"• Low Power Consumption",
		"• Low Power Consumption",
	}

	items := parseBullets(lines, "•", 2)
	require.Equal(t, []string{"Low Power Consumption"}, items)
}

func TestParityStrategy(t *testing.T) {
	items := []string{"one one", "two two", "three three", "four four", "five five", "six six"}

	features, advantages := ParityStrategy().Classify(items)
	assert.Equal(t, []string{"one one", "three three", "five five"}, features)
	assert.Equal(t, []string{"two two", "four four", "six six"}, advantages)
}

func TestParityStrategyBeyondFive(t *testing.T) {
	items := []string{"a a", "b b", "c c", "d d", "e e", "f f", "g g"}

	features, _ := ParityStrategy().Classify(items)
	assert.NotContains(t, features, "g g", "items past the fifth are never features")
}
