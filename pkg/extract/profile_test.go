package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsi-tools/relayspec/pkg/layout"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, "Specifications", p.SectionMarker)
	assert.Equal(t, "Notes:", p.NotesMarker)
	assert.Equal(t, "•", p.Bullet)
	assert.Equal(t, `HSR-(\d+[RFW]?)`, p.ModelPattern)
	assert.Equal(t, 2, p.MaxContinuationWords)
}

func TestLoadProfilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	yaml := "section_marker: Characteristics\nmodel_pattern: 'GRS-(\\d+)'\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "Characteristics", p.SectionMarker)
	assert.Equal(t, `GRS-(\d+)`, p.ModelPattern)
	assert.Equal(t, "Notes:", p.NotesMarker, "unset fields keep their defaults")
	assert.Equal(t, "•", p.Bullet)

	m := p.modelRegexp().FindStringSubmatch("grs-410 sensor")
	require.Len(t, m, 2)
	assert.Equal(t, "410", m[1])
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadProfileBadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model_pattern: '('\n"), 0o644))

	_, err := LoadProfile(path)
	assert.Error(t, err)
}

func TestModelRegexpFallsBackOnBadPattern(t *testing.T) {
	p := DefaultProfile()
	p.ModelPattern = "("

	re := p.modelRegexp()
	require.NotNil(t, re)
	assert.Equal(t, "520R", re.FindStringSubmatch("HSR-520R")[1])
}

func TestTableLinePositions(t *testing.T) {
	lines := []string{
		"Electrical Specifications",
		"Coil Resistance Standard Ohm 500",
		"Magnetic Specifications",
		"Coil Resistance Standard Ohm 500",
	}
	tables := []layout.Table{
		{Rows: [][]string{{"Coil Resistance", "Standard", "Ohm", "500"}}},
		{Rows: [][]string{{"Coil Resistance", "Standard", "Ohm", "500"}}},
		{Rows: [][]string{{"Pull-In", "Range", "AT", "15"}}},
	}

	positions := tableLinePositions(lines, tables)
	assert.Equal(t, []int{1, 3, -1}, positions, "identical headers resolve in order; a miss stays -1")
}
