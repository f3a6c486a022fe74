package datasheet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOrderPreserved(t *testing.T) {
	s := NewSectionData()
	for _, name := range []string{"Zulu", "Alpha", "Mike"} {
		s.Category(name).Set("", SpecValue{Value: "1"})
	}

	assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, s.Names())

	// Re-requesting a category must not move it.
	s.Category("Alpha").Set("Sub", SpecValue{Value: "2"})
	assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, s.Names())
}

func TestLastValueWinsForRepeatedSubcategory(t *testing.T) {
	c := NewCategorySpec()
	c.Set("Operate Time", SpecValue{Unit: "ms", Value: "1.0"})
	c.Set("Operate Time", SpecValue{Unit: "ms", Value: "1.5"})

	require.Len(t, c.Subcategories, 1)
	assert.Equal(t, "1.5", c.Subcategories["Operate Time"].Value)
}

func TestBareAndNamedSubcategoriesCoexist(t *testing.T) {
	c := NewCategorySpec()
	c.Set("", SpecValue{Value: "100"})
	c.Set("Max", SpecValue{Value: "200"})

	assert.Len(t, c.Subcategories, 2)
	assert.Equal(t, "100", c.Subcategories[""].Value)
	assert.Equal(t, "200", c.Subcategories["Max"].Value)
}

func TestSectionJSONRoundTripKeepsOrder(t *testing.T) {
	s := NewSectionData()
	s.Category("Voltage Breakdown").Set("", SpecValue{Unit: "VDC", Value: "200"})
	s.Category("Contact Rating").Set("Max", SpecValue{Unit: "W", Value: "10"})
	s.Category("Ampere Turns").Set("Operate", SpecValue{Value: "25"})

	data, err := json.Marshal(s)
	require.NoError(t, err)

	restored := NewSectionData()
	require.NoError(t, json.Unmarshal(data, restored))
	assert.Equal(t, s.Names(), restored.Names())

	got, ok := restored.Get("Contact Rating")
	require.True(t, ok)
	assert.Equal(t, SpecValue{Unit: "W", Value: "10"}, got.Subcategories["Max"])
}

func TestPDFDataJSONShape(t *testing.T) {
	d := NewPDFData()
	d.ModelName = "520R"
	d.Sections.Section("Electrical_Specifications").
		Category("Contact Rating").Set("", SpecValue{Unit: "W", Value: "10"})
	d.Notes = map[string]string{"1": "For reference only"}
	d.DiagramPath = "diagrams/520R.png"

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "model_name")
	assert.Contains(t, decoded, "sections")
	assert.Contains(t, decoded, "notes")
	assert.Contains(t, decoded, "diagram_path")
}

func TestMarshalIsDeterministic(t *testing.T) {
	build := func() *Sections {
		s := NewSections()
		sec := s.Section("Magnetic_Specifications")
		sec.Category("Test Coil").Set("", SpecValue{Value: "NARM"})
		sec.Category("Ampere Turns").Set("Operate", SpecValue{Value: "25"})
		sec.Category("Ampere Turns").Set("Release", SpecValue{Value: "10"})
		return s
	}

	a, err := json.Marshal(build())
	require.NoError(t, err)
	b, err := json.Marshal(build())
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestSpecValueFloat(t *testing.T) {
	f, ok := SpecValue{Value: "1.25"}.Float()
	require.True(t, ok)
	assert.InDelta(t, 1.25, f, 1e-9)

	_, ok = SpecValue{Value: "24 (VDC)"}.Float()
	assert.False(t, ok)
}
