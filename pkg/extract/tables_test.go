package extract

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClassifyFirstRow(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want rowShape
	}{
		{"section label only", []string{"Coil Specifications", "", "", ""}, headerPresent},
		{"two columns", []string{"Voltage", "24 (VDC)"}, headerPresent},
		{"empty category cell", []string{"", "Min", "Max", "Unit"}, headerPresent},
		{"full data row", []string{"Coil Resistance", "Standard", "Ohm", "500"}, headerAbsent},
		{"data row without unit", []string{"Operate Time", "Max", "", "1.0"}, headerAbsent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyFirstRow(tt.row))
		})
	}
}

func TestMapTableToSpecsCarriesCategory(t *testing.T) {
	rows := [][]string{
		{"Coil Specifications", "", "", ""},
		{"Coil Resistance", "Standard", "Ohm", "500"},
		{"", "Sensitive", "Ohm", "1000"},
		{"Rated Power", "", "W", "0.5"},
	}

	section := mapTableToSpecs(rows, discardLogger())
	require.Equal(t, []string{"Coil Resistance", "Rated Power"}, section.Names())

	coil, ok := section.Get("Coil Resistance")
	require.True(t, ok)
	std, ok := coil.Subcategories["Standard"]
	require.True(t, ok)
	assert.Equal(t, "Ω", std.Unit)
	assert.Equal(t, "500", std.Value)

	sens, ok := coil.Subcategories["Sensitive"]
	require.True(t, ok, "blank category cell inherits the previous category")
	assert.Equal(t, "1000", sens.Value)

	power, ok := section.Get("Rated Power")
	require.True(t, ok)
	bare, ok := power.Subcategories[""]
	require.True(t, ok)
	assert.Equal(t, "W", bare.Unit)
	assert.Equal(t, "0.5", bare.Value)
}

func TestMapTableToSpecsThreeAndTwoColumnRows(t *testing.T) {
	rows := [][]string{
		{"General", "", ""},
		{"Operate Time", "Max", "1.0"},
		{"Voltage", "24 (VDC)"},
	}

	section := mapTableToSpecs(rows, discardLogger())

	op, ok := section.Get("Operate Time")
	require.True(t, ok)
	v, ok := op.Subcategories["Max"]
	require.True(t, ok)
	assert.Equal(t, "1.0", v.Value)
	assert.Equal(t, "", v.Unit)

	volt, ok := section.Get("Voltage")
	require.True(t, ok, "two-column rows attach the value directly to the category")
	direct, ok := volt.Subcategories[""]
	require.True(t, ok)
	assert.Equal(t, "24 (VDC)", direct.Value)
}

func TestMapTableToSpecsFirstRowDataKept(t *testing.T) {
	rows := [][]string{
		{"Contact Rating", "Switching", "W", "10"},
	}

	section := mapTableToSpecs(rows, discardLogger())
	require.Equal(t, 1, section.Len(), "a leading data row is parsed, not dropped as a header")
}

func TestMapTableToSpecsSkipsFeatureAdvantageTable(t *testing.T) {
	rows := [][]string{
		{"Features", "Advantages"},
		{"Hermetically sealed", "Long life"},
	}

	section := mapTableToSpecs(rows, discardLogger())
	assert.Equal(t, 0, section.Len())
}

func TestMapTableToSpecsIgnoresBlankAndLabelRows(t *testing.T) {
	rows := [][]string{
		{"Header", "", "", ""},
		{"", "", "", ""},
		{"Environmental", "", "", ""},
		{"", "Shock", "G", "50"},
	}

	section := mapTableToSpecs(rows, discardLogger())
	env, ok := section.Get("Environmental")
	require.True(t, ok, "label-only rows still register their category")
	shock, ok := env.Subcategories["Shock"]
	require.True(t, ok)
	assert.Equal(t, "50", shock.Value)
	assert.Equal(t, "G", shock.Unit)
}
