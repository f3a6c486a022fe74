package datasheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardizeUnit(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ohm", "Ω"},
		{"ohms", "Ω"},
		{"OHMS", "Ω"},
		{"Ω", "Ω"},
		{"°C", "°C"},
		{"°C max", "°C"},
		{"°F", "°F"},
		{"VDC", "VDC"},
		{"", ""},
		{"ms", "ms"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StandardizeUnit(tc.in), "input %q", tc.in)
	}
}

func TestUnitTypeOf(t *testing.T) {
	assert.Equal(t, UnitResistance, UnitTypeOf("Ohms"))
	assert.Equal(t, UnitTemperature, UnitTypeOf("°C"))
	assert.Equal(t, UnitVoltage, UnitTypeOf("VDC"))
	assert.Equal(t, UnitCurrent, UnitTypeOf("mA"))
	assert.Equal(t, UnitPower, UnitTypeOf("W"))
	assert.Equal(t, UnitUnknown, UnitTypeOf("ms"))
}
