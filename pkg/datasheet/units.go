package datasheet

import "strings"

// UnitType classifies a unit for downstream grouping.
type UnitType string

const (
	UnitTemperature UnitType = "temperature"
	UnitResistance  UnitType = "resistance"
	UnitVoltage     UnitType = "voltage"
	UnitCurrent     UnitType = "current"
	UnitPower       UnitType = "power"
	UnitUnknown     UnitType = ""
)

// StandardizeUnit normalizes unit symbol variants to their canonical form:
// spelled-out resistance units become Ω, temperature units with qualifiers
// collapse to the bare degree symbol. Anything unrecognized passes through
// unchanged, including the empty string.
func StandardizeUnit(unit string) string {
	if unit == "" {
		return ""
	}
	if strings.Contains(unit, "°") {
		if strings.Contains(unit, "°C") {
			return "°C"
		}
		if strings.Contains(unit, "°F") {
			return "°F"
		}
	}
	if strings.HasPrefix(strings.ToLower(unit), "ohm") {
		return "Ω"
	}
	return unit
}

// UnitTypeOf classifies a (standardized or raw) unit string.
func UnitTypeOf(unit string) UnitType {
	switch StandardizeUnit(unit) {
	case "°C", "°F":
		return UnitTemperature
	case "Ω":
		return UnitResistance
	case "V", "VDC", "VAC", "mV":
		return UnitVoltage
	case "A", "mA", "Amp", "Amps":
		return UnitCurrent
	case "W", "mW":
		return UnitPower
	}
	return UnitUnknown
}
