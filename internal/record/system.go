package record

import "strings"

// UnitSystem selects which source columns and units populate a record's
// quantities. The zero value is invalid.
type UnitSystem int

const (
	SI UnitSystem = iota + 1
	Imperial
)

func (s UnitSystem) String() string {
	switch s {
	case SI:
		return "si"
	case Imperial:
		return "imperial"
	}
	return "invalid"
}

// Valid reports whether s is SI or Imperial.
func (s UnitSystem) Valid() bool {
	return s == SI || s == Imperial
}

// ParseUnitSystem accepts si, metric, imperial or us in any case.
func ParseUnitSystem(v string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "si", "metric":
		return SI, nil
	case "imperial", "us":
		return Imperial, nil
	}
	return 0, &InvalidUnitSystemError{Value: v}
}
