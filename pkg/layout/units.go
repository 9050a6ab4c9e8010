package layout

import (
	"sort"
	"strings"

	"github.com/palletlab/warevis/pkg/errors"
)

// conversionFactors maps supported unit strings to their centimeter factor.
var conversionFactors = map[string]float64{
	"mm": 0.1,
	"cm": 1,
	"m":  100,
	"km": 100000,
	"in": 2.54,
	"ft": 30.48,
	"yd": 91.44,
	"mi": 160934.4,
}

// ToCentimeters converts value from the given unit to centimeters.
//
// Unit matching is case-insensitive. An unknown unit fails with
// UNSUPPORTED_UNIT rather than silently assuming centimeters - downstream
// geometry would otherwise be wrong with no signal. (Parts of the original
// implementation fell back to a factor of 1.0; the fail behavior is the
// standardized contract here.)
func ToCentimeters(value float64, unit string) (float64, error) {
	factor, ok := conversionFactors[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnsupportedUnit, "unsupported unit: %q", unit)
	}
	return value * factor, nil
}

// SupportedUnits returns the known unit names in sorted order.
func SupportedUnits() []string {
	units := make([]string, 0, len(conversionFactors))
	for u := range conversionFactors {
		units = append(units, u)
	}
	sort.Strings(units)
	return units
}

// unitOr returns unit, or fallback when unit is empty. Configs validated at
// the API boundary always carry units, but the engine stays safe for direct
// library callers that skip ApplyDefaults.
func unitOr(unit, fallback string) string {
	if unit == "" {
		return fallback
	}
	return unit
}
