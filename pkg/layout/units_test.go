package layout

import (
	"math"
	"testing"

	"github.com/palletlab/warevis/pkg/errors"
)

func TestToCentimeters(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  float64
	}{
		{1, "cm", 1},
		{1, "mm", 0.1},
		{1, "m", 100},
		{1, "km", 100000},
		{1, "in", 2.54},
		{1, "ft", 30.48},
		{1, "yd", 91.44},
		{1, "mi", 160934.4},
		{2.5, "m", 250},
		{0, "ft", 0},
		{-3, "m", -300},
		{1, "M", 100},    // case-insensitive
		{1, " cm ", 1},   // whitespace tolerated
	}

	for _, tt := range tests {
		got, err := ToCentimeters(tt.value, tt.unit)
		if err != nil {
			t.Errorf("ToCentimeters(%v, %q) error: %v", tt.value, tt.unit, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ToCentimeters(%v, %q) = %v, want %v", tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestToCentimetersUnsupported(t *testing.T) {
	for _, unit := range []string{"", "furlong", "cm2", "meters"} {
		_, err := ToCentimeters(1, unit)
		if err == nil {
			t.Errorf("ToCentimeters(1, %q) should fail", unit)
			continue
		}
		if !errors.Is(err, errors.ErrCodeUnsupportedUnit) {
			t.Errorf("ToCentimeters(1, %q) code = %q, want UNSUPPORTED_UNIT", unit, errors.GetCode(err))
		}
	}
}

func TestToCentimetersRoundTrip(t *testing.T) {
	// to_cm(to_cm(v, m) / 100, m) == v for representative values.
	for _, v := range []float64{0, 1, 0.5, 42, 1234.5678} {
		cm, err := ToCentimeters(v, "m")
		if err != nil {
			t.Fatalf("ToCentimeters: %v", err)
		}
		back, err := ToCentimeters(cm/100, "m")
		if err != nil {
			t.Fatalf("ToCentimeters: %v", err)
		}
		if math.Abs(back-cm) > 1e-9 {
			t.Errorf("round trip of %v via m: got %v, want %v", v, back, cm)
		}
	}

	// cm is the identity.
	for _, v := range []float64{0, 1, -7.25, 99999} {
		got, err := ToCentimeters(v, "cm")
		if err != nil {
			t.Fatalf("ToCentimeters: %v", err)
		}
		if got != v {
			t.Errorf("ToCentimeters(%v, cm) = %v, want identity", v, got)
		}
	}
}

func TestSupportedUnits(t *testing.T) {
	units := SupportedUnits()
	if len(units) != len(conversionFactors) {
		t.Fatalf("SupportedUnits returned %d units, want %d", len(units), len(conversionFactors))
	}
	for i := 1; i < len(units); i++ {
		if units[i-1] >= units[i] {
			t.Fatalf("SupportedUnits not sorted: %v", units)
		}
	}
}
