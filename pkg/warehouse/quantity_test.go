package warehouse

import (
	"encoding/json"
	"testing"
)

func TestQuantityUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{`42`, 42},
		{`4.5`, 4.5},
		{`-3`, -3},
		{`"42"`, 42},
		{`"4.5"`, 4.5},
		{`" 12 "`, 12},
		{`""`, 0},
		{`null`, 0},
		{`"abc"`, 0}, // non-numeric coerces silently
		{`"12abc"`, 0},
	}

	for _, tt := range tests {
		var q Quantity
		if err := json.Unmarshal([]byte(tt.raw), &q); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", tt.raw, err)
			continue
		}
		if q.Float64() != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.raw, q.Float64(), tt.want)
		}
	}
}

func TestQuantityMarshal(t *testing.T) {
	data, err := json.Marshal(Quantity(4.5))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != "4.5" {
		t.Errorf("Marshal = %s, want 4.5", data)
	}
}

func TestQuantityInStruct(t *testing.T) {
	// Mixed string/number fields in one document, the way dashboard
	// submissions arrive.
	raw := `{"length": "30", "width": 20, "height": null, "unit": "m"}`

	var d Dimensions
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if d.Length != 30 || d.Width != 20 || d.Height != 0 {
		t.Errorf("got %+v, want length 30, width 20, height 0", d)
	}
	if d.Unit != "m" {
		t.Errorf("unit = %q, want m", d.Unit)
	}
}
