package warehouse

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Quantity is a numeric value from a configuration document.
//
// Configuration intake is deliberately permissive: JSON numbers, numeric
// strings, null, and the empty string are all accepted. Null, empty, and
// non-numeric values coerce to 0 instead of failing - this is intake
// permissiveness at the boundary, not a validation layer. Structural
// validation happens later in Config.Validate and the layout engine.
type Quantity float64

// Float64 returns the quantity as a plain float64.
func (q Quantity) Float64() float64 { return float64(q) }

// UnmarshalJSON accepts numbers, numeric strings, null, and empty strings.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*q = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*q = 0
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*q = 0
			return nil
		}
		*q = Quantity(f)
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(f)
	return nil
}

// MarshalJSON always emits a plain JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(q))
}
