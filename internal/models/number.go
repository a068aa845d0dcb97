package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a monetary or quantity value as it crosses the form boundary.
// Unmarshalling never fails: a JSON number or numeric string is accepted,
// anything else (empty, garbage, null, wrong type) coerces to exactly 0.
// The edit is still applied, as 0, rather than rejected — form fields are
// normalized, not validated.
type Number float64

// UnmarshalJSON implements the coerce-to-zero policy.
func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(clampNumber(f))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = Number(ParseNumber(s))
		return nil
	}
	*n = 0
	return nil
}

func (n Number) normalized() Number {
	return Number(clampNumber(float64(n)))
}

// ParseNumber coerces free-form numeric input to a non-negative float.
// Empty, unparseable, non-finite, or negative input yields exactly 0, so
// the arithmetic downstream stays total. Coercing an already-valid number
// is a no-op.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return clampNumber(f)
}

func clampNumber(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
