package types

import (
	"fmt"
	"math"
	"strconv"
)

// Float is a float64 whose JSON form spells NaN and ±Inf as the strings
// "NaN", "+Inf" and "-Inf". Plain numbers round-trip unchanged.
type Float float64

// MarshalJSON implements json.Marshaler
func (f Float) MarshalJSON() ([]byte, error) {
	x := float64(f)
	if s, ok := nonFiniteName(x); ok {
		return []byte(strconv.Quote(s)), nil
	}
	return strconv.AppendFloat(nil, x, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (f *Float) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid number %s", s)
		}
		x, ok := ParseNonFinite(unquoted)
		if !ok {
			return fmt.Errorf("invalid number %q: only NaN, +Inf and -Inf may be quoted", unquoted)
		}
		*f = Float(x)
		return nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s", s)
	}
	*f = Float(x)
	return nil
}

// ParseNonFinite reads the string forms of NaN and ±Inf
func ParseNonFinite(s string) (float64, bool) {
	switch s {
	case "NaN":
		return math.NaN(), true
	case "+Inf", "Inf":
		return math.Inf(1), true
	case "-Inf":
		return math.Inf(-1), true
	default:
		return 0, false
	}
}

// JSONFloat returns x unchanged when finite and its string form otherwise.
// Use it for every float placed in Result.Data.
func JSONFloat(x float64) interface{} {
	if s, ok := nonFiniteName(x); ok {
		return s
	}
	return x
}

// JSONFloats applies JSONFloat to each element
func JSONFloats(xs []float64) []interface{} {
	out := make([]interface{}, len(xs))
	for i, x := range xs {
		out[i] = JSONFloat(x)
	}
	return out
}

func nonFiniteName(x float64) (string, bool) {
	switch {
	case math.IsNaN(x):
		return "NaN", true
	case math.IsInf(x, 1):
		return "+Inf", true
	case math.IsInf(x, -1):
		return "-Inf", true
	default:
		return "", false
	}
}
