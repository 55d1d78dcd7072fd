package element

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue converts text (flag arguments, grok captures) into a typed value.
// Booleans and finite numbers are recognized; anything else, including
// "NaN" and "Inf", stays a string.
func ParseValue(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if f, ok := parseFinite(s); ok {
		return f
	}
	return s
}

// parseFinite parses s as a number, rejecting NaN and infinities.
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Equal reports whether two scalar values are equal.
// Numeric strings compare equal to the number they spell.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	c, ok := Compare(a, b)
	return ok && c == 0
}

// Compare orders two scalar values. The bool result is false when the
// values are not comparable (e.g. a bool and a string).
//
// Numbers compare numerically, strings lexically, and false < true.
// A string spelling a finite number compares numerically against a number.
// NaN is not comparable to anything.
func Compare(a, b any) (int, bool) {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return compareFloat(fa, fb)
		}
		if sb, ok := b.(string); ok {
			if fb, ok := parseFinite(sb); ok {
				return compareFloat(fa, fb)
			}
		}
		return 0, false
	}

	switch av := a.(type) {
	case string:
		switch bv := b.(type) {
		case string:
			return strings.Compare(av, bv), true
		default:
			if fb, ok := toFloat(b); ok {
				if fa, ok := parseFinite(av); ok {
					return compareFloat(fa, fb)
				}
			}
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0, true
			case !av:
				return -1, true
			default:
				return 1, true
			}
		}
	}
	return 0, false
}

func compareFloat(a, b float64) (int, bool) {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return 0, false
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
