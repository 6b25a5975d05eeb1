// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// IntegerValue coerces a dynamically typed numeric argument into an int.
//
// Loosely typed sources (TOML/JSON decoders, CLI parsers) deliver numbers as
// int64 or float64; exponents and radii taken from them go through here so a
// fractional value is reported as a type error instead of being truncated.
//
// Accepted: every built-in signed and unsigned integer kind, and float32/float64
// values that are finite and integral (2.0 is accepted, 2.5 is not).
//
// Errors:
//   - ErrNotInteger (wraps ErrBadType) for any other kind or a fractional float.
//   - ErrBadValue when the value does not fit into int.
func IntegerValue(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, fmt.Errorf("%w: %d overflows int", ErrBadValue, n)
		}
		return int(n), nil
	case uint:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d overflows int", ErrBadValue, n)
		}
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d overflows int", ErrBadValue, n)
		}
		return int(n), nil
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrNotInteger, v)
	}
}

// floatToInt accepts only finite integral floats inside the int range.
func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: got %v", ErrNotInteger, f)
	}
	if f >= math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("%w: %v overflows int", ErrBadValue, f)
	}

	return int(f), nil
}
