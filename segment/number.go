package segment

import (
	"errors"
	"strconv"
	"strings"
)

// ParseNumber reports whether s, ignoring surrounding white space, is a
// complete double-precision decimal number (optional sign, optional decimal
// point, optional exponent) and returns its value.
//
// Hexadecimal floats, digit separators ("1_000") and digit-less words such
// as "NaN" or "Inf" are not numbers here. Values beyond the float64 range parse as ±Inf.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !hasDigit(s) || isHex(s) || strings.ContainsRune(s, '_') {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}

		return 0, false
	}

	return f, true
}

// IsNumber reports whether ParseNumber accepts s.
func IsNumber(s string) bool {
	_, ok := ParseNumber(s)

	return ok
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")

	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, isDigit) >= 0
}
