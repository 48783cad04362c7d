package gcode

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// numberDecimals is the maximum number of digits after the decimal point.
const numberDecimals = 3

// FormatNumber renders v with at most three decimals, rounding half away
// from zero. Trailing zeros and a bare decimal point are dropped, so 10
// renders as "10" and 1.2345 as "1.235". Scientific notation is never used
// and negative zero renders as "0".
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// Round the shortest decimal representation rather than the binary
	// value, so 1.2345 rounds up the way it reads.
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		return strconv.FormatFloat(v, 'f', numberDecimals, 64)
	}
	s := r.FloatString(numberDecimals)

	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
