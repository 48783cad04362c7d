package gcode

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{-10, "-10"},
		{1.5, "1.5"},
		{1.2345, "1.235"},
		{-1.2345, "-1.235"},
		{20.005, "20.005"},
		{0.1, "0.1"},
		{0.0004, "0"},
		{0.0005, "0.001"},
		{-0.0004, "0"},
		{math.Copysign(0, -1), "0"},
		{2.9999, "3"},
		{99.9995, "100"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0"},
		{123456.789, "123456.789"},
		{0.125, "0.125"},
		{1.0005, "1.001"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestFormatNumberNonFinite(t *testing.T) {
	require.Equal(t, "NaN", FormatNumber(math.NaN()))
	require.Equal(t, "+Inf", FormatNumber(math.Inf(1)))
	require.Equal(t, "-Inf", FormatNumber(math.Inf(-1)))
}

func TestFormatNumberRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 0.3333333, 2.0 / 3.0, 1.2345, 20.005, 99.9995, -0.0015, 12345.6785, 1e15 + 0.5}
	for _, v := range values {
		first := FormatNumber(v)
		parsed, err := strconv.ParseFloat(first, 64)
		require.NoError(t, err)
		require.Equal(t, first, FormatNumber(parsed), "value %v", v)
	}
}

func TestFormatNumberNoExponent(t *testing.T) {
	for _, v := range []float64{1e-10, 1e20, -3e25, 5e-4} {
		require.NotContains(t, FormatNumber(v), "e")
	}
}
