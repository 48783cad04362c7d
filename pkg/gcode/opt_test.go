package gcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpt(t *testing.T) {
	var zero Opt[int]
	require.False(t, zero.Present())
	require.Equal(t, 7, zero.Or(7))

	v, ok := Some(3).Get()
	require.True(t, ok)
	require.Equal(t, 3, v)

	require.False(t, None[string]().Present())

	x := 2.5
	require.Equal(t, Some(2.5), FromPtr(&x))
	require.False(t, FromPtr[float64](nil).Present())
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindNumber, KindInt, KindFlag, KindBool, KindText} {
		got, ok := ParseKind(k.String())
		require.True(t, ok)
		require.Equal(t, k, got)
	}
	_, ok := ParseKind("vector")
	require.False(t, ok)
}

func TestParseLetter(t *testing.T) {
	l, ok := ParseLetter("m")
	require.True(t, ok)
	require.Equal(t, M, l)
	_, ok = ParseLetter("X")
	require.False(t, ok)
}

func TestParamPresent(t *testing.T) {
	require.True(t, Flag("X", Some(false)).Present())
	require.False(t, Flag("X", None[bool]()).Present())
	require.True(t, Text("", Some("")).Present())
}
