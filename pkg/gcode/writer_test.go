package gcode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	gerrors "gcodegen/pkg/errors"
)

func encode(t *testing.T, cmds ...Command) string {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, c := range cmds {
		require.NoError(t, w.Encode(c))
	}
	return buf.String()
}

func TestEncodeScenarios(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "linear move",
			cmd:  NewCommand(G, 1, Number("X", Some(10.0)), Number("Y", Some(20.005))),
			want: "G1 X10 Y20.005\n",
		},
		{
			name: "home with flags",
			cmd:  NewCommand(G, 28, Flag("X", Some(true)), Flag("Y", Some(false)), Flag("Z", None[bool]())),
			want: "G28 X\n",
		},
		{
			name: "lcd message",
			cmd:  NewCommand(M, 117, Text("", Some("Hello"))).WithComment("status"),
			want: "M117 Hello ;status\n",
		},
		{
			name: "tool select",
			cmd:  NewCommand(T, 0).WithComment("home"),
			want: "T0 ;home\n",
		},
		{
			name: "bare command",
			cmd:  NewCommand(G, 90),
			want: "G90\n",
		},
		{
			name: "sub-code",
			cmd:  NewCommand(G, 38, Number("Z", Some(-5.0))).WithSubCode(2),
			want: "G38.2 Z-5\n",
		},
		{
			name: "valued booleans",
			cmd:  NewCommand(M, 211, Bool("S", Some(false)), Bool("T", Some(true))),
			want: "M211 S0 T1\n",
		},
		{
			name: "integers",
			cmd:  NewCommand(M, 106, Int("P", Some(0)), Int("S", Some(255))),
			want: "M106 P0 S255\n",
		},
		{
			name: "named text",
			cmd:  NewCommand(M, 511, Text("P", Some("1234"))),
			want: "M511 P1234\n",
		},
		{
			name: "two letter names",
			cmd:  NewCommand(M, 118, Flag("A1", Some(true)), Int("Pn", Some(2)), Text("", Some("hi"))),
			want: "M118 A1 Pn2 hi\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, encode(t, tt.cmd))
			require.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestZeroParamsNoComment(t *testing.T) {
	for _, letter := range []Letter{G, M, T} {
		for _, code := range []int{0, 1, 28, 117, 7219} {
			c := NewCommand(letter, code)
			require.Equal(t, c.Head()+"\n", encode(t, c))
		}
	}
}

func TestFalseFlagMatchesAbsent(t *testing.T) {
	withFalse := encode(t, NewCommand(M, 17, Flag("E", Some(false)), Flag("X", Some(true))))
	withAbsent := encode(t, NewCommand(M, 17, Flag("E", None[bool]()), Flag("X", Some(true))))
	require.Equal(t, withAbsent, withFalse)
	require.Equal(t, "M17 X\n", withFalse)
}

func TestAbsentParamsDropOut(t *testing.T) {
	full := NewCommand(G, 0,
		Number("F", Some(1500.0)),
		Number("X", None[float64]()),
		Int("S", None[int]()),
		Bool("B", None[bool]()),
		Text("", None[string]()),
		Number("Y", Some(3.0)),
	)
	trimmed := NewCommand(G, 0, Number("F", Some(1500.0)), Number("Y", Some(3.0)))
	require.Equal(t, encode(t, trimmed), encode(t, full))
	require.Equal(t, "G0 F1500 Y3\n", encode(t, full))
}

func TestEndLineCommentSpacing(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.True(t, w.AtLineStart())

	require.NoError(t, w.EndLine(Some("only a comment")))
	require.True(t, w.AtLineStart())

	require.NoError(t, w.WriteRaw("G1 X1"))
	require.False(t, w.AtLineStart())
	require.NoError(t, w.EndLine(Some("after tokens")))

	require.NoError(t, w.EndLine(None[string]()))
	require.NoError(t, w.WriteRaw("G4"))
	require.NoError(t, w.EndLine(None[string]()))

	require.Equal(t, ";only a comment\nG1 X1 ;after tokens\n\nG4\n", buf.String())
	require.Equal(t, 4, w.Lines())
}

func TestWriteRawEmptyClearsLineStart(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteRaw(""))
	require.False(t, w.AtLineStart())
	require.NoError(t, w.EndLine(Some("c")))
	require.Equal(t, " ;c\n", buf.String())
}

func TestInlineCommand(t *testing.T) {
	prefix := NewCommand(G, 53)
	prefix.Inline = true
	prefix.Comment = Some("ignored")
	move := NewCommand(G, 0, Number("X", Some(10.0))).WithComment("machine coords")

	require.Equal(t, "G53 G0 X10 ;machine coords\n", encode(t, prefix, move))
}

func TestLineEnding(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, WithLineEnding("\r\n"))
	require.NoError(t, w.Encode(NewCommand(G, 21)))
	require.NoError(t, w.Encode(NewCommand(G, 90).WithComment("abs")))
	require.Equal(t, "G21\r\nG90 ;abs\r\n", buf.String())
}

type failingWriter struct {
	okWrites int
	writes   int
}

var errDiskFull = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	if f.writes > f.okWrites {
		return 0, errDiskFull
	}
	return len(p), nil
}

func TestSinkErrorPropagates(t *testing.T) {
	fw := &failingWriter{okWrites: 1}
	w := NewWriter(fw)

	err := w.Encode(NewCommand(G, 1, Number("X", Some(1.0))))
	require.Error(t, err)
	require.ErrorIs(t, err, errDiskFull)
	require.True(t, gerrors.Is(err, gerrors.ErrSinkWrite))
	require.Equal(t, err, w.Err())

	// The writer stays failed and does not touch the sink again.
	writes := fw.writes
	require.ErrorIs(t, w.WriteRaw("G0"), errDiskFull)
	require.ErrorIs(t, w.EndLine(None[string]()), errDiskFull)
	require.Equal(t, writes, fw.writes)
}

func TestMultiLineProgram(t *testing.T) {
	out := encode(t,
		NewCommand(G, 21).WithComment("millimeters"),
		NewCommand(G, 90),
		NewCommand(G, 28, Flag("X", Some(true)), Flag("Y", Some(true))),
		NewCommand(G, 1, Number("X", Some(10.0)), Number("Y", Some(10.0)), Number("F", Some(3000.0))),
		NewCommand(M, 84),
	)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Equal(t, []string{
		"G21 ;millimeters",
		"G90",
		"G28 X Y",
		"G1 X10 Y10 F3000",
		"M84",
	}, lines)
}
