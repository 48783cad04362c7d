package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	gerrors "gcodegen/pkg/errors"
)

func TestStdoutBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	s := Stdout(&buf)

	_, err := s.Write([]byte("G28\n"))
	require.NoError(t, err)
	require.Empty(t, buf.String())

	require.NoError(t, s.Close())
	require.Equal(t, "G28\n", buf.String())
	require.Equal(t, "-", s.Path())
}

func TestOpenDash(t *testing.T) {
	s, err := Open("-")
	require.NoError(t, err)
	require.Equal(t, "-", s.Path())
}

func TestOpenTruncatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gcode")
	require.NoError(t, os.WriteFile(path, []byte("old contents that are long\n"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Write([]byte("M84\n"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "M84\n", string(data))
}

func TestOpenMissingDir(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope", "out.gcode"))
	require.Error(t, err)
	require.True(t, gerrors.Is(err, gerrors.ErrSinkOpen))
}

func TestOpenLocked(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("advisory locks not implemented on " + runtime.GOOS)
	}
	path := filepath.Join(t.TempDir(), "out.gcode")

	first, err := Open(path)
	require.NoError(t, err)

	_, err = Open(path)
	require.ErrorIs(t, err, ErrLocked)

	require.NoError(t, first.Close())
	second, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}
