package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gcodegen/pkg/catalog"
)

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name    string
		head    string
		pairs   []string
		flags   []string
		hasText bool
		text    string
		want    string
	}{
		{"move", "G1", []string{"X=10", "Y=20.005"}, nil, false, "", "G1 X10 Y20.005\n"},
		{"flags", "G28", nil, []string{"X"}, false, "", "G28 X\n"},
		{"text", "m117", nil, nil, true, "Hello", "M117 Hello\n"},
		{"sub-code", "G38.2", []string{"Z=-5"}, nil, false, "", "G38.2 Z-5\n"},
		{"valued bool", "M106", []string{"P=true", "Q=false"}, nil, false, "", "M106 P1 Q0\n"},
		{"named text", "M118", []string{"A=b"}, nil, false, "", "M118 Ab\n"},
		{"tool", "T0", nil, nil, false, "", "T0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := buildCommand(tt.head, tt.pairs, tt.flags, tt.hasText, tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, c.String())
		})
	}
}

func TestBuildCommandErrors(t *testing.T) {
	for _, head := range []string{"", "G", "Q1", "Gx", "G-1", "G38.x"} {
		_, err := buildCommand(head, nil, nil, false, "")
		require.Error(t, err, head)
	}
	_, err := buildCommand("G1", []string{"X10"}, nil, false, "")
	require.Error(t, err)
	_, err = buildCommand("G1", []string{"=10"}, nil, false, "")
	require.Error(t, err)
}

func TestListCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listCatalog(&buf, catalog.Default()))
	require.Contains(t, buf.String(), "auto_home")
	require.Contains(t, buf.String(), "G28 [L] [O] [R] [X] [Y] [Z]")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Reset flag-bound globals between runs.
	outputPath, configPath, catalogPaths, crlf, showMetrics = "-", "", nil, false, false
	encodeFlags, encodeText, encodeComment = nil, "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	got, err := execute(t, "encode", "M117", "--text", "Hello", "--comment", "status")
	require.NoError(t, err)
	require.Equal(t, "M117 Hello ;status\n", got)
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "job.yaml")
	cfg := filepath.Join(dir, "gcodegen.cfg")
	out := filepath.Join(dir, "out.gcode")

	require.NoError(t, os.WriteFile(prog, []byte(`
steps:
  - op: purge_line
    args: {e: 5}
  - op: auto_home
    args: {x: true}
`), 0o644))
	require.NoError(t, os.WriteFile(cfg, []byte(`
[output]
line_ending: crlf

[command purge_line]
letter: G
code: 1
params: X:number, E:number!
`), 0o644))

	_, err := execute(t, "run", prog, "--config", cfg, "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "G1 E5\r\nG28 X\r\n", string(data))
}
