// Package program reads G-code programs written as YAML step lists and
// emits them through the catalog.
//
//	steps:
//	  - op: linear_move_and_extrude
//	    args: {x: 10, y: 20.005}
//	  - comment: just a note
//	  - raw: {letter: M, code: 117, text: Hello}
//	    comment: status
//
// A step names a catalog operation, a raw command, or neither; a comment
// alone produces a comment-only line.
package program

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	gerrors "gcodegen/pkg/errors"
	"gcodegen/pkg/gcode"
)

// Program is a decoded program file.
type Program struct {
	Source string `yaml:"-"`
	Steps  []Step `yaml:"steps"`
}

// Step is one entry of the steps list.
type Step struct {
	Op      string         `yaml:"op,omitempty"`
	Args    map[string]any `yaml:"args,omitempty"`
	Raw     *Raw           `yaml:"raw,omitempty"`
	Comment *string        `yaml:"comment,omitempty"`
}

// Raw spells out a command without going through the catalog.
//
// Params keep their file order. A number value emits a numeric parameter,
// true/false a valued boolean, a string named text, and an empty value a
// flag:
//
//	raw: {letter: G, code: 1, params: {X: 10, E: 0.5}}
//	raw: {letter: G, code: 28, params: {X: ~, Y: ~}}
type Raw struct {
	Letter string    `yaml:"letter"`
	Code   int       `yaml:"code"`
	Sub    *int      `yaml:"sub,omitempty"`
	Params yaml.Node `yaml:"params,omitempty"`
	Text   *string   `yaml:"text,omitempty"`
	Inline bool      `yaml:"inline,omitempty"`

	letter gcode.Letter
	parsed []gcode.Param
}

// Parse decodes a program. Unknown keys are errors.
func Parse(data []byte) (*Program, error) {
	return parse(bytes.NewReader(data), "<input>")
}

// Load reads and decodes the program at path.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gerrors.ProgramParseError(path, err)
	}
	defer f.Close()
	return parse(f, path)
}

func parse(r io.Reader, source string) (*Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	p := &Program{}
	if err := dec.Decode(p); err != nil && err != io.EOF {
		return nil, gerrors.ProgramParseError(source, err)
	}
	p.Source = source

	for i := range p.Steps {
		if err := p.Steps[i].check(); err != nil {
			return nil, gerrors.ProgramParseError(source, err).SetStep(i + 1)
		}
	}
	return p, nil
}

func (s *Step) check() error {
	switch {
	case s.Op != "" && s.Raw != nil:
		return fmt.Errorf("op and raw are mutually exclusive")
	case s.Op == "" && s.Raw == nil && s.Comment == nil:
		return fmt.Errorf("step needs op, raw or comment")
	case s.Op == "" && len(s.Args) > 0:
		return fmt.Errorf("args given without op")
	}
	if s.Args != nil {
		lower := make(map[string]any, len(s.Args))
		for k, v := range s.Args {
			lower[strings.ToLower(k)] = v
		}
		s.Args = lower
	}
	if s.Raw != nil {
		return s.Raw.check()
	}
	return nil
}

func (r *Raw) check() error {
	letter, ok := gcode.ParseLetter(r.Letter)
	if !ok {
		return fmt.Errorf("raw: unsupported letter %q", r.Letter)
	}
	r.letter = letter
	if r.Code < 0 {
		return fmt.Errorf("raw: code is negative")
	}
	if r.Params.Kind == 0 {
		return nil
	}
	if r.Params.Kind != yaml.MappingNode {
		return fmt.Errorf("raw: line %d: params must be a mapping", r.Params.Line)
	}
	for i := 0; i+1 < len(r.Params.Content); i += 2 {
		p, err := rawParam(r.Params.Content[i], r.Params.Content[i+1])
		if err != nil {
			return err
		}
		r.parsed = append(r.parsed, p)
	}
	return nil
}

func rawParam(key, val *yaml.Node) (gcode.Param, error) {
	name := key.Value
	if val.Kind != yaml.ScalarNode {
		return gcode.Param{}, fmt.Errorf("raw: line %d: param %s must be a scalar", val.Line, name)
	}
	switch val.Tag {
	case "!!null":
		return gcode.Flag(name, gcode.Some(true)), nil
	case "!!bool":
		var b bool
		if err := val.Decode(&b); err != nil {
			return gcode.Param{}, err
		}
		return gcode.Bool(name, gcode.Some(b)), nil
	case "!!int", "!!float":
		var f float64
		if err := val.Decode(&f); err != nil {
			return gcode.Param{}, err
		}
		return gcode.Number(name, gcode.Some(f)), nil
	default:
		return gcode.Text(name, gcode.Some(val.Value)), nil
	}
}

// Command builds the command a raw step describes.
func (r *Raw) Command(comment gcode.Opt[string]) gcode.Command {
	cmd := gcode.NewCommand(r.letter, r.Code, r.parsed...)
	cmd.SubCode = gcode.FromPtr(r.Sub)
	cmd.Comment = comment
	cmd.Inline = r.Inline
	if r.Text != nil {
		cmd.Params = append(cmd.Params, gcode.Text("", gcode.Some(*r.Text)))
	}
	return cmd
}
