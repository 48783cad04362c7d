package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	gerrors "gcodegen/pkg/errors"
	"gcodegen/pkg/gcode"
)

// ParamSpec declares one parameter of an operation.
type ParamSpec struct {
	// Key is the argument name callers use. Unique within a Definition.
	Key string
	// Name is the emitted token, e.g. "X" or "B1". Empty for a bare string.
	Name     string
	Kind     gcode.Kind
	Required bool
}

func newSpec(name string, kind gcode.Kind) ParamSpec {
	return ParamSpec{Key: strings.ToLower(name), Name: name, Kind: kind}
}

func num(name string) ParamSpec     { return newSpec(name, gcode.KindNumber) }
func integer(name string) ParamSpec { return newSpec(name, gcode.KindInt) }
func flag(name string) ParamSpec    { return newSpec(name, gcode.KindFlag) }
func boolean(name string) ParamSpec { return newSpec(name, gcode.KindBool) }
func text(name string) ParamSpec    { return newSpec(name, gcode.KindText) }

// bare declares an unnamed trailing string such as a filename.
func bare(key string) ParamSpec {
	return ParamSpec{Key: key, Kind: gcode.KindText}
}

func (p ParamSpec) as(key string) ParamSpec {
	p.Key = key
	return p
}

func (p ParamSpec) required() ParamSpec {
	p.Required = true
	return p
}

// usage renders p for listings, e.g. "[X<number>]" or "<filename>".
func (p ParamSpec) usage() string {
	var s string
	switch {
	case p.Kind == gcode.KindFlag:
		s = p.Name
	case p.Name == "":
		s = "<" + p.Key + ">"
	default:
		s = p.Name + "<" + p.Kind.String() + ">"
	}
	if !p.Required {
		s = "[" + s + "]"
	}
	return s
}

// Args holds call-time argument values keyed by ParamSpec.Key. A missing
// key or a nil value means absent.
type Args map[string]any

// Definition is one catalog operation: a fixed command head and an ordered
// parameter list.
type Definition struct {
	Name    string
	Summary string
	Letter  gcode.Letter
	Code    int
	SubCode gcode.Opt[int]
	Params  []ParamSpec

	// SubCodeArg names a required integer argument supplying the sub-code.
	SubCodeArg string

	// SelectArg names a required integer argument passed to Select, which
	// chooses the code and sub-code.
	SelectArg string
	Select    func(n int) (code int, sub gcode.Opt[int])

	// Inline leaves the line open so the next command follows on it.
	Inline bool
}

// Head returns the command head for display. Operations whose sub-code or
// code is chosen per call show a placeholder.
func (d Definition) Head() string {
	switch {
	case d.SelectArg != "":
		return string(d.Letter) + "<" + d.SelectArg + ">"
	case d.SubCodeArg != "":
		return string(d.Letter) + strconv.Itoa(d.Code) + ".<" + d.SubCodeArg + ">"
	}
	return gcode.Command{Letter: d.Letter, Code: d.Code, SubCode: d.SubCode}.Head()
}

// Usage renders the head followed by every parameter.
func (d Definition) Usage() string {
	parts := []string{d.Head()}
	for _, p := range d.Params {
		parts = append(parts, p.usage())
	}
	return strings.Join(parts, " ")
}

// Validate checks the declaration itself.
func (d Definition) Validate() error {
	if d.Name == "" {
		return gerrors.DefinitionError(d.Name, "name is empty")
	}
	if _, ok := gcode.ParseLetter(string(d.Letter)); !ok {
		return gerrors.DefinitionError(d.Name, fmt.Sprintf("unsupported letter %q", d.Letter))
	}
	if d.Code < 0 {
		return gerrors.DefinitionError(d.Name, "code is negative")
	}
	if (d.SelectArg == "") != (d.Select == nil) {
		return gerrors.DefinitionError(d.Name, "select argument and select function go together")
	}
	keys := make(map[string]bool, len(d.Params)+2)
	for _, k := range []string{d.SubCodeArg, d.SelectArg} {
		if k != "" {
			keys[k] = true
		}
	}
	for _, p := range d.Params {
		if p.Key == "" {
			return gerrors.DefinitionError(d.Name, "parameter without key")
		}
		if keys[p.Key] {
			return gerrors.DefinitionError(d.Name, fmt.Sprintf("duplicate parameter key '%s'", p.Key))
		}
		keys[p.Key] = true
		switch p.Kind {
		case gcode.KindNumber, gcode.KindInt, gcode.KindFlag, gcode.KindBool:
			if p.Name == "" {
				return gerrors.DefinitionError(d.Name, fmt.Sprintf("parameter '%s' of kind %s needs a name", p.Key, p.Kind))
			}
		case gcode.KindText:
		default:
			return gerrors.DefinitionError(d.Name, fmt.Sprintf("parameter '%s' has unknown kind", p.Key))
		}
	}
	return nil
}

// Bind checks args against the declaration and builds the command.
func (d Definition) Bind(args Args, comment gcode.Opt[string]) (gcode.Command, error) {
	known := make(map[string]bool, len(d.Params)+2)
	for _, p := range d.Params {
		known[p.Key] = true
	}
	if d.SubCodeArg != "" {
		known[d.SubCodeArg] = true
	}
	if d.SelectArg != "" {
		known[d.SelectArg] = true
	}
	for k := range args {
		if !known[k] {
			return gcode.Command{}, gerrors.ArgumentError(d.Name, k, "unknown argument")
		}
	}

	cmd := gcode.Command{
		Letter:  d.Letter,
		Code:    d.Code,
		SubCode: d.SubCode,
		Comment: comment,
		Inline:  d.Inline,
		Params:  make([]gcode.Param, 0, len(d.Params)),
	}

	if d.SubCodeArg != "" {
		v, err := requiredInt(d.Name, d.SubCodeArg, args)
		if err != nil {
			return gcode.Command{}, err
		}
		cmd.SubCode = gcode.Some(v)
	}
	if d.SelectArg != "" {
		v, err := requiredInt(d.Name, d.SelectArg, args)
		if err != nil {
			return gcode.Command{}, err
		}
		cmd.Code, cmd.SubCode = d.Select(v)
	}

	for _, p := range d.Params {
		param, err := bindParam(d.Name, p, args[p.Key])
		if err != nil {
			return gcode.Command{}, err
		}
		cmd.Params = append(cmd.Params, param)
	}
	return cmd, nil
}

func requiredInt(op, key string, args Args) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, gerrors.ArgumentError(op, key, "required")
	}
	n, ok := toInt(v)
	if !ok {
		return 0, gerrors.ArgumentError(op, key, fmt.Sprintf("expected int, got %T", v))
	}
	return n, nil
}

func bindParam(op string, p ParamSpec, v any) (gcode.Param, error) {
	if v == nil {
		if p.Required {
			return gcode.Param{}, gerrors.ArgumentError(op, p.Key, "required")
		}
		return absent(p), nil
	}
	mismatch := func() error {
		return gerrors.ArgumentError(op, p.Key, fmt.Sprintf("expected %s, got %T", p.Kind, v))
	}

	switch p.Kind {
	case gcode.KindNumber:
		f, ok := toFloat(v)
		if !ok {
			return gcode.Param{}, mismatch()
		}
		return gcode.Number(p.Name, gcode.Some(f)), nil
	case gcode.KindInt:
		n, ok := toInt(v)
		if !ok {
			return gcode.Param{}, mismatch()
		}
		return gcode.Int(p.Name, gcode.Some(n)), nil
	case gcode.KindFlag:
		b, ok := v.(bool)
		if !ok {
			return gcode.Param{}, mismatch()
		}
		return gcode.Flag(p.Name, gcode.Some(b)), nil
	case gcode.KindBool:
		b, ok := v.(bool)
		if !ok {
			return gcode.Param{}, mismatch()
		}
		return gcode.Bool(p.Name, gcode.Some(b)), nil
	case gcode.KindText:
		s, ok := toText(v)
		if !ok {
			return gcode.Param{}, mismatch()
		}
		return gcode.Text(p.Name, gcode.Some(s)), nil
	}
	return gcode.Param{}, mismatch()
}

func absent(p ParamSpec) gcode.Param {
	switch p.Kind {
	case gcode.KindNumber:
		return gcode.Number(p.Name, gcode.None[float64]())
	case gcode.KindInt:
		return gcode.Int(p.Name, gcode.None[int]())
	case gcode.KindFlag:
		return gcode.Flag(p.Name, gcode.None[bool]())
	case gcode.KindBool:
		return gcode.Bool(p.Name, gcode.None[bool]())
	}
	return gcode.Text(p.Name, gcode.None[string]())
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}
	if n, ok := toInt(v); ok {
		return float64(n), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int(x), true
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > 1<<53 {
			return 0, false
		}
		return int(x), true
	case float32:
		return toInt(float64(x))
	}
	return 0, false
}

func toText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return gcode.FormatNumber(x), true
	}
	if n, ok := toInt(v); ok {
		return strconv.Itoa(n), true
	}
	return "", false
}

// selectWorkspace maps coordinate systems 1..6 to G54..G59 and any other
// system n to G59.<n-6>.
func selectWorkspace(n int) (int, gcode.Opt[int]) {
	if n >= 1 && n <= 6 {
		return 53 + n, gcode.None[int]()
	}
	return 59, gcode.Some(n - 6)
}
