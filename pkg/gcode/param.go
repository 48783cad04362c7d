package gcode

import (
	"strconv"
	"strings"
)

// Kind selects how a parameter value is rendered.
type Kind int

const (
	// KindNumber renders a real value with up to three decimals.
	KindNumber Kind = iota
	// KindInt renders a base-10 integer.
	KindInt
	// KindFlag renders the bare name when true and nothing when false.
	KindFlag
	// KindBool renders the name followed by 1 or 0.
	KindBool
	// KindText renders the name followed by the text verbatim.
	KindText
)

// String returns the lower-case kind name used in catalog files.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindInt:
		return "int"
	case KindFlag:
		return "flag"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name as produced by Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "number", "numeric", "float":
		return KindNumber, true
	case "int", "integer":
		return KindInt, true
	case "flag":
		return KindFlag, true
	case "bool", "boolean":
		return KindBool, true
	case "text", "string":
		return KindText, true
	}
	return 0, false
}

// Param is one named, optional command parameter.
// Only the field matching Kind is consulted.
type Param struct {
	Name string
	Kind Kind

	num  Opt[float64]
	i    Opt[int]
	b    Opt[bool]
	text Opt[string]
}

// Number returns a real-valued parameter.
func Number(name string, v Opt[float64]) Param {
	return Param{Name: name, Kind: KindNumber, num: v}
}

// Int returns an integer parameter.
func Int(name string, v Opt[int]) Param {
	return Param{Name: name, Kind: KindInt, i: v}
}

// Flag returns a presence-only parameter.
func Flag(name string, v Opt[bool]) Param {
	return Param{Name: name, Kind: KindFlag, b: v}
}

// Bool returns a 0/1 valued boolean parameter.
func Bool(name string, v Opt[bool]) Param {
	return Param{Name: name, Kind: KindBool, b: v}
}

// Text returns a free-text parameter. An empty name gives a bare string
// such as a filename or message.
func Text(name string, v Opt[string]) Param {
	return Param{Name: name, Kind: KindText, text: v}
}

// Present reports whether the parameter carries a value.
func (p Param) Present() bool {
	switch p.Kind {
	case KindNumber:
		return p.num.Present()
	case KindInt:
		return p.i.Present()
	case KindFlag, KindBool:
		return p.b.Present()
	case KindText:
		return p.text.Present()
	}
	return false
}

// token returns the text appended for p, including the leading space.
// An empty result means nothing is emitted.
func (p Param) token() string {
	switch p.Kind {
	case KindNumber:
		if v, ok := p.num.Get(); ok {
			return " " + p.Name + FormatNumber(v)
		}
	case KindInt:
		if v, ok := p.i.Get(); ok {
			return " " + p.Name + strconv.Itoa(v)
		}
	case KindFlag:
		if v, ok := p.b.Get(); ok && v {
			return " " + p.Name
		}
	case KindBool:
		if v, ok := p.b.Get(); ok {
			if v {
				return " " + p.Name + "1"
			}
			return " " + p.Name + "0"
		}
	case KindText:
		if v, ok := p.text.Get(); ok {
			return " " + p.Name + v
		}
	}
	return ""
}
