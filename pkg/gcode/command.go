package gcode

import (
	"strconv"
	"strings"
)

// Letter is the namespace prefix of a command family.
type Letter string

const (
	// G is the general motion namespace.
	G Letter = "G"
	// M is the machine / miscellaneous namespace.
	M Letter = "M"
	// T is the tool-select namespace.
	T Letter = "T"
)

// ParseLetter accepts "G", "M" or "T" in either case.
func ParseLetter(s string) (Letter, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "G":
		return G, true
	case "M":
		return M, true
	case "T":
		return T, true
	}
	return "", false
}

// Command describes one line to emit. It is built, encoded and discarded.
type Command struct {
	Letter  Letter
	Code    int
	SubCode Opt[int]
	Params  []Param
	Comment Opt[string]

	// Inline leaves the line open after the command so that the next one
	// follows on the same line, as in "G53 G0 X10".
	Inline bool
}

// NewCommand returns a command with the given namespace, code and params.
func NewCommand(letter Letter, code int, params ...Param) Command {
	return Command{Letter: letter, Code: code, Params: params}
}

// WithSubCode returns a copy of c with sub-code sub.
func (c Command) WithSubCode(sub int) Command {
	c.SubCode = Some(sub)
	return c
}

// WithComment returns a copy of c carrying a trailing comment.
func (c Command) WithComment(comment string) Command {
	c.Comment = Some(comment)
	return c
}

// Head returns the "<Letter><Code>[.<Sub>]" part of c.
func (c Command) Head() string {
	s := string(c.Letter) + strconv.Itoa(c.Code)
	if sub, ok := c.SubCode.Get(); ok {
		s += "." + strconv.Itoa(sub)
	}
	return s
}

func (c Command) tokens() string {
	var sb strings.Builder
	sb.WriteString(c.Head())
	for _, p := range c.Params {
		sb.WriteString(p.token())
	}
	if c.Inline {
		sb.WriteByte(' ')
	}
	return sb.String()
}

// String renders c on a fresh stream, including the trailing line break.
func (c Command) String() string {
	var sb strings.Builder
	_ = NewWriter(&sb).Encode(c)
	return sb.String()
}
