package gcode

import "io"

// Program accumulates commands and writes them out in one pass.
type Program struct {
	cmds []Command
	opts []Option
}

// NewProgram returns an empty program. opts are applied to the Writer used
// by WriteTo.
func NewProgram(opts ...Option) *Program {
	return &Program{opts: opts}
}

// Add appends commands and returns p for chaining.
func (p *Program) Add(cmds ...Command) *Program {
	p.cmds = append(p.cmds, cmds...)
	return p
}

// Len returns the number of queued commands.
func (p *Program) Len() int {
	return len(p.cmds)
}

// Commands returns the queued commands.
func (p *Program) Commands() []Command {
	return p.cmds
}

// Reset drops all queued commands.
func (p *Program) Reset() {
	p.cmds = p.cmds[:0]
}

// WriteTo encodes every queued command to w in order. It stops at the
// first write error.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	gw := NewWriter(cw, p.opts...)
	for _, c := range p.cmds {
		if err := gw.Encode(c); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}
