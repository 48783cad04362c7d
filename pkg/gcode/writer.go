// Package gcode emits line-oriented machine-control command streams
// (G-code) for 3D printers and CNC mills.
//
// A Writer owns the output sink and remembers whether the current line is
// still empty. Encode renders one Command as "<Letter><Code>[.<Sub>]
// [ <Name><Value>]*[ ;<Comment>]" followed by a line break.
//
// A Writer is not safe for concurrent use. Callers that share a sink must
// serialize whole sequences of Encode calls themselves.
package gcode

import (
	"io"
	"strings"

	gerrors "gcodegen/pkg/errors"
)

// DefaultLineEnding terminates every emitted line unless overridden.
const DefaultLineEnding = "\n"

// Writer appends tokens to a sink and tracks line state.
type Writer struct {
	w          io.Writer
	lineEnding string
	lineStart  bool
	lines      int
	err        error
}

// Option configures a Writer.
type Option func(*Writer)

// WithLineEnding sets the line terminator, for example "\r\n".
func WithLineEnding(ending string) Option {
	return func(w *Writer) {
		if ending != "" {
			w.lineEnding = ending
		}
	}
}

// NewWriter returns a Writer appending to w. The caller keeps ownership of
// w and is responsible for flushing or closing it.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	gw := &Writer{
		w:          w,
		lineEnding: DefaultLineEnding,
		lineStart:  true,
	}
	for _, opt := range opts {
		opt(gw)
	}
	return gw
}

// AtLineStart reports whether nothing has been written since the last line
// break (or since the Writer was created).
func (w *Writer) AtLineStart() bool {
	return w.lineStart
}

// Lines returns the number of line breaks written so far.
func (w *Writer) Lines() int {
	return w.lines
}

// Err returns the first sink error, if any. Once set, every later call
// fails with the same error and writes nothing.
func (w *Writer) Err() error {
	return w.err
}

// WriteRaw appends text verbatim. The text is not validated.
func (w *Writer) WriteRaw(text string) error {
	if w.err != nil {
		return w.err
	}
	w.lineStart = false
	return w.write(text)
}

// EndLine terminates the current line. A present comment is written as
// ";comment", preceded by a single space when the line already has content.
func (w *Writer) EndLine(comment Opt[string]) error {
	if w.err != nil {
		return w.err
	}

	var sb strings.Builder
	if c, ok := comment.Get(); ok {
		if !w.lineStart {
			sb.WriteByte(' ')
		}
		sb.WriteByte(';')
		sb.WriteString(c)
	}
	sb.WriteString(w.lineEnding)

	err := w.write(sb.String())
	w.lineStart = true
	if err == nil {
		w.lines++
	}
	return err
}

// Encode writes c as one line. Absent parameters are skipped; the rest are
// written in the order given. An inline command is followed by a space
// instead of a line break and its comment is ignored.
func (w *Writer) Encode(c Command) error {
	if err := w.WriteRaw(c.tokens()); err != nil {
		return err
	}
	if c.Inline {
		return nil
	}
	return w.EndLine(c.Comment)
}

func (w *Writer) write(s string) error {
	if _, err := io.WriteString(w.w, s); err != nil {
		w.err = gerrors.SinkWriteError(err)
		return w.err
	}
	return nil
}
