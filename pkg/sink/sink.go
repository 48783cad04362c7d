// Package sink opens the destination a G-code stream is written to.
//
// A path of "" or "-" means standard output. Files are locked exclusively
// while open so two generators cannot interleave lines in one file.
package sink

import (
	"bufio"
	"errors"
	"io"
	"os"

	gerrors "gcodegen/pkg/errors"
)

// ErrLocked is returned when another process holds the output file.
var ErrLocked = errors.New("sink: file is locked by another process")

// Sink is a buffered text destination.
type Sink struct {
	path string
	file *os.File // nil for stdout
	buf  *bufio.Writer
}

// Stdout returns a sink writing to w without owning it.
func Stdout(w io.Writer) *Sink {
	return &Sink{path: "-", buf: bufio.NewWriter(w)}
}

// Open creates or truncates path and locks it for the lifetime of the Sink.
func Open(path string) (*Sink, error) {
	if path == "" || path == "-" {
		return Stdout(os.Stdout), nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, gerrors.SinkOpenError(path, err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, gerrors.SinkOpenError(path, err)
	}
	// Truncate only once the lock is held.
	if err := f.Truncate(0); err != nil {
		unlockFile(f)
		f.Close()
		return nil, gerrors.SinkOpenError(path, err)
	}
	return &Sink{path: path, file: f, buf: bufio.NewWriter(f)}, nil
}

// Path returns the destination path, "-" for standard output.
func (s *Sink) Path() string {
	return s.path
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Flush pushes buffered text to the destination.
func (s *Sink) Flush() error {
	if err := s.buf.Flush(); err != nil {
		return gerrors.SinkWriteError(err)
	}
	return nil
}

// Close flushes and, for files, releases the lock and closes the file.
func (s *Sink) Close() error {
	err := s.Flush()
	if s.file == nil {
		return err
	}
	unlockFile(s.file)
	if cerr := s.file.Close(); cerr != nil && err == nil {
		err = gerrors.SinkWriteError(cerr)
	}
	s.file = nil
	return err
}
