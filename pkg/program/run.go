package program

import (
	"gcodegen/pkg/catalog"
	gerrors "gcodegen/pkg/errors"
	"gcodegen/pkg/gcode"
	"gcodegen/pkg/log"
	"gcodegen/pkg/metrics"
)

// RunOption configures Run.
type RunOption func(*runner)

type runner struct {
	log     *log.Logger
	metrics *metrics.RunMetrics
}

// WithLogger logs each step at DEBUG to l.
func WithLogger(l *log.Logger) RunOption {
	return func(r *runner) { r.log = l }
}

// WithMetrics counts lines, operations and failures into m.
func WithMetrics(m *metrics.RunMetrics) RunOption {
	return func(r *runner) { r.metrics = m }
}

// Run emits every step to w in order, resolving operations in cat. It stops
// at the first failing step; the error carries the 1-based step number and
// lines already written stay written.
func (p *Program) Run(w *gcode.Writer, cat *catalog.Catalog, opts ...RunOption) error {
	r := &runner{log: log.GetLogger("program"), metrics: metrics.NewRunMetrics()}
	for _, opt := range opts {
		opt(r)
	}
	defer r.metrics.Duration.Timer(nil)()

	logger := r.log.WithField("source", p.Source)
	for i, step := range p.Steps {
		n := i + 1
		if err := r.step(w, cat, step, logger.WithField("step", n)); err != nil {
			r.metrics.RecordError(string(gerrors.RootCode(err)))
			logger.WithError(err).Error("step %d failed", n)
			return gerrors.ProgramStepError(n, err)
		}
	}
	logger.Debug("emitted %d steps", len(p.Steps))
	return nil
}

func (r *runner) step(w *gcode.Writer, cat *catalog.Catalog, s Step, logger *log.Logger) error {
	comment := gcode.FromPtr(s.Comment)

	var cmd gcode.Command
	switch {
	case s.Op != "":
		c, err := cat.Command(s.Op, catalog.Args(s.Args), comment)
		if err != nil {
			return err
		}
		cmd = c
		r.metrics.RecordOp(s.Op)
	case s.Raw != nil:
		cmd = s.Raw.Command(comment)
	default:
		logger.Debug("comment")
		if err := w.EndLine(comment); err != nil {
			return err
		}
		r.metrics.RecordLine("")
		return nil
	}

	logger.WithField("command", cmd.Head()).Debug("emit")
	if err := w.Encode(cmd); err != nil {
		return err
	}
	if !cmd.Inline {
		r.metrics.RecordLine(string(cmd.Letter))
	}
	return nil
}
