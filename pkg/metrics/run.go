package metrics

// RunMetrics groups the counters a program run updates.
type RunMetrics struct {
	registry *Registry

	Lines    *Counter
	Ops      *Counter
	Errors   *Counter
	Duration *Histogram
}

// NewRunMetrics creates and registers the run metrics on a fresh registry.
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: NewRegistry(),
		Lines:    NewCounter("gcodegen_lines_total", "Lines written, by command letter"),
		Ops:      NewCounter("gcodegen_ops_total", "Catalog operations emitted, by name"),
		Errors:   NewCounter("gcodegen_errors_total", "Failed steps, by error code"),
		Duration: NewHistogram("gcodegen_run_duration_seconds", "Wall time of a program run",
			ExponentialBuckets(0.001, 10, 5)),
	}
	m.registry.MustRegister(m.Lines)
	m.registry.MustRegister(m.Ops)
	m.registry.MustRegister(m.Errors)
	m.registry.MustRegister(m.Duration)
	return m
}

// RecordLine counts one written line. Comment-only lines use letter "".
func (m *RunMetrics) RecordLine(letter string) {
	if letter == "" {
		letter = "comment"
	}
	m.Lines.Inc(Labels{"letter": letter})
}

// RecordOp counts one catalog operation.
func (m *RunMetrics) RecordOp(op string) {
	m.Ops.Inc(Labels{"op": op})
}

// RecordError counts one failed step.
func (m *RunMetrics) RecordError(code string) {
	m.Errors.Inc(Labels{"code": code})
}

// Registry returns the registry holding the run metrics.
func (m *RunMetrics) Registry() *Registry {
	return m.registry
}

// Gather renders all run metrics.
func (m *RunMetrics) Gather() string {
	return m.registry.Gather()
}
