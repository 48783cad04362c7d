// Unit tests for run metrics
//
// Copyright (C) 2026 Go Migration Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package metrics

import (
	"strings"
	"sync"
	"testing"
)

func TestCounterBasic(t *testing.T) {
	c := NewCounter("test_counter", "A test counter")

	if v := c.Get(nil); v != 0 {
		t.Errorf("expected initial value 0, got %d", v)
	}
	c.Inc(nil)
	c.Add(nil, 10)
	if v := c.Get(nil); v != 11 {
		t.Errorf("expected value 11, got %d", v)
	}
	if c.Type() != TypeCounter || c.Type().String() != "counter" {
		t.Errorf("unexpected type %v", c.Type())
	}
}

func TestCounterWithLabels(t *testing.T) {
	c := NewCounter("lines", "Lines")

	c.Inc(Labels{"letter": "G"})
	c.Inc(Labels{"letter": "G"})
	c.Inc(Labels{"letter": "M"})

	if v := c.Get(Labels{"letter": "G"}); v != 2 {
		t.Errorf("expected G=2, got %d", v)
	}
	if v := c.Get(Labels{"letter": "T"}); v != 0 {
		t.Errorf("expected T=0, got %d", v)
	}
	if v := c.Total(); v != 3 {
		t.Errorf("expected total 3, got %d", v)
	}
}

func TestCounterLabelsCopied(t *testing.T) {
	c := NewCounter("c", "c")
	l := Labels{"op": "auto_home"}
	c.Inc(l)
	l["op"] = "changed"

	var sb strings.Builder
	c.Write(&sb)
	if !strings.Contains(sb.String(), `c{op="auto_home"} 1`) {
		t.Errorf("caller mutation leaked into metric:\n%s", sb.String())
	}
}

func TestCounterConcurrency(t *testing.T) {
	c := NewCounter("concurrent", "c")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Inc(Labels{"letter": "G"})
			}
		}()
	}
	wg.Wait()
	if v := c.Get(Labels{"letter": "G"}); v != 5000 {
		t.Errorf("expected 5000, got %d", v)
	}
}

func TestHistogramBasic(t *testing.T) {
	h := NewHistogram("latency", "Latency", []float64{1, 0.1, 0.01})

	h.Observe(nil, 0.0078125)
	h.Observe(nil, 0.0625)
	h.Observe(nil, 0.09375)
	h.Observe(nil, 5)

	if n := h.Count(nil); n != 4 {
		t.Errorf("expected 4 observations, got %d", n)
	}

	var sb strings.Builder
	h.Write(&sb)
	out := sb.String()
	for _, want := range []string{
		`latency_bucket{le="0.01"} 1`,
		`latency_bucket{le="0.1"} 3`,
		`latency_bucket{le="1"} 3`,
		`latency_bucket{le="+Inf"} 4`,
		`latency_sum 5.1640625`,
		`latency_count 4`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestHistogramTimer(t *testing.T) {
	h := NewHistogram("t", "t", ExponentialBuckets(0.001, 10, 3))
	stop := h.Timer(Labels{"phase": "run"})
	stop()
	if n := h.Count(Labels{"phase": "run"}); n != 1 {
		t.Errorf("expected one observation, got %d", n)
	}
}

func TestExponentialBuckets(t *testing.T) {
	b := ExponentialBuckets(1, 2, 4)
	want := []float64{1, 2, 4, 8}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("ExponentialBuckets = %v, want %v", b, want)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	c := NewCounter("a_total", "A")
	r.MustRegister(c)
	if err := r.Register(NewCounter("a_total", "dup")); err == nil {
		t.Error("expected duplicate registration to fail")
	}
	if r.Get("a_total") != c {
		t.Error("Get returned the wrong metric")
	}
	if r.Get("missing") != nil {
		t.Error("expected nil for unknown metric")
	}
}

func TestRegistryGatherOrder(t *testing.T) {
	r := NewRegistry()
	b := NewCounter("b_total", "B")
	a := NewCounter("a_total", "A")
	r.MustRegister(b)
	r.MustRegister(a)
	b.Inc(Labels{"k": "2"})
	b.Inc(Labels{"k": "1"})
	a.Inc(nil)

	want := "# HELP b_total B\n# TYPE b_total counter\n" +
		"b_total{k=\"1\"} 1\nb_total{k=\"2\"} 1\n" +
		"# HELP a_total A\n# TYPE a_total counter\n" +
		"a_total 1\n"
	if got := r.Gather(); got != want {
		t.Errorf("Gather() =\n%s\nwant\n%s", got, want)
	}
}

func TestLabelsString(t *testing.T) {
	l := Labels{"b": "2", "a": `q"uo\te`}
	if got := l.String(); got != `{a="q\"uo\\te",b="2"}` {
		t.Errorf("unexpected labels string %s", got)
	}
	if got := Labels(nil).String(); got != "" {
		t.Errorf("nil labels should render empty, got %q", got)
	}
}

func TestRunMetrics(t *testing.T) {
	m := NewRunMetrics()
	m.RecordLine("G")
	m.RecordLine("G")
	m.RecordLine("")
	m.RecordOp("auto_home")
	m.RecordError("CATALOG_ARGUMENT")

	if v := m.Lines.Get(Labels{"letter": "G"}); v != 2 {
		t.Errorf("expected 2 G lines, got %d", v)
	}
	if v := m.Lines.Get(Labels{"letter": "comment"}); v != 1 {
		t.Errorf("expected 1 comment line, got %d", v)
	}

	out := m.Gather()
	for _, want := range []string{
		`gcodegen_ops_total{op="auto_home"} 1`,
		`gcodegen_errors_total{code="CATALOG_ARGUMENT"} 1`,
		"# TYPE gcodegen_run_duration_seconds histogram",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
