// Structured logging tests
//
// Copyright (C) 2026  Go Migration Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newTestLogger(prefix string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(prefix)
	l.SetWriter(&buf)
	l.SetLevel(DEBUG)
	return l, &buf
}

func TestLoggerBasic(t *testing.T) {
	logger, buf := newTestLogger("program")

	logger.Info("ran %d steps", 3)

	output := buf.String()
	if !strings.Contains(output, "[INFO ]") {
		t.Errorf("expected INFO level, got: %s", output)
	}
	if !strings.Contains(output, "program: ran 3 steps") {
		t.Errorf("expected prefixed message, got: %s", output)
	}
	if strings.Contains(output, "\x1b[") {
		t.Errorf("buffer output must not be coloured, got: %q", output)
	}
}

func TestLoggerLevels(t *testing.T) {
	logger, buf := newTestLogger("test")
	logger.SetLevel(INFO)

	logger.Debug("debug message")
	if buf.Len() != 0 {
		t.Errorf("expected DEBUG to be filtered, got: %s", buf.String())
	}
	if logger.Enabled(DEBUG) || !logger.Enabled(WARN) {
		t.Error("Enabled disagrees with level INFO")
	}

	for _, emit := range []func(string, ...interface{}){logger.Info, logger.Warn, logger.Error} {
		buf.Reset()
		emit("visible")
		if !strings.Contains(buf.String(), "visible") {
			t.Errorf("expected message to pass, got: %q", buf.String())
		}
	}
}

func TestLoggerJSON(t *testing.T) {
	logger, buf := newTestLogger("test")
	logger.SetFormat(FormatJSON)

	logger.With(Fields{"step": 2, "op": "auto_home"}).Warn("slow step")

	var entry JSONLogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if entry.Level != "WARN" || entry.Logger != "test" || entry.Message != "slow step" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Fields["op"] != "auto_home" {
		t.Errorf("expected op field, got %v", entry.Fields)
	}
	// JSON numbers decode as float64.
	if entry.Fields["step"] != float64(2) {
		t.Errorf("expected step field 2, got %v", entry.Fields["step"])
	}
}

func TestLoggerFieldsText(t *testing.T) {
	logger, buf := newTestLogger("test")

	logger.WithField("b", 2).WithField("a", "x").Info("msg")

	if !strings.Contains(buf.String(), "msg {a=x, b=2}") {
		t.Errorf("expected sorted fields, got: %s", buf.String())
	}
}

func TestLoggerWithError(t *testing.T) {
	logger, buf := newTestLogger("test")

	logger.WithError(errors.New("disk full")).Error("write failed")

	if !strings.Contains(buf.String(), "error=disk full") {
		t.Errorf("expected error field, got: %s", buf.String())
	}
}

func TestWithDoesNotMutateParent(t *testing.T) {
	logger, buf := newTestLogger("test")
	child := logger.WithField("k", "v")

	logger.Info("parent")
	if strings.Contains(buf.String(), "k=v") {
		t.Errorf("parent picked up child fields: %s", buf.String())
	}
	buf.Reset()
	child.Info("child")
	if !strings.Contains(buf.String(), "k=v") {
		t.Errorf("child lost its fields: %s", buf.String())
	}
}

func TestWithPrefixSharesOutput(t *testing.T) {
	logger, buf := newTestLogger("root")
	sub := logger.WithPrefix("catalog")

	logger.SetLevel(ERROR)
	sub.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("derived logger should follow the shared level, got: %s", buf.String())
	}
	sub.Error("shown")
	if !strings.Contains(buf.String(), "catalog: shown") {
		t.Errorf("expected derived prefix, got: %s", buf.String())
	}
}

func TestLoggerCaller(t *testing.T) {
	logger, buf := newTestLogger("test")
	logger.SetCaller(true)

	logger.Info("caller test")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("expected caller info 'logger_test.go:', got: %s", buf.String())
	}
}

func TestLoggerCallerJSON(t *testing.T) {
	logger, buf := newTestLogger("test")
	logger.SetFormat(FormatJSON)
	logger.SetCaller(true)

	logger.Info("caller test")

	var entry JSONLogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if !strings.Contains(entry.Caller, "logger_test.go:") {
		t.Errorf("expected caller to contain 'logger_test.go:', got: %s", entry.Caller)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"DEBUG", DEBUG},
		{"debug", DEBUG},
		{"INFO", INFO},
		{"WARN", WARN},
		{"warning", WARN},
		{" error ", ERROR},
		{"bogus", INFO},
		{"", INFO},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	tests := map[LogLevel]string{
		DEBUG:        "DEBUG",
		INFO:         "INFO",
		WARN:         "WARN",
		ERROR:        "ERROR",
		LogLevel(42): "UNKNOWN",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Setenv("GCODEGEN_LOG_LEVEL", "warn")
	t.Setenv("GCODEGEN_LOG_FORMAT", "json")
	t.Setenv("GCODEGEN_LOG_CALLER", "")
	t.Setenv("NO_COLOR", "1")

	logger, buf := newTestLogger("env")
	logger.SetColorize(true)
	ConfigureFromEnv(logger)

	if logger.GetLevel() != WARN {
		t.Errorf("expected WARN, got %v", logger.GetLevel())
	}
	logger.Warn("hello")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON output, got: %s", buf.String())
	}
	if ColorEnabled(buf) {
		t.Error("NO_COLOR must disable colour")
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("mycomponent")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	if logger.prefix != "mycomponent" {
		t.Errorf("expected prefix 'mycomponent', got %q", logger.prefix)
	}
	if GetLogger("").out != logger.out {
		t.Error("derived loggers should share the default output")
	}
}

func BenchmarkLoggerText(b *testing.B) {
	var buf bytes.Buffer
	logger := New("bench")
	logger.SetWriter(&buf)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		logger.Info("benchmark message %d", i)
	}
}

func BenchmarkLoggerFiltered(b *testing.B) {
	var buf bytes.Buffer
	logger := New("bench")
	logger.SetWriter(&buf)
	logger.SetLevel(ERROR)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("this should be filtered")
	}
}
