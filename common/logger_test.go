package common

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityDebug, "DEBUG"},
		{SeverityInfo, "INFO"},
		{SeverityWarning, "WARNING"},
		{SeverityError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := tt.severity.String()
			if got != tt.expected {
				t.Errorf("Severity.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStdLogger_Log(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewStdLoggerWithWriter(&stdout, &stderr, SeverityDebug)

	tests := []struct {
		name     string
		severity Severity
		message  string
		checkOut bool // true for stdout, false for stderr
	}{
		{"Debug", SeverityDebug, "debug message", true},
		{"Info", SeverityInfo, "info message", true},
		{"Warning", SeverityWarning, "warning message", true},
		{"Error", SeverityError, "error message", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout.Reset()
			stderr.Reset()

			logger.Log(tt.severity, tt.message)

			var output string
			if tt.checkOut {
				output = stdout.String()
			} else {
				output = stderr.String()
			}

			if !strings.Contains(output, tt.message) {
				t.Errorf("Log output should contain %q, got: %s", tt.message, output)
			}
			if !strings.Contains(output, tt.severity.String()) {
				t.Errorf("Log output should contain severity %q, got: %s", tt.severity.String(), output)
			}
		})
	}
}

func TestStdLogger_Logf(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewStdLoggerWithWriter(&stdout, &stderr, SeverityInfo)

	logger.Logf(SeverityInfo, "record %d: %s", 3, "WRITE32")

	output := stdout.String()
	if !strings.Contains(output, "record 3: WRITE32") {
		t.Errorf("Logf output should contain formatted message, got: %s", output)
	}
}

func TestStdLogger_Error(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewStdLoggerWithWriter(&stdout, &stderr, SeverityInfo)

	logger.Error(errors.New("decode failed"))

	if !strings.Contains(stderr.String(), "decode failed") {
		t.Errorf("Error output should contain error message, got: %s", stderr.String())
	}

	stderr.Reset()
	logger.Error(nil)
	if stderr.Len() != 0 {
		t.Errorf("Error(nil) should not log anything, got: %s", stderr.String())
	}
}

func TestStdLogger_MinLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewStdLoggerWithWriter(&stdout, &stderr, SeverityWarning)

	logger.Debug("debug message")
	logger.Info("info message")

	if stdout.Len() != 0 {
		t.Errorf("Debug and Info should not be logged when minLevel is Warning, got: %s", stdout.String())
	}

	logger.Warning("warning message")

	if !strings.Contains(stdout.String(), "warning message") {
		t.Errorf("Warning should be logged, got: %s", stdout.String())
	}
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	if logger == nil {
		t.Fatal("NewNoOpLogger() returned nil")
	}

	// All these should do nothing and not panic
	logger.Log(SeverityInfo, "test")
	logger.Logf(SeverityInfo, "test %s", "formatted")
	logger.Error(errors.New("test error"))
	logger.Debug("debug")
	logger.Info("info")
	logger.Warning("warning")
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Log(SeverityDebug, "debug message")
	logger.Log(SeverityInfo, "info message")
	logger.Log(SeverityWarning, "warning message")
	logger.Log(SeverityError, "error message")

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 log entries, got %d", len(entries))
	}

	want := []struct {
		level   string
		message string
	}{
		{"debug", "debug message"},
		{"info", "info message"},
		{"warn", "warning message"},
		{"error", "error message"},
	}
	for i, w := range want {
		if entries[i].Level.String() != w.level {
			t.Errorf("entry %d level = %s, want %s", i, entries[i].Level, w.level)
		}
		if entries[i].Message != w.message {
			t.Errorf("entry %d message = %q, want %q", i, entries[i].Message, w.message)
		}
	}
}

func TestZapLogger_Logf(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Logf(SeverityDebug, "record %d: %s", 1, "FILL16")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "record 1: FILL16" {
		t.Errorf("message = %q, want %q", entries[0].Message, "record 1: FILL16")
	}
}

func TestZapLogger_Error(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Error(errors.New("decode failed"))
	logger.Error(nil)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "decode failed" {
		t.Errorf("message = %q, want %q", entries[0].Message, "decode failed")
	}
}
