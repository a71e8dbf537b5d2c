// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formatting and context fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatText)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below warn should be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("warn and error should be logged, got %q", out)
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON).WithRequestID("req-42")

	logger.Info("evaluated", Fields{"display": "2", "operator": "/"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	checks := map[string]interface{}{
		"level":      "info",
		"message":    "evaluated",
		"logger":     "test",
		"request_id": "req-42",
		"display":    "2",
		"operator":   "/",
	}
	for k, want := range checks {
		if data[k] != want {
			t.Errorf("%s = %v, want %v", k, data[k], want)
		}
	}
}

func TestLogger_JSONErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON)

	logger.Error("failed", Fields{"error": errors.New("boom")})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data["error"] != "boom" {
		t.Errorf("error = %v, want boom", data["error"])
	}
}

func TestLogger_TextFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatText)
	logger.formatter = &TextFormatter{DisableTimestamp: true}

	logger.Info("hello", Fields{"b": 2, "a": 1})

	want := "[INF] {test} hello [a=1 b=2]\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_WithRequestIDIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelInfo, FormatText)
	child := base.WithRequestID("req-7")

	if base.requestID != "" {
		t.Error("WithRequestID should not modify the parent logger")
	}
	if child.requestID != "req-7" {
		t.Error("child should carry the request id")
	}
}

func TestLogger_LogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity", mdwerror.New("bad input").WithCode(mdwerror.CodeInvalidOperand), "info"},
		{"medium severity", errors.New("plain"), "warn"},
		{"high severity", mdwerror.New("init").WithCode(mdwerror.CodeServiceInitialization), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newTestLogger(&buf, LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warning ", LevelWarn, false},
		{"err", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLogger_LogErrorFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON)

	err := mdwerror.New("cannot divide by zero").
		WithCode(mdwerror.CodeDivisionByZero).
		WithDetail("second", "0")
	logger.LogError(mdwerror.Wrap(err, "evaluate"))

	var data map[string]interface{}
	if jerr := json.Unmarshal(buf.Bytes(), &data); jerr != nil {
		t.Fatalf("output is not JSON: %v", jerr)
	}

	checks := map[string]interface{}{
		"level":          "info",
		"error_code":     "DIVISION_BY_ZERO",
		"error_category": "calculation",
		"error_severity": "low",
		"second":         "0",
	}
	for k, want := range checks {
		if data[k] != want {
			t.Errorf("%s = %v, want %v", k, data[k], want)
		}
	}
	if _, ok := data["alert"]; ok {
		t.Error("low severity errors should not be flagged for alerting")
	}
}

func TestLogger_LogErrorRequestID(t *testing.T) {
	tests := []struct {
		name   string
		logger func(*Logger) *Logger
		want   string
	}{
		{"taken from error", func(l *Logger) *Logger { return l }, "req-err"},
		{"logger wins", func(l *Logger) *Logger { return l.WithRequestID("req-log") }, "req-log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := tt.logger(newTestLogger(&buf, LevelInfo, FormatJSON))
			logger.LogError(mdwerror.New("x").WithOperation("op").WithRequestID("req-err"))

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if data["request_id"] != tt.want {
				t.Errorf("request_id = %v, want %v", data["request_id"], tt.want)
			}
			if data["operation"] != "op" {
				t.Errorf("operation = %v, want op", data["operation"])
			}
		})
	}
}

func TestLogger_LogErrorAlert(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON)

	logger.LogError(mdwerror.New("down").WithCode(mdwerror.CodeServiceUnavailable))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data["alert"] != true {
		t.Errorf("alert = %v, want true", data["alert"])
	}
	if data["level"] != "error" {
		t.Errorf("level = %v, want error", data["level"])
	}
}
