// File: logger_test.go
// Title: Logger Unit Tests
// Description: Tests for level filtering, contextual fields, and the
//              text and JSON output formats.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "warn", want: LevelWarn},
		{input: "warning", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "", want: LevelInfo},
		{input: "bogus", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Output: &buf})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below warn level leaked through: %q", out)
	}
	if !strings.Contains(out, "warn message") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Output: &buf}).
		WithField("component", "bank")

	logger.Info("stored", Fields{"seed": 42})

	out := buf.String()
	if !strings.Contains(out, "component=bank") {
		t.Errorf("context field missing: %q", out)
	}
	if !strings.Contains(out, "seed=42") {
		t.Errorf("call field missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf, Name: "test"})

	logger.Info("hello", Fields{"answer": 42})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v, want hello", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["logger"] != "test" {
		t.Errorf("logger = %v, want test", entry["logger"])
	}
}

func TestChildLoggerIsolation(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWithConfig(Config{Level: LevelInfo, Output: &buf})
	_ = parent.WithField("child", true)

	parent.Info("from parent")

	if strings.Contains(buf.String(), "child=true") {
		t.Errorf("child field leaked into parent logger: %q", buf.String())
	}
}
