// File: error_test.go
// Title: Error Package Unit Tests
// Description: Tests for the structured error type: wrapping, code and
//              severity propagation, detail handling, and errors.Is/As
//              compatibility.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02

package error

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		name string
		code Code
	}{
		{name: "Unknown domain", code: CodeUnknownDomain},
		{name: "Parse failure", code: CodeParseFailure},
		{name: "Invariant violation", code: CodeInvariantViolation},
		{name: "Database error", code: CodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("test").WithCode(tt.code)
			if err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.code)
			}
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false for defined code %v", tt.code)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := New("root cause").WithCode(CodeParseFailure).WithDetail("state", "4x + =")
	wrapped := Wrap(base, "step failed")

	if wrapped.Code() != CodeParseFailure {
		t.Errorf("wrapped code = %v, want %v", wrapped.Code(), CodeParseFailure)
	}
	if v, ok := wrapped.Detail("state"); !ok || v != "4x + =" {
		t.Errorf("wrapped detail lost: %v, %v", v, ok)
	}
	if !stderrors.Is(wrapped, base) {
		t.Error("errors.Is(wrapped, base) = false, want true")
	}
	if wrapped.Error() != "step failed: root cause" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapStandardError(t *testing.T) {
	base := stderrors.New("plain error")
	wrapped := Wrap(base, "context")

	if wrapped.Code() != CodeUnknown {
		t.Errorf("code = %v, want %v", wrapped.Code(), CodeUnknown)
	}
	if !stderrors.Is(wrapped, base) {
		t.Error("errors.Is should find the plain cause")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{name: "Structured error", err: New("x").WithCode(CodeUnknownDomain), want: CodeUnknownDomain},
		{name: "Wrapped structured error", err: Wrap(New("x").WithCode(CodeDatabaseError), "ctx"), want: CodeDatabaseError},
		{name: "Plain error", err: stderrors.New("plain"), want: CodeUnknown},
		{name: "Nil error", err: nil, want: CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}
