package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMalformedConfig, "block count %d disagrees with %d configs", 2, 3)

	if err.Code != ErrCodeMalformedConfig {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeMalformedConfig)
	}
	if !strings.Contains(err.Error(), "MALFORMED_CONFIG") {
		t.Errorf("Error() should contain the code, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "disagrees") {
		t.Errorf("Error() should contain the message, got %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeInternal, cause, "store warehouse %s", "wh-1")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match the cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() should include the cause, got %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnsupportedUnit, "unknown unit: %q", "furlong")

	if !Is(err, ErrCodeUnsupportedUnit) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInsufficientSpace) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeUnsupportedUnit) {
		t.Error("Is should not match plain errors")
	}

	// Wrapped chain
	wrapped := fmt.Errorf("compute: %w", err)
	if !Is(wrapped, ErrCodeUnsupportedUnit) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}
}

func TestGetCode(t *testing.T) {
	if code := GetCode(New(ErrCodeNotFound, "missing")); code != ErrCodeNotFound {
		t.Errorf("GetCode = %q, want %q", code, ErrCodeNotFound)
	}
	if code := GetCode(fmt.Errorf("plain")); code != "" {
		t.Errorf("GetCode on plain error = %q, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInsufficientSpace, "rack width is non-positive")
	if msg := UserMessage(err); msg != "rack width is non-positive" {
		t.Errorf("UserMessage = %q", msg)
	}
	if msg := UserMessage(fmt.Errorf("plain error")); msg != "plain error" {
		t.Errorf("UserMessage on plain error = %q", msg)
	}
}

func TestIsLayoutError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeUnsupportedUnit, "x"), true},
		{New(ErrCodeInsufficientSpace, "x"), true},
		{New(ErrCodeMalformedConfig, "x"), true},
		{New(ErrCodeNotFound, "x"), false},
		{New(ErrCodeInternal, "x"), false},
		{fmt.Errorf("plain"), false},
	}

	for _, tt := range tests {
		if got := IsLayoutError(tt.err); got != tt.want {
			t.Errorf("IsLayoutError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestValidateWarehouseID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"wh-1", false},
		{"warehouse_42", false},
		{"a", false},
		{"", true},
		{"../etc", true},
		{"a/b", true},
		{"a\\b", true},
		{"bad\x00id", true},
		{strings.Repeat("x", 129), true},
	}

	for _, tt := range tests {
		err := ValidateWarehouseID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateWarehouseID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}
