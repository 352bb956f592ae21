package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeUnwrapNone, "empty")
	if err.Code != ErrCodeUnwrapNone {
		t.Errorf("expected code %s, got %s", ErrCodeUnwrapNone, err.Code)
	}
	if err.Message != "empty" {
		t.Errorf("expected message 'empty', got %q", err.Message)
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "bad size")
	if got := err.Error(); got != "INVALID_ARGUMENT: bad size" {
		t.Errorf("got %q", got)
	}
	err.WithCause(fmt.Errorf("root"))
	if got := err.Error(); !strings.Contains(got, "(cause: root)") {
		t.Errorf("expected cause in message, got %q", got)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root")
	err := New(ErrCodeConfigInvalid, "bad").WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "x").
		WithDetails(map[string]any{"a": 1}).
		WithDetail("b", 2)
	if err.Details["a"] != 1 || err.Details["b"] != 2 {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("size", "must be positive")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", err.Code)
	}
	if err.Details["field"] != "size" {
		t.Errorf("expected field=size, got %v", err.Details["field"])
	}
	if _, ok := InvalidArgument("", "x").Details["field"]; ok {
		t.Error("expected no 'field' key when field is empty")
	}
}

func TestUnwrapNone(t *testing.T) {
	err := UnwrapNone("Option.Unwrap")
	if err.Code != ErrCodeUnwrapNone {
		t.Errorf("expected UNWRAP_NONE, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "Option.Unwrap") {
		t.Errorf("expected method in message, got %q", err.Message)
	}
}

func TestUnwrapVariant(t *testing.T) {
	err := UnwrapVariant(ErrCodeUnwrapErr, "Result.Unwrap", "boom")
	if err.Details["value"] != "boom" {
		t.Errorf("expected value detail, got %v", err.Details["value"])
	}
}

func TestRecovered(t *testing.T) {
	cause := fmt.Errorf("already an error")
	if got := Recovered(cause); got != cause {
		t.Errorf("expected error to pass through, got %v", got)
	}
	err := Recovered("boom")
	if !Is(err, ErrCodePanicRecovered) {
		t.Errorf("expected PANIC_RECOVERED, got %v", err)
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Expect(ErrCodeExpectNone, "need a value"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed")
	}
	if appErr.Message != "need a value" {
		t.Errorf("got %q", appErr.Message)
	}
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to be true")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected IsAppError to be false for plain error")
	}
	if _, ok := AsAppError(nil); ok {
		t.Error("expected AsAppError(nil) to fail")
	}
}

func TestIsExtractionCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeUnwrapNone, true},
		{ErrCodeUnwrapRight, true},
		{ErrCodeInvalidArgument, false},
		{ErrCodePanicRecovered, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := IsExtractionCode(tt.code); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
