package errortypes

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	cause := errors.New("underlying cause")

	err := ValidationError(cause, "invalid request")
	if err.Error() != "invalid request: underlying cause" {
		t.Errorf("Unexpected error message: %q", err.Error())
	}

	// Without a message, the cause speaks for itself.
	err = &AppError{Err: cause, Type: ErrorTypeInternal}
	if err.Error() != "underlying cause" {
		t.Errorf("Unexpected error message: %q", err.Error())
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying cause")
	err := UnknownToolError(cause, "no such tool")

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("Expected errors.As to find the AppError through wrapping")
	}
	if appErr.Type != ErrorTypeUnknownTool {
		t.Errorf("Expected unknown_tool type, got %q", appErr.Type)
	}
}

func TestAppErrorFields(t *testing.T) {
	err := UnknownToolError(errors.New("missing"), "no such tool").
		WithField("tool_id", "emacs").
		WithFields(map[string]interface{}{"operation": "compare_tools"})

	if err.Fields["tool_id"] != "emacs" {
		t.Errorf("Expected tool_id field, got %v", err.Fields)
	}
	if err.Fields["operation"] != "compare_tools" {
		t.Errorf("Expected operation field, got %v", err.Fields)
	}
}

func TestNilCauseGetsPlaceholder(t *testing.T) {
	err := InternalError(nil, "something failed")
	if err.Err == nil {
		t.Error("Expected a placeholder cause for a nil error")
	}
}

func TestTypeClassification(t *testing.T) {
	cause := errors.New("cause")

	if !IsValidationError(ValidationError(cause, "m")) {
		t.Error("Expected IsValidationError to match")
	}
	if !IsUnknownToolError(UnknownToolError(cause, "m")) {
		t.Error("Expected IsUnknownToolError to match")
	}
	if !IsUnknownOperationError(UnknownOperationError(cause, "m")) {
		t.Error("Expected IsUnknownOperationError to match")
	}

	if IsValidationError(UnknownToolError(cause, "m")) {
		t.Error("Expected classification helpers to be type specific")
	}
	if IsValidationError(cause) {
		t.Error("Expected a plain error to match no classification")
	}
}

func TestTypeOf(t *testing.T) {
	if got := TypeOf(ConfigError(errors.New("x"), "m")); got != ErrorTypeConfig {
		t.Errorf("Expected config type, got %q", got)
	}
	if got := TypeOf(errors.New("plain")); got != ErrorTypeInternal {
		t.Errorf("Expected plain errors to classify as internal, got %q", got)
	}
}

func TestStackCaptured(t *testing.T) {
	err := InternalError(errors.New("x"), "m")
	if err.StackInfo == "" {
		t.Error("Expected a captured stack trace")
	}
}
