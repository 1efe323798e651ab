package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "basic error without underlying",
			err:      &Error{Code: ExitCodeGeneral, Message: "test error"},
			expected: "test error",
		},
		{
			name:     "error with underlying",
			err:      &Error{Code: ExitCodeClipboard, Message: "clipboard error", Underlying: errors.New("bridge exited")},
			expected: "clipboard error: bridge exited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{
		Code:       ExitCodeGeneral,
		Message:    "test error",
		Underlying: underlying,
	}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlying)
	}
}

func TestNew(t *testing.T) {
	err := New(ExitCodeValidation, "invalid input")

	if err.Code != ExitCodeValidation {
		t.Errorf("Code = %d, want %d", err.Code, ExitCodeValidation)
	}
	if err.Message != "invalid input" {
		t.Errorf("Message = %q, want %q", err.Message, "invalid input")
	}
	if err.Underlying != nil {
		t.Errorf("Underlying = %v, want nil", err.Underlying)
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		if result := Wrap(nil, "context"); result != nil {
			t.Errorf("Wrap(nil) = %v, want nil", result)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		underlying := errors.New("plain")
		result := Wrap(underlying, "context")

		if result.Code != ExitCodeGeneral {
			t.Errorf("Code = %d, want %d", result.Code, ExitCodeGeneral)
		}
		if result.Message != "context" {
			t.Errorf("Message = %q, want %q", result.Message, "context")
		}
		if result.Underlying != underlying {
			t.Errorf("Underlying = %v, want %v", result.Underlying, underlying)
		}
	})

	t.Run("typed error keeps code and suggestion", func(t *testing.T) {
		inner := NewWithSuggestion(ExitCodeTokenizer, "encoder failed", "check the encoder cache")
		result := Wrap(inner, "token count")

		if result.Code != ExitCodeTokenizer {
			t.Errorf("Code = %d, want %d", result.Code, ExitCodeTokenizer)
		}
		if result.Message != "token count: encoder failed" {
			t.Errorf("Message = %q, want %q", result.Message, "token count: encoder failed")
		}
		if result.Suggestion != "check the encoder cache" {
			t.Errorf("Suggestion = %q, want %q", result.Suggestion, "check the encoder cache")
		}
	})
}

func TestIsExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     ExitCode
		expected bool
	}{
		{name: "nil error", err: nil, code: ExitCodeGeneral, expected: false},
		{name: "matching code", err: New(ExitCodeClipboard, "x"), code: ExitCodeClipboard, expected: true},
		{name: "different code", err: New(ExitCodeClipboard, "x"), code: ExitCodeTokenizer, expected: false},
		{name: "plain error", err: errors.New("plain"), code: ExitCodeGeneral, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsExitCode(tt.err, tt.code); result != tt.expected {
				t.Errorf("IsExitCode() = %v, want %v", result, tt.expected)
			}
		})
	}
}
