package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("original error")
	appErr := ErrGetPR.WithError(baseErr)

	if appErr.Err != baseErr {
		t.Errorf("Expected underlying error to be %v, got %v", baseErr, appErr.Err)
	}

	if appErr.Type != TypeVCS {
		t.Errorf("Expected type %s, got %s", TypeVCS, appErr.Type)
	}

	if !errors.Is(appErr, baseErr) {
		t.Error("Expected errors.Is to match the underlying error")
	}
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrUpdatePR.WithContext("pr_number", 42).WithContext("response_body", "Not Found")

	if appErr.Context["pr_number"] != 42 {
		t.Errorf("Expected pr_number context 42, got %v", appErr.Context["pr_number"])
	}

	if appErr.Context["response_body"] != "Not Found" {
		t.Errorf("Expected response_body context 'Not Found', got %v", appErr.Context["response_body"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name: "Simple error without underlying error",
			err:  ErrOpenAIKeyMissing,
			contains: []string{
				"CONFIGURATION",
				"OpenAI API key is missing",
			},
		},
		{
			name: "Error with underlying error",
			err:  ErrGetPR.WithError(errors.New("404 Not Found")),
			contains: []string{
				"VCS",
				"failed to get pull request",
				"404 Not Found",
			},
		},
		{
			name: "Error with response body context",
			err: ErrUpdatePR.WithError(errors.New("403 Forbidden")).
				WithContext("response_body", "Resource not accessible by integration"),
			contains: []string{
				"VCS",
				"failed to update pull request description",
				"Resource not accessible by integration",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, fragment := range tt.contains {
				if !strings.Contains(msg, fragment) {
					t.Errorf("Expected %q to contain %q", msg, fragment)
				}
			}
		})
	}
}

func TestAppError_WithSuggestion(t *testing.T) {
	appErr := NewAppError(TypeAI, "model unavailable", nil).WithSuggestion("Try a different model")

	if appErr.Suggestion != "Try a different model" {
		t.Errorf("Expected suggestion to be set, got %q", appErr.Suggestion)
	}
}
