package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeVCS           ErrorType = "VCS"
	TypeTicket        ErrorType = "TICKET"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if body, ok := e.Context["response_body"].(string); ok && body != "" {
			msg += fmt.Sprintf(" - %s", body)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrGitHubTokenMissing = NewAppError(TypeConfiguration, "GitHub token is missing", nil).
				WithSuggestion("Pass it with --github-token or set the INPUT_GITHUB_TOKEN secret in your workflow")

	ErrOpenAIKeyMissing = NewAppError(TypeConfiguration, "OpenAI API key is missing", nil).
				WithSuggestion("Pass it with --openai-api-key or set the OPENAI_API_KEY secret in your workflow")

	ErrRepositoryMissing = NewAppError(TypeConfiguration, "GitHub repository is missing", nil).
				WithSuggestion("Use the owner/repo format, e.g. --github-repository octocat/hello-world")

	ErrInvalidRepository = NewAppError(TypeConfiguration, "GitHub repository must use the owner/repo format", nil).
				WithSuggestion("Example: --github-repository octocat/hello-world")

	ErrPRNumberMissing = NewAppError(TypeConfiguration, "pull request number is missing or zero", nil).
				WithSuggestion("In GitHub Actions use: --pr-number ${{ github.event.pull_request.number }}")
)

// VCS errors
var (
	ErrGetPR = NewAppError(TypeVCS, "failed to get pull request", nil).
			WithSuggestion("Check repository name, PR number and token permissions")

	ErrListFiles = NewAppError(TypeVCS, "failed to list pull request files", nil).
			WithSuggestion("Check your GitHub token has 'repo' scope")

	ErrUpdatePR = NewAppError(TypeVCS, "failed to update pull request description", nil).
			WithSuggestion("Check your GitHub token has write access to the repository")

	ErrGitHubRateLimit = NewAppError(TypeVCS, "GitHub API rate limit exceeded", nil).
				WithSuggestion("Wait a few minutes or use a personal access token for higher limits")
)

// AI errors
var (
	ErrAIGeneration = NewAppError(TypeAI, "AI generation failed", nil).
			WithSuggestion("Try again or check your API key configuration")
)
