package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/pr-autofill/internal/errors"
)

func validParams() Params {
	return Params{
		GitHubAPIURL: "https://api.github.com",
		Repository:   "octo-org/octo-repo",
		PRNumber:     7,
		GitHubToken:  "ghp_token",
		OpenAIAPIKey: "sk-key",
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New(validParams())

	require.NoError(t, err)
	assert.Equal(t, "octo-org", cfg.Owner)
	assert.Equal(t, "octo-repo", cfg.Repo)
	assert.Equal(t, 7, cfg.PRNumber)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIConfig.Model)
	assert.Equal(t, 1000, cfg.OpenAIConfig.MaxTokens)
	assert.Equal(t, 0.6, cfg.OpenAIConfig.Temperature)
	assert.Equal(t, []string{"package-lock.json"}, cfg.ExcludedFiles)
	assert.Empty(t, cfg.AllowedUsers)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("INPUT_OPENAI_MODEL", "gpt-4o")
	t.Setenv("INPUT_MAX_TOKENS", "512")
	t.Setenv("INPUT_TEMPERATURE", "0.2")
	t.Setenv("INPUT_MODEL_SAMPLE_PROMPT", "sample prompt")
	t.Setenv("INPUT_MODEL_SAMPLE_RESPONSE", "sample response")

	cfg, err := New(validParams())

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.OpenAIConfig.Model)
	assert.Equal(t, 512, cfg.OpenAIConfig.MaxTokens)
	assert.Equal(t, 0.2, cfg.OpenAIConfig.Temperature)
	assert.Equal(t, "sample prompt", cfg.OpenAIConfig.SamplePrompt)
	assert.Equal(t, "sample response", cfg.OpenAIConfig.SampleResponse)
}

func TestNew_InvalidNumericEnvFallsBack(t *testing.T) {
	t.Setenv("INPUT_MAX_TOKENS", "lots")
	t.Setenv("INPUT_TEMPERATURE", "warm")

	cfg, err := New(validParams())

	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.OpenAIConfig.MaxTokens)
	assert.Equal(t, 0.6, cfg.OpenAIConfig.Temperature)
}

func TestNew_AllowedUsersFromEnvWinsOverFlag(t *testing.T) {
	t.Setenv("INPUT_ALLOWED_USERS", "alice, bob ,carol")

	params := validParams()
	params.AllowedUsers = "from-flag"
	cfg, err := New(params)

	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, cfg.AllowedUsers)
}

func TestNew_AllowedUsersFromFlag(t *testing.T) {
	params := validParams()
	params.AllowedUsers = "alice,bob"
	cfg, err := New(params)

	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, cfg.AllowedUsers)
}

func TestNew_ExcludedFilesEmptyEnvDisablesDefault(t *testing.T) {
	t.Setenv("INPUT_EXCLUDED_FILES", "")

	cfg, err := New(validParams())

	require.NoError(t, err)
	assert.Empty(t, cfg.ExcludedFiles)
}

func TestNew_ExcludedFilesFromEnv(t *testing.T) {
	t.Setenv("INPUT_EXCLUDED_FILES", "go.sum, yarn.lock")

	cfg, err := New(validParams())

	require.NoError(t, err)
	assert.Equal(t, []string{"go.sum", "yarn.lock"}, cfg.ExcludedFiles)
}

func TestNew_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Params)
		expected error
	}{
		{
			name:     "missing repository",
			mutate:   func(p *Params) { p.Repository = "" },
			expected: errors.ErrRepositoryMissing,
		},
		{
			name:     "invalid repository format",
			mutate:   func(p *Params) { p.Repository = "no-slash" },
			expected: nil,
		},
		{
			name:     "missing PR number",
			mutate:   func(p *Params) { p.PRNumber = 0 },
			expected: errors.ErrPRNumberMissing,
		},
		{
			name:     "missing GitHub token",
			mutate:   func(p *Params) { p.GitHubToken = "" },
			expected: errors.ErrGitHubTokenMissing,
		},
		{
			name:     "missing OpenAI key",
			mutate:   func(p *Params) { p.OpenAIAPIKey = "" },
			expected: errors.ErrOpenAIKeyMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)

			_, err := New(params)

			require.Error(t, err)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestIsUserAllowed(t *testing.T) {
	cfg := &Config{}
	assert.True(t, cfg.IsUserAllowed("anyone"), "empty allow-list allows everyone")

	cfg.AllowedUsers = []string{"alice", "bob"}
	assert.True(t, cfg.IsUserAllowed("alice"))
	assert.False(t, cfg.IsUserAllowed("mallory"))
	assert.False(t, cfg.IsUserAllowed("Alice"), "match is case sensitive")
}

func TestIsFileExcluded(t *testing.T) {
	cfg := &Config{ExcludedFiles: []string{"package-lock.json"}}

	assert.True(t, cfg.IsFileExcluded("package-lock.json"))
	assert.False(t, cfg.IsFileExcluded("main.go"))
	assert.False(t, cfg.IsFileExcluded("nested/package-lock.json"), "match is on the full path")
}

func TestJiraConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.JiraConfigured())

	cfg.JiraConfig = JiraConfig{BaseURL: "https://example.atlassian.net", IssueKey: "PROJ-1"}
	assert.False(t, cfg.JiraConfigured(), "token still missing")

	cfg.JiraConfig.APIToken = "token"
	assert.True(t, cfg.JiraConfigured())
}
