package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/thomas-vilte/pr-autofill/internal/errors"
)

type (
	// Config es la configuración inmutable de una ejecución. Se construye una
	// sola vez desde las flags de la CLI y las variables INPUT_* que inyecta
	// el runner, y se pasa explícitamente a cada componente.
	Config struct {
		GitHubAPIURL string `json:"github_api_url"`
		Owner        string `json:"owner"`
		Repo         string `json:"repo"`
		PRNumber     int    `json:"pr_number"`
		GitHubToken  string `json:"-"`

		AllowedUsers  []string `json:"allowed_users,omitempty"`
		ExcludedFiles []string `json:"excluded_files,omitempty"`

		JiraConfig   JiraConfig   `json:"jira_config"`
		OpenAIConfig OpenAIConfig `json:"openai_config"`
	}

	JiraConfig struct {
		APIToken string `json:"-"`
		IssueKey string `json:"issue_key,omitempty"`
		BaseURL  string `json:"base_url,omitempty"`
	}

	OpenAIConfig struct {
		APIKey         string  `json:"-"`
		Model          string  `json:"model"`
		MaxTokens      int     `json:"max_tokens"`
		Temperature    float64 `json:"temperature"`
		SamplePrompt   string  `json:"sample_prompt,omitempty"`
		SampleResponse string  `json:"sample_response,omitempty"`
	}

	// Params son los valores crudos que llegan por flags.
	Params struct {
		GitHubAPIURL string
		Repository   string
		PRNumber     int
		GitHubToken  string
		OpenAIAPIKey string
		JiraAPIToken string
		JiraIssueKey string
		JiraBaseURL  string
		AllowedUsers string
	}
)

const (
	defaultModel       = "gpt-3.5-turbo"
	defaultMaxTokens   = 1000
	defaultTemperature = 0.6
)

var defaultExcludedFiles = []string{"package-lock.json"}

// New arma la configuración completa a partir de las flags y del entorno.
// Las variables INPUT_* tienen prioridad sobre las flags cuando aplica.
func New(params Params) (*Config, error) {
	owner, repo, err := splitRepository(params.Repository)
	if err != nil {
		return nil, err
	}

	allowedUsers := params.AllowedUsers
	if fromEnv := os.Getenv("INPUT_ALLOWED_USERS"); fromEnv != "" {
		allowedUsers = fromEnv
	}

	cfg := &Config{
		GitHubAPIURL:  params.GitHubAPIURL,
		Owner:         owner,
		Repo:          repo,
		PRNumber:      params.PRNumber,
		GitHubToken:   params.GitHubToken,
		AllowedUsers:  splitList(allowedUsers),
		ExcludedFiles: excludedFilesFromEnv(),
		JiraConfig: JiraConfig{
			APIToken: params.JiraAPIToken,
			IssueKey: params.JiraIssueKey,
			BaseURL:  params.JiraBaseURL,
		},
		OpenAIConfig: OpenAIConfig{
			APIKey:         params.OpenAIAPIKey,
			Model:          envOrDefault("INPUT_OPENAI_MODEL", defaultModel),
			MaxTokens:      intFromEnv("INPUT_MAX_TOKENS", defaultMaxTokens),
			Temperature:    floatFromEnv("INPUT_TEMPERATURE", defaultTemperature),
			SamplePrompt:   os.Getenv("INPUT_MODEL_SAMPLE_PROMPT"),
			SampleResponse: os.Getenv("INPUT_MODEL_SAMPLE_RESPONSE"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsUserAllowed indica si el autor puede disparar la action. Una allow-list
// vacía significa que todos los usuarios están permitidos.
func (c *Config) IsUserAllowed(login string) bool {
	if len(c.AllowedUsers) == 0 {
		return true
	}
	for _, user := range c.AllowedUsers {
		if user == login {
			return true
		}
	}
	return false
}

// IsFileExcluded indica si un archivo se omite al armar el prompt. El archivo
// sigue contando en el listado, solo no aporta diff.
func (c *Config) IsFileExcluded(filename string) bool {
	for _, excluded := range c.ExcludedFiles {
		if excluded == filename {
			return true
		}
	}
	return false
}

// JiraConfigured indica si hay suficiente configuración para consultar Jira.
func (c *Config) JiraConfigured() bool {
	return c.JiraConfig.BaseURL != "" && c.JiraConfig.IssueKey != "" && c.JiraConfig.APIToken != ""
}

func validateConfig(cfg *Config) error {
	if cfg.GitHubAPIURL == "" {
		return errors.NewAppError(errors.TypeConfiguration, "GitHub API URL no puede estar vacía", nil)
	}
	if cfg.PRNumber <= 0 {
		return errors.ErrPRNumberMissing
	}
	if cfg.GitHubToken == "" {
		return errors.ErrGitHubTokenMissing
	}
	if cfg.OpenAIConfig.APIKey == "" {
		return errors.ErrOpenAIKeyMissing
	}
	if cfg.OpenAIConfig.MaxTokens <= 0 {
		return errors.NewAppError(errors.TypeConfiguration, "INPUT_MAX_TOKENS debe ser mayor que 0", nil)
	}
	return nil
}

func splitRepository(repository string) (string, string, error) {
	if repository == "" {
		return "", "", errors.ErrRepositoryMissing
	}

	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.ErrInvalidRepository.WithContext("repository", repository)
	}

	return parts[0], parts[1], nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var values []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			values = append(values, item)
		}
	}
	return values
}

func excludedFilesFromEnv() []string {
	if raw, ok := os.LookupEnv("INPUT_EXCLUDED_FILES"); ok {
		return splitList(raw)
	}
	return defaultExcludedFiles
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intFromEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s=%q no es un entero válido, usando %d\n", key, raw, fallback)
		return fallback
	}
	return value
}

func floatFromEnv(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s=%q no es un número válido, usando %g\n", key, raw, fallback)
		return fallback
	}
	return value
}
