package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/thomas-vilte/pr-autofill/internal/config"
	"github.com/thomas-vilte/pr-autofill/internal/domain/models"
	"github.com/thomas-vilte/pr-autofill/internal/domain/ports"
	"github.com/thomas-vilte/pr-autofill/internal/infrastructure/httpclient"
	"github.com/thomas-vilte/pr-autofill/internal/logger"
)

var _ ports.TicketManager = (*JiraService)(nil)

// JiraService representa el servicio para interactuar con la API de Jira.
type JiraService struct {
	baseURL  string
	apiToken string
	client   httpclient.HTTPClient
}

// NewJiraService crea una nueva instancia de JiraService.
func NewJiraService(cfg *config.Config, client httpclient.HTTPClient) *JiraService {
	return &JiraService{
		baseURL:  cfg.JiraConfig.BaseURL,
		apiToken: cfg.JiraConfig.APIToken,
		client:   client,
	}
}

type (
	issueResponse struct {
		Fields issueFields `json:"fields"`
	}

	issueFields struct {
		// Description puede venir como string plano (API v2) o como un
		// documento de Atlassian (ADF), según cómo esté configurada la
		// instancia. Se resuelve recién al parsear.
		Description json.RawMessage `json:"description"`
	}

	atlassianDoc struct {
		Type    string       `json:"type"`
		Content []docContent `json:"content"`
	}

	docContent struct {
		Type    string       `json:"type"`
		Text    string       `json:"text,omitempty"`
		Content []docContent `json:"content,omitempty"`
	}
)

// GetTicketInfo obtiene la descripción de un ticket de Jira. Los errores que
// retorna se degradan aguas arriba a una descripción vacía.
func (s *JiraService) GetTicketInfo(ctx context.Context, key string) (models.TicketInfo, error) {
	url := fmt.Sprintf("%s/rest/api/2/issue/%s", s.baseURL, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.TicketInfo{}, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.TicketInfo{}, fmt.Errorf("error making request to jira API: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn(ctx, "error closing response body", "error", err)
		}
	}()

	logger.Debug(ctx, "jira issue request finished",
		"issue_key", key,
		"status_code", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return models.TicketInfo{}, fmt.Errorf("error inesperado al obtener el ticket %s: %s", key, resp.Status)
	}

	var issue issueResponse
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return models.TicketInfo{}, fmt.Errorf("error decoding response: %w", err)
	}

	description, err := parseDescription(issue.Fields.Description)
	if err != nil {
		return models.TicketInfo{}, err
	}

	return models.TicketInfo{
		Key:         key,
		Description: description,
	}, nil
}

// parseDescription resuelve las dos formas que puede tomar el campo: un
// string plano o un documento estructurado del que solo se toman los bloques
// "paragraph" de primer nivel y sus nodos "text".
func parseDescription(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var flat string
	if err := json.Unmarshal(raw, &flat); err == nil {
		return strings.TrimSpace(flat), nil
	}

	var doc atlassianDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("error unmarshaling description: %w", err)
	}

	var result strings.Builder
	for _, block := range doc.Content {
		if block.Type != "paragraph" {
			continue
		}
		for _, node := range block.Content {
			if node.Type == "text" {
				result.WriteString(node.Text)
				result.WriteString(" ")
			}
		}
	}

	return strings.TrimSpace(result.String()), nil
}
