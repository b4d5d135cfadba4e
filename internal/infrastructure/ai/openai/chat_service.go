package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/thomas-vilte/pr-autofill/internal/config"
	"github.com/thomas-vilte/pr-autofill/internal/domain/ports"
	"github.com/thomas-vilte/pr-autofill/internal/infrastructure/ai"
	"github.com/thomas-vilte/pr-autofill/internal/infrastructure/httpclient"
	"github.com/thomas-vilte/pr-autofill/internal/logger"
)

var _ ports.DescriptionGenerator = (*ChatService)(nil)

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

// Familias de modelos que rechazan el parámetro temperature. El match es por
// substring, insensible a mayúsculas.
var temperatureIncompatible = []string{"gpt-5", "o1", "o3", "o4"}

// ChatService llama a la API de chat completions de OpenAI con un contexto
// few-shot fijo.
type ChatService struct {
	apiKey         string
	model          string
	maxTokens      int
	temperature    float64
	samplePrompt   string
	sampleResponse string
	endpoint       string
	client         httpclient.HTTPClient
}

func NewChatService(cfg *config.Config, client httpclient.HTTPClient) *ChatService {
	samplePrompt := cfg.OpenAIConfig.SamplePrompt
	if samplePrompt == "" {
		samplePrompt = ai.SamplePrompt
	}

	sampleResponse := cfg.OpenAIConfig.SampleResponse
	if sampleResponse == "" {
		sampleResponse = ai.SampleResponse
	}

	return &ChatService{
		apiKey:         cfg.OpenAIConfig.APIKey,
		model:          cfg.OpenAIConfig.Model,
		maxTokens:      cfg.OpenAIConfig.MaxTokens,
		temperature:    cfg.OpenAIConfig.Temperature,
		samplePrompt:   samplePrompt,
		sampleResponse: sampleResponse,
		endpoint:       defaultEndpoint,
		client:         client,
	}
}

type (
	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatRequest struct {
		Model       string        `json:"model"`
		Messages    []chatMessage `json:"messages"`
		MaxTokens   int           `json:"max_tokens"`
		Temperature *float64      `json:"temperature,omitempty"`
	}

	chatResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	apiErrorResponse struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Param   string `json:"param"`
			Code    string `json:"code"`
		} `json:"error"`
	}
)

// GenerateDescription envía el prompt con el contexto few-shot. Si el
// proveedor rechaza específicamente el parámetro temperature se reintenta
// exactamente una vez sin él; cualquier otra falla es fatal.
func (s *ChatService) GenerateDescription(ctx context.Context, prompt string) (string, error) {
	withTemperature := !modelRejectsTemperature(s.model)

	logger.Info(ctx, "requesting completion",
		"model", s.model,
		"with_temperature", withTemperature)

	text, temperatureRejected, err := s.complete(ctx, prompt, withTemperature)
	if err != nil && temperatureRejected && withTemperature {
		logger.Warn(ctx, "model rejected the temperature parameter, retrying without it",
			"model", s.model)
		text, _, err = s.complete(ctx, prompt, false)
	}
	if err != nil {
		return "", err
	}

	return text, nil
}

func (s *ChatService) complete(ctx context.Context, prompt string, withTemperature bool) (string, bool, error) {
	request := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: ai.SystemInstruction},
			{Role: "user", Content: s.samplePrompt},
			{Role: "assistant", Content: s.sampleResponse},
			{Role: "user", Content: prompt},
		},
		MaxTokens: s.maxTokens,
	}
	if withTemperature {
		temperature := s.temperature
		request.Temperature = &temperature
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", false, fmt.Errorf("error serializando el request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("error creando el request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("error llamando a la API de OpenAI: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn(ctx, "error closing response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)

		var apiErr apiErrorResponse
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil {
			rejected := isUnsupportedTemperature(apiErr)
			return "", rejected, fmt.Errorf("la API de OpenAI respondió %s: %s", resp.Status, apiErr.Error.Message)
		}

		return "", false, fmt.Errorf("la API de OpenAI respondió %s: %s", resp.Status, string(raw))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", false, fmt.Errorf("error decodificando la respuesta: %w", err)
	}

	// Sin choices se trata como texto vacío, no como error
	if len(parsed.Choices) == 0 {
		return "", false, nil
	}

	return parsed.Choices[0].Message.Content, false, nil
}

func modelRejectsTemperature(model string) bool {
	lower := strings.ToLower(model)
	for _, family := range temperatureIncompatible {
		if strings.Contains(lower, family) {
			return true
		}
	}
	return false
}

func isUnsupportedTemperature(apiErr apiErrorResponse) bool {
	if apiErr.Error.Param == "temperature" {
		return true
	}

	message := strings.ToLower(apiErr.Error.Message)
	return strings.Contains(message, "temperature") &&
		(strings.Contains(message, "unsupported") || apiErr.Error.Code == "unsupported_parameter")
}
