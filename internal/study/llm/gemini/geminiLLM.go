package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/study/llm"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client            *genai.Client
	modelName         string
	systemInstruction string
	logger            *logger_i.Logger
}

func NewGeminiClient(ctx context.Context, apiKey string, modelName string, httpClient *http.Client) (llm.Provider, error) {
	logger := logger_i.NewLogger("llm_gemini")
	if apiKey == "" {
		return nil, errors.New("gemini api key is not set")
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		logger.Error("Error creating Gemini client", "error", err)
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	logger.Info("Gemini client created", "model", modelName)
	return &llmClient{
		client:            c,
		modelName:         modelName,
		systemInstruction: config.GeminiModelContext,
		logger:            logger,
	}, nil
}

func (c *llmClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := c.logger.FromContext(ctx)

	contentConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: c.systemInstruction},
			},
		},
		Temperature: genai.Ptr(config.ModelTemperature),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), contentConfig)
	if err != nil {
		log.Error("Gemini generate failed", "error", err)
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if result == nil {
		return "", errors.New("gemini returned no result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	log.Debug("Gemini response received", "chars", len(text))
	return text, nil
}
