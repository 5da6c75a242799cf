package openaiLLM

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/study/llm"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type llmClient struct {
	client            openai.Client
	modelName         string
	systemInstruction string
	logger            *logger_i.Logger
}

// NewOpenAIClient works against api.openai.com or any compatible endpoint when baseURL is set.
// Retries are off: every call is a single attempt.
func NewOpenAIClient(apiKey string, modelName string, baseURL string, httpClient *http.Client) (llm.Provider, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is not set")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	logger := logger_i.NewLogger("llm_openai")
	logger.Info("OpenAI client created", "model", modelName)

	return &llmClient{
		client:            openai.NewClient(opts...),
		modelName:         modelName,
		systemInstruction: config.OpenAIModelContext,
		logger:            logger,
	}, nil
}

func (c *llmClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := c.logger.FromContext(ctx)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemInstruction),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(float64(config.ModelTemperature)),
	})
	if err != nil {
		log.Error("OpenAI completion failed", "error", err)
		return "", fmt.Errorf("openai completion: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", errors.New("openai returned an empty response")
	}
	log.Debug("OpenAI response received", "chars", len(text))
	return text, nil
}

func responseText(resp *openai.ChatCompletion) string {
	if resp == nil || len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
