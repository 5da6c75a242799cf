package study

import (
	"context"
	"fmt"
	"net/http"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/study/llm"
	"github.com/akolanti/StudyAPI/internal/study/llm/gemini"
	"github.com/akolanti/StudyAPI/internal/study/llm/openaiLLM"
)

// NewProvider builds the LLM client named by settings.LLMProvider.
func NewProvider(ctx context.Context, settings *config.Settings, httpClient *http.Client) (llm.Provider, error) {
	switch settings.LLMProvider {
	case config.LLMProviderGemini:
		return gemini.NewGeminiClient(ctx, settings.GeminiAPIKey, settings.GeminiModel, httpClient)
	case config.LLMProviderOpenAI:
		return openaiLLM.NewOpenAIClient(settings.OpenAIAPIKey, settings.OpenAIModel, settings.OpenAIBaseURL, httpClient)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", settings.LLMProvider)
	}
}
