package generator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/akolanti/StudyAPI/internal/domain/failures"
	"github.com/akolanti/StudyAPI/internal/domain/quizModel"
	"github.com/akolanti/StudyAPI/internal/metrics"
	"github.com/akolanti/StudyAPI/internal/study/llm"
	"github.com/akolanti/StudyAPI/internal/study/prompts"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

var errEmptyResponse = errors.New("provider returned an empty response")

// Generator turns text into study artifacts. Each method calls the provider at most once.
type Generator struct {
	provider llm.Provider
	logger   *logger_i.Logger
}

func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{
		provider: provider,
		logger:   logger_i.NewLogger("Artifact Generator"),
	}
}

func (g *Generator) Summarize(ctx context.Context, corpus string) (string, error) {
	if strings.TrimSpace(corpus) == "" {
		return "", failures.Empty("corpus")
	}

	summary, err := g.complete(ctx, failures.StageSummarize, prompts.Summary(corpus))
	if err != nil {
		return "", err
	}
	return summary, nil
}

func (g *Generator) Answer(ctx context.Context, workingNote string, question string) (string, error) {
	if strings.TrimSpace(workingNote) == "" {
		return "", failures.NoContext()
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", failures.NoQuestion()
	}

	return g.complete(ctx, failures.StageAnswer, prompts.Answer(workingNote, question))
}

func (g *Generator) GenerateQuiz(ctx context.Context, workingNote string) (quizModel.QuizSet, error) {
	if strings.TrimSpace(workingNote) == "" {
		return quizModel.QuizSet{}, failures.NoContext()
	}

	response, err := g.complete(ctx, failures.StageQuiz, prompts.Quiz(workingNote))
	if err != nil {
		return quizModel.QuizSet{}, err
	}

	quiz, err := quizModel.ParseQuiz(response)
	if err != nil {
		g.logger.FromContext(ctx).Warn("Quiz response rejected", "kind", failures.KindOf(err), "error", err)
		return quizModel.QuizSet{}, err
	}
	return quiz, nil
}

// complete is the single provider call behind every artifact. Blank replies count as provider failures.
func (g *Generator) complete(ctx context.Context, stage string, prompt string) (string, error) {
	log := g.logger.FromContext(ctx).With("stage", stage)

	start := time.Now()
	response, err := g.provider.Complete(ctx, prompt)
	metrics.CaptureExecutionMetrics("llm_"+stage, time.Since(start))

	if err != nil {
		log.Error("Provider call failed", "error", err)
		return "", failures.AI(stage, err)
	}

	response = strings.TrimSpace(response)
	if response == "" {
		log.Error("Provider returned an empty response")
		return "", failures.AI(stage, errEmptyResponse)
	}
	log.Debug("Provider call complete", "chars", len(response))
	return response, nil
}
