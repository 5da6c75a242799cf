package study

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/domain/failures"
	"github.com/akolanti/StudyAPI/internal/domain/quizModel"
	"github.com/akolanti/StudyAPI/internal/metrics"
	"github.com/akolanti/StudyAPI/internal/session"
	"github.com/akolanti/StudyAPI/internal/study/generator"
	"github.com/akolanti/StudyAPI/internal/study/ingest"
	"github.com/akolanti/StudyAPI/internal/study/llm"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

// Service is what the handlers and the CLI call. The extractor, provider and note store stay behind it.
type Service interface {
	Summarize(ctx context.Context, sc *session.Context, docs []commonModels.UploadedDocument) (commonModels.SummaryResult, error)
	Answer(ctx context.Context, sc session.Context, question string) (commonModels.ChatExchange, error)
	Quiz(ctx context.Context, sc session.Context) (quizModel.QuizSet, error)
}

type service struct {
	extractor   ingest.Extractor
	generator   *generator.Generator
	sessions    *session.Manager
	parallelism int
	logger      *logger_i.Logger
}

func NewService(extractor ingest.Extractor, provider llm.Provider, sessions *session.Manager, parallelism int) Service {
	return &service{
		extractor:   extractor,
		generator:   generator.NewGenerator(provider),
		sessions:    sessions,
		parallelism: parallelism,
		logger:      logger_i.NewLogger("Study Service"),
	}
}

// Summarize extracts, aggregates and summarizes docs, then makes the summary the session's working note.
// Every uploaded file is gone when Summarize returns.
func (s *service) Summarize(ctx context.Context, sc *session.Context, docs []commonModels.UploadedDocument) (commonModels.SummaryResult, error) {
	log := s.logger.FromContext(ctx)
	start := time.Now()
	defer func() { metrics.CaptureOperationMetrics("summarize", time.Since(start)) }()

	if len(docs) == 0 {
		return commonModels.SummaryResult{}, s.fail(log, "summarize", failures.Empty("no documents uploaded"))
	}

	texts, err := s.executeExtractionStep(ctx, log, docs)
	if err != nil {
		return commonModels.SummaryResult{}, s.fail(log, "summarize", err)
	}

	corpus := ingest.Aggregate(texts)
	summary, err := s.executeSummaryStep(ctx, log, corpus)
	if err != nil {
		return commonModels.SummaryResult{}, s.fail(log, "summarize", err)
	}

	if err := s.sessions.Commit(ctx, sc, summary); err != nil {
		return commonModels.SummaryResult{}, s.fail(log, "summarize", err)
	}

	result := commonModels.SummaryResult{
		Summary:       summary,
		Documents:     documentNames(texts),
		OriginalChars: originalChars(texts),
		SummaryChars:  utf8.RuneCountInString(summary),
	}
	log.Info("Summary ready", "documents", len(texts), "original_chars", result.OriginalChars, "summary_chars", result.SummaryChars)
	return result, nil
}

func (s *service) Answer(ctx context.Context, sc session.Context, question string) (commonModels.ChatExchange, error) {
	log := s.logger.FromContext(ctx)
	start := time.Now()
	defer func() { metrics.CaptureOperationMetrics("answer", time.Since(start)) }()

	answer, err := s.generator.Answer(ctx, sc.WorkingNote, question)
	if err != nil {
		return commonModels.ChatExchange{}, s.fail(log, "answer", err)
	}
	return commonModels.ChatExchange{Question: strings.TrimSpace(question), Answer: answer}, nil
}

func (s *service) Quiz(ctx context.Context, sc session.Context) (quizModel.QuizSet, error) {
	log := s.logger.FromContext(ctx)
	start := time.Now()
	defer func() { metrics.CaptureOperationMetrics("quiz", time.Since(start)) }()

	quiz, err := s.generator.GenerateQuiz(ctx, sc.WorkingNote)
	if err != nil {
		return quizModel.QuizSet{}, s.fail(log, "quiz", err)
	}
	return quiz, nil
}
