package study

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/domain/failures"
	"github.com/akolanti/StudyAPI/internal/metrics"
	"github.com/akolanti/StudyAPI/internal/study/ingest"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

func (s *service) fail(log *logger_i.Logger, operation string, err error) error {
	kind := failures.KindOf(err)
	metrics.IncrementPipelineFailure(string(kind))
	log.Warn("Operation failed", "operation", operation, "kind", kind, "error", err)
	return err
}

func (s *service) executeExtractionStep(ctx context.Context, log *logger_i.Logger, docs []commonModels.UploadedDocument) ([]commonModels.NamedText, error) {
	log.Debug("Extracting documents", "count", len(docs))

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("extraction", time.Since(start)) }()

	return ingest.ExtractAll(ctx, s.extractor, docs, s.parallelism)
}

func (s *service) executeSummaryStep(ctx context.Context, log *logger_i.Logger, corpus string) (string, error) {
	log.Debug("Summarizing corpus", "chars", utf8.RuneCountInString(corpus))
	return s.generator.Summarize(ctx, corpus)
}

func documentNames(texts []commonModels.NamedText) []string {
	names := make([]string, 0, len(texts))
	for _, t := range texts {
		names = append(names, t.Name)
	}
	return names
}

func originalChars(texts []commonModels.NamedText) int {
	total := 0
	for _, t := range texts {
		total += utf8.RuneCountInString(t.Text)
	}
	return total
}
