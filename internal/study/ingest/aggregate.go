package ingest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/domain/failures"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
	"golang.org/x/sync/errgroup"
)

type Extractor interface {
	ExtractText(ctx context.Context, doc commonModels.UploadedDocument) (string, error)
}

var cleanupLogger = logger_i.NewLogger("Upload Cleanup")

// Aggregate joins the texts in the given order, each behind a "=== name ===" header.
func Aggregate(texts []commonModels.NamedText) string {
	var b strings.Builder
	for _, t := range texts {
		b.WriteString("\n\n=== ")
		b.WriteString(t.Name)
		b.WriteString(" ===\n\n")
		b.WriteString(t.Text)
	}
	return b.String()
}

// ExtractAll extracts every document with at most limit running at once and
// returns the texts in input order. Every document's file is removed before
// ExtractAll returns, whatever the outcome. The first failure is returned.
func ExtractAll(ctx context.Context, extractor Extractor, docs []commonModels.UploadedDocument, limit int) ([]commonModels.NamedText, error) {
	if limit <= 0 {
		limit = config.ExtractionParallelism
	}

	results := make([]commonModels.NamedText, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, doc := range docs {
		g.Go(func() error {
			defer RemoveUpload(doc.StoragePath)

			if err := gctx.Err(); err != nil {
				return failures.Extraction(doc.Extension(), err)
			}
			text, err := extractor.ExtractText(gctx, doc)
			if err != nil {
				return err
			}
			results[i] = commonModels.NamedText{Name: doc.DisplayName(), Text: text}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RemoveUpload deletes a staged upload. A file that is already gone is not an error.
func RemoveUpload(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		cleanupLogger.Error("Error removing file", "path", path, "error", err)
	}
}
