package ingest

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/domain/failures"
	"github.com/akolanti/StudyAPI/internal/metrics"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

// Strategy produces plain text from the file at path for one format.
type Strategy func(ctx context.Context, path string) (string, error)

var SupportedTypes = []commonModels.DocType{
	commonModels.PDF,
	commonModels.DOCX,
	commonModels.PPTX,
	commonModels.TXT,
}

type Dispatcher struct {
	strategies map[commonModels.DocType]Strategy
	logger     *logger_i.Logger
}

func NewDispatcher() *Dispatcher {
	return NewDispatcherWith(nil)
}

// NewDispatcherWith replaces the default strategy of any supported type present in overrides.
// Keys outside SupportedTypes are ignored.
func NewDispatcherWith(overrides map[commonModels.DocType]Strategy) *Dispatcher {
	strategies := map[commonModels.DocType]Strategy{
		commonModels.PDF:  extractPDF,
		commonModels.DOCX: extractDocx,
		commonModels.PPTX: extractPptx,
		commonModels.TXT:  extractTxt,
	}
	for docType, strategy := range overrides {
		if _, ok := strategies[docType]; ok && strategy != nil {
			strategies[docType] = strategy
		}
	}
	return &Dispatcher{
		strategies: strategies,
		logger:     logger_i.NewLogger("Dispatcher"),
	}
}

func IsSupported(extension string) bool {
	ext := commonModels.DocType(strings.ToLower(strings.TrimPrefix(extension, ".")))
	for _, t := range SupportedTypes {
		if t == ext {
			return true
		}
	}
	return false
}

// ExtractText returns the trimmed text of doc. The file is left in place.
func (d *Dispatcher) ExtractText(ctx context.Context, doc commonModels.UploadedDocument) (string, error) {
	log := d.logger.FromContext(ctx).With("document", doc.DisplayName())

	format := doc.Extension()
	strategy, ok := d.strategies[commonModels.DocType(format)]
	if !ok {
		log.Warn("Unsupported format", "extension", format)
		return "", failures.Unsupported(format)
	}

	info, err := os.Stat(doc.StoragePath)
	if err != nil {
		log.Error("Uploaded file is not readable", "error", err)
		return "", failures.Extraction(format, err)
	}
	if info.Size() == 0 {
		return "", failures.Empty(doc.DisplayName())
	}

	start := time.Now()
	text, err := runStrategy(ctx, strategy, doc.StoragePath)
	metrics.CaptureExecutionMetrics("extract_"+format, time.Since(start))
	metrics.IncrementDocumentsExtracted(format)
	if err != nil {
		log.Error("Extraction failed", "format", format, "error", err)
		return "", failures.Extraction(format, err)
	}

	text = normalize(text)
	if text == "" {
		log.Warn("Extraction produced no text", "format", format)
		return "", failures.Empty(doc.DisplayName())
	}

	log.Debug("Extraction complete", "format", format, "chars", len(text))
	return text, nil
}

// parser libraries panic on some malformed files
func runStrategy(ctx context.Context, strategy Strategy, path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return strategy(ctx, path)
}

func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\x00", "")
	return strings.TrimSpace(text)
}
