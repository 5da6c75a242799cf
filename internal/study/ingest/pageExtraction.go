package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"code.sajari.com/docconv"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat/docxtxt"
)

var pageLogger = logger_i.NewLogger("Page Extraction")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func extractPDF(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat pdf: %w", err)
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	numPages := reader.NumPage()
	pageLogger.Debug("extractPDF", "number of pages", numPages)

	var pages []string
	var lastErr error
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(ctx, page)
		if err != nil {
			// keep going, one bad page should not lose the document
			pageLogger.Warn("Error parsing page content", "page", i, "error", err)
			lastErr = err
			continue
		}
		if strings.TrimSpace(content) != "" {
			pages = append(pages, strings.TrimSpace(content))
		}
	}

	if len(pages) == 0 && lastErr != nil {
		return "", fmt.Errorf("no page could be extracted: %w", lastErr)
	}
	return strings.Join(pages, "\n\n"), nil
}

func protectExtract(ctx context.Context, page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- result{err: fmt.Errorf("page panic: %v", r)}
			}
		}()
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()

	timer := time.NewTimer(config.PageExtractTimeout)
	defer timer.Stop()

	select {
	case r := <-resChan:
		return r.content, r.err
	case <-timer.C:
		return "", errors.New("page extraction timed out")
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func extractDocx(_ context.Context, path string) (string, error) {
	// a payload that is not a zip must fail, never come back as raw text
	text, err := docxtxt.ToStr(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract docx: %w", err)
	}
	return text, nil
}

func extractPptx(_ context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pptx: %w", err)
	}
	defer f.Close()

	text, _, err := docconv.ConvertPptx(f)
	if err != nil {
		return "", fmt.Errorf("failed to extract pptx: %w", err)
	}
	return text, nil
}

func extractTxt(_ context.Context, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read txt: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		pageLogger.Warn("txt file is not valid UTF-8, replacing invalid bytes", "path", path)
		return strings.ToValidUTF8(string(raw), "�"), nil
	}
	return string(raw), nil
}
