package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
)

// stageFiles copies the inputs into a temp dir. Extraction deletes what it reads,
// so the pipeline only ever sees the copies.
func stageFiles(paths []string) ([]commonModels.UploadedDocument, func(), error) {
	dir, err := os.MkdirTemp("", "studycli-*")
	if err != nil {
		return nil, nil, fmt.Errorf("create staging dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	docs := make([]commonModels.UploadedDocument, 0, len(paths))
	for i, path := range paths {
		doc, err := stageFile(dir, i, path)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		docs = append(docs, doc)
	}
	return docs, cleanup, nil
}

func stageFile(dir string, index int, path string) (commonModels.UploadedDocument, error) {
	src, err := os.Open(path)
	if err != nil {
		return commonModels.UploadedDocument{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	doc := commonModels.UploadedDocument{OriginalName: filepath.Base(path)}
	doc.StoragePath = filepath.Join(dir, fmt.Sprintf("%02d-%s", index, doc.OriginalName))

	dst, err := os.Create(doc.StoragePath)
	if err != nil {
		return doc, fmt.Errorf("stage %s: %w", path, err)
	}
	written, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return doc, fmt.Errorf("stage %s: %w", path, err)
	}
	doc.SizeBytes = written
	return doc, nil
}
