package handlers

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/akolanti/StudyAPI/internal/adapter"
	"github.com/akolanti/StudyAPI/internal/adapter/utils"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/domain/failures"
	"github.com/akolanti/StudyAPI/internal/study/ingest"
	"github.com/gabriel-vasile/mimetype"
)

const uploadFormField = "files"

// browsers and curl send these for any file they can't classify
var genericMimeTypes = map[string]bool{
	"":                         true,
	"application/octet-stream": true,
}

var allowedMimeTypes = map[string][]string{
	"pdf":  {"application/pdf", "application/x-pdf"},
	"docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	"pptx": {"application/vnd.openxmlformats-officedocument.presentationml.presentation", "application/zip"},
	"txt":  {"text/plain"},
}

type uploadRejection struct {
	httpCode int
	response any
}

// checkUploads validates every part before anything is written to disk.
func checkUploads(files []*multipart.FileHeader) *uploadRejection {
	if len(files) == 0 {
		return &uploadRejection{
			httpCode: http.StatusBadRequest,
			response: adapter.BadRequest(string(failures.EmptyContent), "Upload at least one file in the 'files' field.", http.StatusBadRequest),
		}
	}
	if len(files) > config.MaxFilesPerRequest {
		return &uploadRejection{
			httpCode: http.StatusBadRequest,
			response: adapter.BadRequest("TOO_MANY_FILES", fmt.Sprintf("Upload at most %d files at once.", config.MaxFilesPerRequest), http.StatusBadRequest),
		}
	}

	var total int64
	for _, header := range files {
		doc := commonModels.UploadedDocument{OriginalName: header.Filename}
		ext := doc.Extension()
		if !ingest.IsSupported(ext) {
			return rejectFailure(failures.Unsupported(ext))
		}
		if !mimeAllowed(ext, header.Header.Get("Content-Type")) {
			return rejectFailure(failures.Unsupported(header.Header.Get("Content-Type")))
		}
		if header.Size > config.MaxUploadFileBytes {
			return &uploadRejection{
				httpCode: http.StatusRequestEntityTooLarge,
				response: adapter.BadRequest("FILE_TOO_LARGE", fmt.Sprintf("%s is larger than %d MB.", doc.DisplayName(), config.MaxUploadFileBytes>>20), http.StatusRequestEntityTooLarge),
			}
		}
		total += header.Size
	}
	if total > config.MaxAggregateUploadBytes {
		return &uploadRejection{
			httpCode: http.StatusRequestEntityTooLarge,
			response: adapter.BadRequest("FILE_TOO_LARGE", fmt.Sprintf("The upload is larger than %d MB in total.", config.MaxAggregateUploadBytes>>20), http.StatusRequestEntityTooLarge),
		}
	}
	return nil
}

func rejectFailure(err error) *uploadRejection {
	res := adapter.ToErrorResponse(err)
	return &uploadRejection{httpCode: res.Error.Code, response: res}
}

func mimeAllowed(ext string, declared string) bool {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(declared))
	}
	if genericMimeTypes[mediaType] {
		return true
	}
	for _, allowed := range allowedMimeTypes[ext] {
		if mediaType == allowed {
			return true
		}
	}
	return false
}

// saveUploads writes each part under a fresh UUID name that keeps the extension.
// On error nothing it wrote is left behind.
func saveUploads(targetDir string, files []*multipart.FileHeader) ([]commonModels.UploadedDocument, error) {
	docs := make([]commonModels.UploadedDocument, 0, len(files))
	for _, header := range files {
		doc, err := saveUpload(targetDir, header)
		if err != nil {
			removeUploads(docs)
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func saveUpload(targetDir string, header *multipart.FileHeader) (commonModels.UploadedDocument, error) {
	doc := commonModels.UploadedDocument{OriginalName: filepath.Base(header.Filename)}

	fileReader, err := header.Open()
	if err != nil {
		return doc, fmt.Errorf("open part %s: %w", header.Filename, err)
	}
	defer fileReader.Close()

	doc.StoragePath = filepath.Join(targetDir, utils.GetNewUUID()+"."+doc.Extension())
	destinationFileWriter, err := os.OpenFile(doc.StoragePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return doc, fmt.Errorf("create %s: %w", doc.StoragePath, err)
	}

	written, copyErr := io.Copy(destinationFileWriter, io.LimitReader(fileReader, config.MaxUploadFileBytes+1))
	closeErr := destinationFileWriter.Close()
	if copyErr == nil && written > config.MaxUploadFileBytes {
		copyErr = fmt.Errorf("%s exceeds the per-file limit", header.Filename)
	}
	if copyErr != nil || closeErr != nil {
		ingest.RemoveUpload(doc.StoragePath)
		if copyErr != nil {
			return doc, fmt.Errorf("write %s: %w", header.Filename, copyErr)
		}
		return doc, fmt.Errorf("close %s: %w", header.Filename, closeErr)
	}

	doc.SizeBytes = written
	doc.MimeType = detectMimeType(doc.StoragePath, header.Header.Get("Content-Type"))
	return doc, nil
}

func detectMimeType(path string, declared string) string {
	if !genericMimeTypes[declared] {
		return declared
	}
	detected, err := mimetype.DetectFile(path)
	if err != nil {
		return declared
	}
	return detected.String()
}

func removeUploads(docs []commonModels.UploadedDocument) {
	for _, doc := range docs {
		ingest.RemoveUpload(doc.StoragePath)
	}
}
