package commonModels

import (
	"path/filepath"
	"strings"
)

// UploadedDocument is a file staged on disk for exactly one extraction.
type UploadedDocument struct {
	OriginalName string `json:"original_name"`
	StoragePath  string `json:"-"`
	MimeType     string `json:"mime_type"`
	SizeBytes    int64  `json:"size_bytes"`
}

// Extension is the declared, lowercased extension without the dot.
// The original name wins over the storage path.
func (d UploadedDocument) Extension() string {
	ext := filepath.Ext(d.OriginalName)
	if ext == "" {
		ext = filepath.Ext(d.StoragePath)
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// DisplayName is the name used in corpus headers.
func (d UploadedDocument) DisplayName() string {
	if d.OriginalName != "" {
		return filepath.Base(d.OriginalName)
	}
	return filepath.Base(d.StoragePath)
}

// NamedText is one document's extracted text.
type NamedText struct {
	Name string
	Text string
}

type ChatExchange struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SummaryResult struct {
	Summary       string   `json:"summary"`
	Documents     []string `json:"documents"`
	OriginalChars int      `json:"original_chars"`
	SummaryChars  int      `json:"summary_chars"`
}

type DocType string

var PDF DocType = "pdf"
var DOCX DocType = "docx"
var PPTX DocType = "pptx"
var TXT DocType = "txt"
