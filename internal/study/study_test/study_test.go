package study_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/data/store"
	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/domain/failures"
	"github.com/akolanti/StudyAPI/internal/session"
	"github.com/akolanti/StudyAPI/internal/study"
	"github.com/akolanti/StudyAPI/internal/study/ingest"
)

func stage(t *testing.T, name string, content string) commonModels.UploadedDocument {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return commonModels.UploadedDocument{OriginalName: name, StoragePath: path, MimeType: "text/plain", SizeBytes: int64(len(content))}
}

func newService(extractor ingest.Extractor, llm *MockLLM) (study.Service, *session.Manager) {
	sessions := session.NewManager(store.InitInMemoryNoteStore(time.Hour))
	return study.NewService(extractor, llm, sessions, 2), sessions
}

func TestPhotosynthesisScenario(t *testing.T) {
	llm := StudyLLM()
	svc, sessions := newService(ingest.NewDispatcher(), llm)
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "scenario")

	doc := stage(t, "biology.txt", "Photosynthesis converts light into energy.")
	sc, err := sessions.Load(ctx, "student-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	summary, err := svc.Summarize(ctx, &sc, []commonModels.UploadedDocument{doc})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !sc.HasNote() || sc.WorkingNote != summary.Summary {
		t.Fatalf("working note not set, got %q", sc.WorkingNote)
	}
	if !strings.HasPrefix(summary.Summary, "- ") {
		t.Errorf("expected a bullet summary, got %q", summary.Summary)
	}
	if summary.OriginalChars != len("Photosynthesis converts light into energy.") {
		t.Errorf("original chars = %d", summary.OriginalChars)
	}
	if summary.SummaryChars != len(summary.Summary) {
		t.Errorf("summary chars = %d", summary.SummaryChars)
	}
	if len(summary.Documents) != 1 || summary.Documents[0] != "biology.txt" {
		t.Errorf("documents = %v", summary.Documents)
	}
	if _, err := os.Stat(doc.StoragePath); !os.IsNotExist(err) {
		t.Error("uploaded file survived the request")
	}
	if !strings.Contains(llm.Prompts[0], "=== biology.txt ===") {
		t.Error("summary prompt is missing the document header")
	}

	// a later request reloads the session from the store
	reloaded, _ := sessions.Load(ctx, "student-1")

	exchange, err := svc.Answer(ctx, reloaded, "What does photosynthesis do?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if exchange.Answer == "" || exchange.Question != "What does photosynthesis do?" {
		t.Errorf("exchange = %+v", exchange)
	}
	if !strings.Contains(llm.Prompts[1], summary.Summary) {
		t.Error("answer prompt is not grounded on the working note")
	}

	quiz, err := svc.Quiz(ctx, reloaded)
	if err != nil {
		t.Fatalf("Quiz: %v", err)
	}
	if len(quiz.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options", i, len(q.Options))
		}
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex > 3 {
			t.Errorf("question %d index %d", i, q.CorrectOptionIndex)
		}
	}
	if llm.Calls() != 3 {
		t.Errorf("expected one provider call per operation, got %d", llm.Calls())
	}
}

func TestSummarize_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		docs       func(t *testing.T) []commonModels.UploadedDocument
		extractor  *MockExtractor
		llm        *MockLLM
		wantErr    error
		wantCalls  int
		keepsNote  bool
		wantCorpus []string
	}{
		{
			name: "Success_Multiple_Documents_In_Order",
			docs: func(t *testing.T) []commonModels.UploadedDocument {
				return []commonModels.UploadedDocument{stage(t, "b.txt", "b"), stage(t, "a.txt", "a")}
			},
			extractor:  &MockExtractor{},
			llm:        StudyLLM(),
			wantCalls:  1,
			wantCorpus: []string{"=== b.txt ===", "=== a.txt ==="},
		},
		{
			name:      "Failure_No_Documents",
			docs:      func(t *testing.T) []commonModels.UploadedDocument { return nil },
			extractor: &MockExtractor{},
			llm:       StudyLLM(),
			wantErr:   failures.ErrEmptyContent,
			keepsNote: true,
		},
		{
			name: "Failure_Extraction",
			docs: func(t *testing.T) []commonModels.UploadedDocument {
				return []commonModels.UploadedDocument{stage(t, "a.pdf", "x"), stage(t, "b.txt", "y")}
			},
			extractor: &MockExtractor{OnExtract: func(ctx context.Context, doc commonModels.UploadedDocument) (string, error) {
				if doc.OriginalName == "a.pdf" {
					return "", failures.Extraction("pdf", errors.New("broken xref"))
				}
				return "fine", nil
			}},
			llm:       StudyLLM(),
			wantErr:   failures.ErrExtractionFailed,
			keepsNote: true,
		},
		{
			name: "Failure_Unsupported",
			docs: func(t *testing.T) []commonModels.UploadedDocument {
				return []commonModels.UploadedDocument{stage(t, "photo.png", "png")}
			},
			extractor: nil,
			llm:       StudyLLM(),
			wantErr:   failures.ErrUnsupportedFormat,
			keepsNote: true,
		},
		{
			name: "Failure_AI",
			docs: func(t *testing.T) []commonModels.UploadedDocument {
				return []commonModels.UploadedDocument{stage(t, "a.txt", "a")}
			},
			extractor: &MockExtractor{},
			llm: &MockLLM{OnComplete: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			}},
			wantErr:   failures.ErrAI,
			wantCalls: 1,
			keepsNote: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var extractor ingest.Extractor = ingest.NewDispatcher()
			if tt.extractor != nil {
				extractor = tt.extractor
			}
			svc, sessions := newService(extractor, tt.llm)
			ctx := context.Background()

			sc, _ := sessions.Load(ctx, "s")
			_ = sessions.Commit(ctx, &sc, "previous note")

			docs := tt.docs(t)
			_, err := svc.Summarize(ctx, &sc, docs)

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tt.llm.Calls() != tt.wantCalls {
				t.Errorf("provider calls = %d, want %d", tt.llm.Calls(), tt.wantCalls)
			}

			stored, _ := sessions.Load(ctx, "s")
			if tt.keepsNote && stored.WorkingNote != "previous note" {
				t.Errorf("failed summarize changed the note to %q", stored.WorkingNote)
			}

			for _, doc := range docs {
				if _, statErr := os.Stat(doc.StoragePath); !os.IsNotExist(statErr) {
					t.Errorf("%s survived", doc.OriginalName)
				}
			}

			if len(tt.wantCorpus) > 0 {
				prompt := tt.llm.Prompts[0]
				last := -1
				for _, header := range tt.wantCorpus {
					idx := strings.Index(prompt, header)
					if idx <= last {
						t.Errorf("header %q out of order in %q", header, prompt)
					}
					last = idx
				}
			}
		})
	}
}

func TestChatAndQuizWithoutNote(t *testing.T) {
	llm := StudyLLM()
	svc, _ := newService(&MockExtractor{}, llm)
	empty := session.Context{SessionID: "fresh"}

	for _, question := range []string{"What is light?", "", "   "} {
		if _, err := svc.Answer(context.Background(), empty, question); !errors.Is(err, failures.ErrNoContextAvailable) {
			t.Errorf("Answer(%q) err = %v, want NoContextAvailable", question, err)
		}
	}
	if _, err := svc.Quiz(context.Background(), empty); !errors.Is(err, failures.ErrNoContextAvailable) {
		t.Errorf("Quiz err = %v, want NoContextAvailable", err)
	}
	if llm.Calls() != 0 {
		t.Errorf("provider should not be called, got %d calls", llm.Calls())
	}
}

func TestAnswer_EmptyQuestion(t *testing.T) {
	svc, _ := newService(&MockExtractor{}, StudyLLM())
	_, err := svc.Answer(context.Background(), session.Context{WorkingNote: "- note"}, " \t ")
	if !errors.Is(err, failures.ErrEmptyQuestion) {
		t.Fatalf("expected EmptyQuestion, got %v", err)
	}
}

func TestQuiz_MalformedResponse(t *testing.T) {
	llm := &MockLLM{OnComplete: func(ctx context.Context, prompt string) (string, error) {
		return "1. What is light? a) energy b) sound", nil
	}}
	svc, _ := newService(&MockExtractor{}, llm)

	quiz, err := svc.Quiz(context.Background(), session.Context{WorkingNote: "- note"})
	if !errors.Is(err, failures.ErrQuizParse) {
		t.Fatalf("expected QuizParseError, got %v", err)
	}
	if quiz.Questions != nil {
		t.Error("expected no partial quiz")
	}
}
