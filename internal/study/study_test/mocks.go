package study_test

import (
	"context"
	"strings"
	"sync"

	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
)

// MockLLM implements llm.Provider
type MockLLM struct {
	mu         sync.Mutex
	Prompts    []string
	OnComplete func(ctx context.Context, prompt string) (string, error)
}

func (m *MockLLM) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()
	if m.OnComplete != nil {
		return m.OnComplete(ctx, prompt)
	}
	return "mocked llm response", nil
}

func (m *MockLLM) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

// MockExtractor implements ingest.Extractor
type MockExtractor struct {
	OnExtract func(ctx context.Context, doc commonModels.UploadedDocument) (string, error)
}

func (m *MockExtractor) ExtractText(ctx context.Context, doc commonModels.UploadedDocument) (string, error) {
	if m.OnExtract != nil {
		return m.OnExtract(ctx, doc)
	}
	return "extracted " + doc.OriginalName, nil
}

const studyQuiz = `{"questions":[
{"question":"What does photosynthesis convert light into?","options":["Energy","Sound","Rock","Salt"],"correct_answer":0},
{"question":"Which process uses light?","options":["Erosion","Photosynthesis","Fission","Osmosis"],"correct_answer":1},
{"question":"What is the input of photosynthesis?","options":["Heat","Gravity","Light","Magnetism"],"correct_answer":2},
{"question":"What kind of process is photosynthesis?","options":["Geological","Mechanical","Nuclear","Biological"],"correct_answer":3},
{"question":"What does the process produce?","options":["Energy","Noise","Metal","Dust"],"correct_answer":0}]}`

// StudyLLM answers like a well behaved model, keyed on the prompt kind.
func StudyLLM() *MockLLM {
	return &MockLLM{OnComplete: func(ctx context.Context, prompt string) (string, error) {
		switch {
		case strings.HasPrefix(prompt, "Summarize"):
			return "- Photosynthesis converts light into energy.", nil
		case strings.HasPrefix(prompt, "Answer"):
			return "Photosynthesis turns light into chemical energy.", nil
		case strings.HasPrefix(prompt, "Create"):
			return "```json\n" + studyQuiz + "\n```", nil
		}
		return "", nil
	}}
}
