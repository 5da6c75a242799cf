package quizModel

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/domain/failures"
)

type Question struct {
	Text               string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_answer"`
}

type QuizSet struct {
	Questions []Question `json:"questions"`
}

// wire shape of a single question as the model writes it
type rawQuestion struct {
	Question      string          `json:"question"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer any             `json:"correct_answer"`
}

// ParseQuiz turns a model reply into a validated QuizSet.
// Code fences are stripped first; when the remaining text is not JSON but
// carries one complete JSON object inside prose, that object is used.
// Any shape violation rejects the whole set.
func ParseQuiz(response string) (QuizSet, error) {
	cleaned := strings.TrimSpace(stripCodeFences(response))

	payload, err := extractPayload(cleaned)
	if err != nil {
		return QuizSet{}, failures.QuizParse(snippet(response), err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(payload, &top); err != nil {
		return QuizSet{}, failures.InvalidSchema("top level value is not an object")
	}

	questionsRaw, ok := top["questions"]
	if !ok {
		return QuizSet{}, failures.InvalidSchema("questions field missing")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(questionsRaw, &items); err != nil || items == nil {
		return QuizSet{}, failures.InvalidSchema("questions is not an array")
	}

	quiz := QuizSet{Questions: make([]Question, 0, len(items))}
	for i, item := range items {
		q, err := toQuestion(i, item)
		if err != nil {
			return QuizSet{}, err
		}
		quiz.Questions = append(quiz.Questions, q)
	}

	if err := Validate(quiz); err != nil {
		return QuizSet{}, err
	}
	return quiz, nil
}

// Validate checks the quiz size and every question's shape.
func Validate(quiz QuizSet) error {
	if len(quiz.Questions) != config.QuizQuestionCount {
		return failures.InvalidSchema(fmt.Sprintf("expected %d questions, got %d", config.QuizQuestionCount, len(quiz.Questions)))
	}
	for i, q := range quiz.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return failures.InvalidSchema(fmt.Sprintf("question %d has no text", i+1))
		}
		if len(q.Options) != config.QuizOptionCount {
			return failures.InvalidSchema(fmt.Sprintf("question %d has %d options, want %d", i+1, len(q.Options), config.QuizOptionCount))
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return failures.InvalidSchema(fmt.Sprintf("question %d option %d is empty", i+1, j+1))
			}
		}
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= config.QuizOptionCount {
			return failures.InvalidSchema(fmt.Sprintf("question %d correct_answer %d out of range", i+1, q.CorrectOptionIndex))
		}
	}
	return nil
}

func toQuestion(i int, item json.RawMessage) (Question, error) {
	var raw rawQuestion
	if err := json.Unmarshal(item, &raw); err != nil {
		return Question{}, failures.InvalidSchema(fmt.Sprintf("question %d is not an object", i+1))
	}

	var options []string
	if err := json.Unmarshal(raw.Options, &options); err != nil {
		return Question{}, failures.InvalidSchema(fmt.Sprintf("question %d options are not a list of strings", i+1))
	}

	index, ok := raw.CorrectAnswer.(float64)
	if !ok || index != math.Trunc(index) {
		return Question{}, failures.InvalidSchema(fmt.Sprintf("question %d correct_answer is not an integer", i+1))
	}

	return Question{
		Text:               strings.TrimSpace(raw.Question),
		Options:            options,
		CorrectOptionIndex: int(index),
	}, nil
}

func extractPayload(cleaned string) ([]byte, error) {
	if json.Valid([]byte(cleaned)) {
		return []byte(cleaned), nil
	}

	start := strings.Index(cleaned, "{")
	if start == -1 {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var embedded json.RawMessage
	if err := json.NewDecoder(strings.NewReader(cleaned[start:])).Decode(&embedded); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	return embedded, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		firstNewline := strings.Index(s, "\n")
		if firstNewline == -1 {
			s = strings.TrimPrefix(s, "```")
			s = strings.TrimPrefix(s, "json")
		} else {
			s = s[firstNewline+1:]
		}
	}

	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return s
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= config.QuizErrorSnippetLimit {
		return s
	}
	return string(r[:config.QuizErrorSnippetLimit]) + "..."
}
