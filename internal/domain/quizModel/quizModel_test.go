package quizModel

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/akolanti/StudyAPI/internal/domain/failures"
)

func validQuizJSON(t *testing.T) string {
	t.Helper()
	quiz := QuizSet{}
	for i := 0; i < 5; i++ {
		quiz.Questions = append(quiz.Questions, Question{
			Text:               "What does photosynthesis produce?",
			Options:            []string{"Energy", "Sound", "Rock", "Metal"},
			CorrectOptionIndex: i % 4,
		})
	}
	b, err := json.Marshal(quiz)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestParseQuiz_Accepts(t *testing.T) {
	body := validQuizJSON(t)

	tests := []struct {
		name     string
		response string
	}{
		{"plain", body},
		{"json fence", "```json\n" + body + "\n```"},
		{"bare fence", "```\n" + body + "\n```"},
		{"single line fence", "```json" + body + "```"},
		{"surrounding whitespace", "\n\n  " + body + "  \n"},
		{"object inside prose", "Here is your quiz:\n" + body + "\nGood luck!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz, err := ParseQuiz(tt.response)
			if err != nil {
				t.Fatalf("ParseQuiz() error = %v", err)
			}
			if len(quiz.Questions) != 5 {
				t.Fatalf("got %d questions, want 5", len(quiz.Questions))
			}
			for i, q := range quiz.Questions {
				if len(q.Options) != 4 {
					t.Errorf("question %d has %d options", i, len(q.Options))
				}
				if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex > 3 {
					t.Errorf("question %d index %d out of range", i, q.CorrectOptionIndex)
				}
			}
		})
	}
}

func TestParseQuiz_ParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"empty", ""},
		{"prose only", "Sorry, I cannot create a quiz from this."},
		{"truncated", `{"questions": [{"question": "a", "options": ["a","b"`},
		{"fenced garbage", "```json\nnot json at all\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz, err := ParseQuiz(tt.response)
			if !errors.Is(err, failures.ErrQuizParse) {
				t.Fatalf("expected QuizParseError, got %v", err)
			}
			if quiz.Questions != nil {
				t.Errorf("expected no partial quiz, got %+v", quiz)
			}
		})
	}
}

func TestParseQuiz_SnippetIsBounded(t *testing.T) {
	long := strings.Repeat("x", 1000)
	_, err := ParseQuiz(long)

	var fe *failures.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *failures.Error, got %T", err)
	}
	if len(fe.Detail) > 210 {
		t.Errorf("snippet length %d exceeds limit", len(fe.Detail))
	}
}

func TestParseQuiz_SchemaErrors(t *testing.T) {
	question := func(text string, options string, answer string) string {
		return `{"question":"` + text + `","options":` + options + `,"correct_answer":` + answer + `}`
	}
	good := question("Q", `["a","b","c","d"]`, "1")
	five := func(last string) string {
		return `{"questions":[` + strings.Join([]string{good, good, good, good, last}, ",") + `]}`
	}

	tests := []struct {
		name     string
		response string
	}{
		{"top level array", `[1,2,3]`},
		{"questions missing", `{"items":[]}`},
		{"questions not array", `{"questions":"nope"}`},
		{"questions null", `{"questions":null}`},
		{"too few questions", `{"questions":[` + good + `]}`},
		{"three options", five(question("Q", `["a","b","c"]`, "0"))},
		{"five options", five(question("Q", `["a","b","c","d","e"]`, "0"))},
		{"empty option", five(question("Q", `["a","","c","d"]`, "0"))},
		{"non string options", five(question("Q", `[1,2,3,4]`, "0"))},
		{"index too high", five(question("Q", `["a","b","c","d"]`, "4"))},
		{"negative index", five(question("Q", `["a","b","c","d"]`, "-1"))},
		{"fractional index", five(question("Q", `["a","b","c","d"]`, "1.5"))},
		{"string index", five(question("Q", `["a","b","c","d"]`, `"2"`))},
		{"blank question", five(question("  ", `["a","b","c","d"]`, "0"))},
		{"question not object", `{"questions":[` + strings.Join([]string{good, good, good, good, `"q5"`}, ",") + `]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz, err := ParseQuiz(tt.response)
			if !errors.Is(err, failures.ErrInvalidQuizSchema) {
				t.Fatalf("expected InvalidQuizSchema, got %v", err)
			}
			if quiz.Questions != nil {
				t.Errorf("expected the whole set rejected, got %d questions", len(quiz.Questions))
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"```json\n{}\n```", "{}"},
		{"```\n{}\n```", "{}"},
		{"{}", "{}"},
		{"  {}\n```", "{}"},
	}
	for _, tt := range tests {
		if got := strings.TrimSpace(stripCodeFences(tt.in)); got != tt.want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
