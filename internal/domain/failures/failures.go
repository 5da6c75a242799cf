// Package failures is the closed set of errors the study pipeline can return.
// Every core operation returns either its artifact or one *Error; callers
// branch on the Kind with errors.Is against the exported sentinels.
package failures

import (
	"errors"
	"fmt"
)

type Kind string

const (
	UnsupportedFormat  Kind = "UNSUPPORTED_FORMAT"
	ExtractionFailed   Kind = "EXTRACTION_FAILED"
	EmptyContent       Kind = "EMPTY_CONTENT"
	NoContextAvailable Kind = "NO_CONTEXT_AVAILABLE"
	EmptyQuestion      Kind = "EMPTY_QUESTION"
	AIError            Kind = "AI_ERROR"
	QuizParseError     Kind = "QUIZ_PARSE_ERROR"
	InvalidQuizSchema  Kind = "INVALID_QUIZ_SCHEMA"
	Unknown            Kind = "UNKNOWN"
)

// AI stages
const (
	StageSummarize = "summarize"
	StageAnswer    = "answer"
	StageQuiz      = "quiz"
)

type Error struct {
	Kind Kind
	// Format is the document format for extraction failures.
	Format string
	// Stage is the generator step for AI failures.
	Stage string
	// Detail carries the offending value: a file name, a reason, or a raw response snippet.
	Detail string
	Err    error
}

var (
	ErrUnsupportedFormat  = &Error{Kind: UnsupportedFormat}
	ErrExtractionFailed   = &Error{Kind: ExtractionFailed}
	ErrEmptyContent       = &Error{Kind: EmptyContent}
	ErrNoContextAvailable = &Error{Kind: NoContextAvailable}
	ErrEmptyQuestion      = &Error{Kind: EmptyQuestion}
	ErrAI                 = &Error{Kind: AIError}
	ErrQuizParse          = &Error{Kind: QuizParseError}
	ErrInvalidQuizSchema  = &Error{Kind: InvalidQuizSchema}
)

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case UnsupportedFormat:
		msg = fmt.Sprintf("unsupported format %q", e.Format)
	case ExtractionFailed:
		msg = fmt.Sprintf("extraction failed for %s", e.Format)
	case EmptyContent:
		msg = "document has no text content"
	case NoContextAvailable:
		msg = "no working note available, summarize a document first"
	case EmptyQuestion:
		msg = "question is empty"
	case AIError:
		msg = fmt.Sprintf("ai call failed at %s", e.Stage)
	case QuizParseError:
		msg = "quiz response is not valid JSON"
	case InvalidQuizSchema:
		msg = "quiz response does not match the quiz schema"
	default:
		msg = "study pipeline failure"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrEmptyContent) works on wrapped values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func Unsupported(format string) error {
	return &Error{Kind: UnsupportedFormat, Format: format}
}

func Extraction(format string, cause error) error {
	return &Error{Kind: ExtractionFailed, Format: format, Err: cause}
}

func Empty(documentName string) error {
	return &Error{Kind: EmptyContent, Detail: documentName}
}

func NoContext() error {
	return &Error{Kind: NoContextAvailable}
}

func NoQuestion() error {
	return &Error{Kind: EmptyQuestion}
}

func AI(stage string, cause error) error {
	return &Error{Kind: AIError, Stage: stage, Err: cause}
}

func QuizParse(snippet string, cause error) error {
	return &Error{Kind: QuizParseError, Detail: snippet, Err: cause}
}

func InvalidSchema(reason string) error {
	return &Error{Kind: InvalidQuizSchema, Detail: reason}
}
