package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/akolanti/StudyAPI/internal/api"
	"github.com/akolanti/StudyAPI/internal/domain/failures"
)

// providerSafePatterns maps provider error text to messages that can reach the client.
var providerSafePatterns = []struct {
	pattern string
	message string
}{
	{"rate limit", "The AI service is rate limiting requests. Try again shortly."},
	{"429", "The AI service is rate limiting requests. Try again shortly."},
	{"quota", "The AI service quota is exhausted. Try again later."},
	{"resource_exhausted", "The AI service quota is exhausted. Try again later."},
	{"deadline", "The AI service took too long to respond."},
	{"timeout", "The AI service took too long to respond."},
	{"timed out", "The AI service took too long to respond."},
	{"api key", "The AI service rejected the server's credentials."},
	{"unauthorized", "The AI service rejected the server's credentials."},
	{"permission", "The AI service rejected the server's credentials."},
	{"safety", "The AI service declined to process this material."},
	{"blocked", "The AI service declined to process this material."},
}

// SanitizeProviderError never returns raw provider text.
func SanitizeProviderError(err error) string {
	if err == nil {
		return ""
	}
	lower := strings.ToLower(err.Error())
	for _, p := range providerSafePatterns {
		if strings.Contains(lower, p.pattern) {
			return p.message
		}
	}
	return "The AI service is temporarily unavailable."
}

// ToErrorResponse maps a pipeline error to its status code and client message.
func ToErrorResponse(err error) api.ErrorResponse {
	code, retry, message := describe(err)
	return api.ErrorResponse{
		Error: api.OutgoingError{
			Code:    code,
			Kind:    string(failures.KindOf(err)),
			Message: message,
			Retry:   retry,
		},
	}
}

func describe(err error) (int, bool, string) {
	var fe *failures.Error
	if !errors.As(err, &fe) {
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, true, "The request took too long."
		}
		return http.StatusInternalServerError, true, "Something went wrong on our side."
	}

	switch fe.Kind {
	case failures.UnsupportedFormat:
		return http.StatusUnsupportedMediaType, false,
			fmt.Sprintf("Files of type %q are not supported. Upload PDF, DOCX, PPTX or TXT.", fe.Format)
	case failures.ExtractionFailed:
		return http.StatusUnprocessableEntity, false,
			fmt.Sprintf("We could not read the %s file. It may be corrupted or password protected.", strings.ToUpper(fe.Format))
	case failures.EmptyContent:
		return http.StatusUnprocessableEntity, false,
			"The uploaded document has no readable text."
	case failures.NoContextAvailable:
		return http.StatusConflict, false,
			"There are no notes yet. Summarize a document first."
	case failures.EmptyQuestion:
		return http.StatusBadRequest, false,
			"Please enter a question."
	case failures.AIError:
		return http.StatusBadGateway, true, SanitizeProviderError(fe.Err)
	case failures.QuizParseError:
		return http.StatusBadGateway, true,
			"The quiz could not be read from the AI response. Please try again."
	case failures.InvalidQuizSchema:
		return http.StatusBadGateway, true,
			"The AI produced an incomplete quiz. Please try again."
	default:
		return http.StatusInternalServerError, true, "Something went wrong on our side."
	}
}
