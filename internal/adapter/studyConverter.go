package adapter

import (
	"github.com/akolanti/StudyAPI/internal/api"
	"github.com/akolanti/StudyAPI/internal/domain/commonModels"
	"github.com/akolanti/StudyAPI/internal/domain/quizModel"
)

func ToSummaryResponse(result commonModels.SummaryResult) api.SummaryResponse {
	documents := result.Documents
	if documents == nil {
		documents = []string{}
	}
	return api.SummaryResponse{
		Summary:       result.Summary,
		Documents:     documents,
		OriginalChars: result.OriginalChars,
		SummaryChars:  result.SummaryChars,
	}
}

func ToChatResponse(exchange commonModels.ChatExchange) api.ChatResponse {
	return api.ChatResponse{
		Question: exchange.Question,
		Answer:   exchange.Answer,
	}
}

func ToQuizResponse(quiz quizModel.QuizSet) api.QuizResponse {
	questions := make([]api.QuizQuestion, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, api.QuizQuestion{
			Question:      q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectOptionIndex,
		})
	}
	return api.QuizResponse{Questions: questions}
}

func BadRequest(kind string, message string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		Error: api.OutgoingError{
			Code:    code,
			Kind:    kind,
			Message: message,
			Retry:   false,
		},
	}
}
