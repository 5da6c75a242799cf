package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/akolanti/StudyAPI/internal/adapter"
	"github.com/akolanti/StudyAPI/internal/api"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

var logRH = logger_i.NewLogger("RequestHandler")

// multipart parts above this size spill to disk
const maxMultipartMemory = 32 << 20

// GetHandler godoc
// @Summary      Health check
// @Description  Reports which note store and AI provider the service is running with.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Failure      503  {object}  api.ErrorResponse "Handlers not initialised"
// @Router       /health [get]
func GetHandler(w http.ResponseWriter, r *http.Request) {
	if !ready(w) {
		return
	}
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{
		Status:    "ok",
		NoteStore: handlerInstance.noteStoreName,
		Provider:  handlerInstance.providerName,
	})
}

// SummarizeHandler godoc
// @Summary      Summarize study documents
// @Description  Extracts text from the uploaded documents, summarizes it as bullet points and keeps the summary as the session's working note.
// @Tags         Study
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "PDF, DOCX, PPTX or TXT files, up to 10 MB each"
// @Success      200  {object}  api.SummaryResponse
// @Failure      400  {object}  api.ErrorResponse "No files or malformed form"
// @Failure      413  {object}  api.ErrorResponse "File too large"
// @Failure      415  {object}  api.ErrorResponse "Unsupported format"
// @Failure      422  {object}  api.ErrorResponse "Unreadable or empty document"
// @Failure      502  {object}  api.ErrorResponse "AI provider failure"
// @Router       /summarize [post]
func SummarizeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) || !ready(w) {
		return
	}
	log := logRH.FromContext(r.Context())

	sessionId, ok := requireSession(w, r)
	if !ok {
		return
	}
	if handlerInstance.uploadDir == "" {
		WriteErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", "Storage error")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes())
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "The upload is too large")
			return
		}
		log.Warn("Bad multipart form", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "BAD_REQUEST", "Expected a multipart form with a 'files' field")
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn("Couldn't remove multipart temp files", "error", err)
		}
	}()

	files := r.MultipartForm.File[uploadFormField]
	if rejection := checkUploads(files); rejection != nil {
		log.Warn("Upload rejected", "files", len(files), "httpCode", rejection.httpCode)
		writeJsonResponse(w, rejection.httpCode, rejection.response)
		return
	}

	docs, err := saveUploads(handlerInstance.uploadDir, files)
	if err != nil {
		log.Error("Couldn't stage uploads", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", "Storage error")
		return
	}

	sc, err := loadSession(r.Context(), sessionId)
	if err != nil {
		removeUploads(docs) // extraction never started
		writeFailure(w, err)
		return
	}

	log.Debug("Summarize request", "documents", len(docs))
	result, err := handlerInstance.service.Summarize(r.Context(), &sc, docs)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToSummaryResponse(result))
}

// ChatHandler godoc
// @Summary      Ask about the summarized material
// @Description  Answers a question grounded on the session's working note. Summarize a document first.
// @Tags         Study
// @Accept       json
// @Produce      json
// @Param        request  body      api.ChatRequest  true  "The student's question"
// @Success      200      {object}  api.ChatResponse
// @Failure      400      {object}  api.ErrorResponse "Empty question or malformed body"
// @Failure      409      {object}  api.ErrorResponse "No working note yet"
// @Failure      502      {object}  api.ErrorResponse "AI provider failure"
// @Router       /chat [post]
func ChatHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) || !ready(w) {
		return
	}
	sessionId, ok := requireSession(w, r)
	if !ok {
		return
	}

	var requestData api.ChatRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logRH.Error("Couldn't close the chat request body", "error", err)
		}
	}(r.Body)
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&requestData); err != nil {
		logRH.FromContext(r.Context()).Warn("Bad chat request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "BAD_REQUEST", "Expected a JSON body with a 'question' field")
		return
	}

	sc, err := loadSession(r.Context(), sessionId)
	if err != nil {
		writeFailure(w, err)
		return
	}

	exchange, err := handlerInstance.service.Answer(r.Context(), sc, requestData.Question)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToChatResponse(exchange))
}

// QuizHandler godoc
// @Summary      Generate a quiz
// @Description  Builds five multiple-choice questions with four options each from the session's working note.
// @Tags         Study
// @Produce      json
// @Success      200  {object}  api.QuizResponse
// @Failure      409  {object}  api.ErrorResponse "No working note yet"
// @Failure      502  {object}  api.ErrorResponse "AI provider failure or unusable quiz"
// @Router       /quiz [post]
func QuizHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) || !ready(w) {
		return
	}
	sessionId, ok := requireSession(w, r)
	if !ok {
		return
	}

	sc, err := loadSession(r.Context(), sessionId)
	if err != nil {
		writeFailure(w, err)
		return
	}

	quiz, err := handlerInstance.service.Quiz(r.Context(), sc)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToQuizResponse(quiz))
}

// EndSessionHandler godoc
// @Summary      End the study session
// @Description  Clears the session's working note.
// @Tags         Study
// @Success      204  "Session cleared"
// @Failure      500  {object}  api.ErrorResponse "Note store unavailable"
// @Router       /session [delete]
func EndSessionHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) || !ready(w) {
		return
	}
	sessionId, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := endSession(r.Context(), sessionId); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
