package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/akolanti/StudyAPI/internal/adapter"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/domain/failures"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, kind string, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(kind, message, httpCode))
}

func writeFailure(w http.ResponseWriter, err error) {
	res := adapter.ToErrorResponse(err)
	if failures.KindOf(err) == failures.Unknown {
		logRH.Error("Unclassified failure", "error", err)
	}
	writeJsonResponse(w, res.Error.Code, res)
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.FromContext(ctx).Warn("context error", "error", ctx.Err())
		return false
	}
	return true
}

func ready(w http.ResponseWriter) bool {
	if handlerInstance == nil || handlerInstance.service == nil || handlerInstance.sessions == nil {
		WriteErrorResponse(w, http.StatusServiceUnavailable, "NOT_READY", "Service is starting up")
		return false
	}
	return true
}

func TraceIdFrom(ctx context.Context) string {
	trace, _ := ctx.Value(config.TRACE_ID_KEY).(string)
	return trace
}

func SessionIdFrom(ctx context.Context) string {
	sessionId, _ := ctx.Value(config.SESSION_ID_KEY).(string)
	return sessionId
}

func requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionId := SessionIdFrom(r.Context())
	if sessionId == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "MISSING_SESSION", "No study session on this request")
		return "", false
	}
	return sessionId, true
}

// maxRequestBytes leaves room for multipart headers on top of the file bytes.
func maxRequestBytes() int64 {
	return config.MaxAggregateUploadBytes + 1<<20
}

func getTargetDirectory() (string, string) {
	root, err := os.Getwd()
	if err != nil {
		return "", "Storage Error"
	}

	targetDir := filepath.Join(root, config.UploadDirName)
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", "Storage Error"
	}
	return targetDir, ""
}
