package handlers

import (
	"context"
	"os"
	"sync"

	"github.com/akolanti/StudyAPI/internal/session"
	"github.com/akolanti/StudyAPI/internal/study"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

var (
	handlerInstance *StudyHandler //private singleton
	once            sync.Once
	logSH           = logger_i.NewLogger("StudyHandler")
)

type HandlerConfig struct {
	Service   study.Service
	Sessions  *session.Manager
	UploadDir string
	// reported by /health
	NoteStoreName string
	ProviderName  string
}

type StudyHandler struct {
	service       study.Service
	sessions      *session.Manager
	uploadDir     string
	noteStoreName string
	providerName  string
}

func InitStudyHandler(handlerConfig HandlerConfig) {
	once.Do(func() {
		handlerInstance = newStudyHandler(handlerConfig)
		logSH.Info("Starting study handler", "uploadDir", handlerInstance.uploadDir)
	})
}

func newStudyHandler(handlerConfig HandlerConfig) *StudyHandler {
	uploadDir := handlerConfig.UploadDir
	if uploadDir == "" {
		dir, errString := getTargetDirectory()
		if errString != "" {
			logSH.Error("Couldn't get target directory", "err", errString)
		}
		uploadDir = dir
	} else if err := os.MkdirAll(uploadDir, 0750); err != nil {
		logSH.Error("Couldn't create upload directory", "dir", uploadDir, "error", err)
	}

	return &StudyHandler{
		service:       handlerConfig.Service,
		sessions:      handlerConfig.Sessions,
		uploadDir:     uploadDir,
		noteStoreName: handlerConfig.NoteStoreName,
		providerName:  handlerConfig.ProviderName,
	}
}

func loadSession(ctx context.Context, sessionId string) (session.Context, error) {
	return handlerInstance.sessions.Load(ctx, sessionId)
}

func endSession(ctx context.Context, sessionId string) error {
	return handlerInstance.sessions.End(ctx, sessionId)
}
