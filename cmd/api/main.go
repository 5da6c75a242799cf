// @title           Study Assistant API
// @version         1.0
// @description     Turns uploaded study documents into a summary, grounded answers and a multiple-choice quiz.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/customHttpClient"
	"github.com/akolanti/StudyAPI/internal/data/store"
	"github.com/akolanti/StudyAPI/internal/handlers"
	"github.com/akolanti/StudyAPI/internal/server"
	"github.com/akolanti/StudyAPI/internal/session"
	"github.com/akolanti/StudyAPI/internal/study"
	"github.com/akolanti/StudyAPI/internal/study/ingest"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
)

var (
	listenAddr     string
	backgroundJobs sync.WaitGroup
)

func main() {
	settings := config.LoadSettings()
	logger_i.Init(settings)
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", settings.ListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	noteStore, noteStoreName := openNoteStore(serviceContext, settings, logger)
	if noteStore == nil {
		logger.Error("No note store available. Shutting down.")
		return
	}

	llmProvider, err := study.NewProvider(serviceContext, settings, customHttpClient.GetPooledClient())
	if err != nil {
		logger.Error("LLM provider failed to initialize. Shutting down.", "provider", settings.LLMProvider, "error", err)
		return
	}

	sessions := session.NewManager(noteStore)
	studyService := study.NewService(ingest.NewDispatcher(), llmProvider, sessions, settings.ExtractionParallelism)

	handlers.InitStudyHandler(handlers.HandlerConfig{
		Service:       studyService,
		Sessions:      sessions,
		UploadDir:     settings.UploadDir,
		NoteStoreName: noteStoreName,
		ProviderName:  settings.LLMProvider,
	})

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		Group:            &backgroundJobs,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr, settings.AllowedOrigins, settings.TrustProxyHeaders)

	<-stopExecution
	logger.Info("Server stopped")
}

// openNoteStore prefers redis and falls back to memory when redis is unreachable.
func openNoteStore(ctx context.Context, settings *config.Settings, logger *logger_i.Logger) (session.NoteStore, string) {
	redisNotes, err := store.GetRedisNoteStore(ctx, settings.RedisAddr, settings.RedisPassword)
	if err == nil {
		logger.Info("Using redis note store", "addr", settings.RedisAddr)
		return redisNotes, "redis"
	}
	logger.Error("Redis note store is offline", "addr", settings.RedisAddr, "error", err)
	if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
		return nil, ""
	}

	memoryNotes := store.InitInMemoryNoteStore(config.SessionNoteTTL)
	backgroundJobs.Add(1)
	go func() {
		defer backgroundJobs.Done()
		memoryNotes.RunSweeper(ctx, config.NoteSweepInterval)
	}()
	logger.Warn("Falling back to the in-memory note store; notes are lost on restart")
	return memoryNotes, "memory"
}
