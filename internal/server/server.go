package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/akolanti/StudyAPI/internal/adapter/utils"
	"github.com/akolanti/StudyAPI/internal/config"
	"github.com/akolanti/StudyAPI/internal/middleware"
	"github.com/akolanti/StudyAPI/pkg/logger_i"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var (
	server  *http.Server
	_logger = logger_i.NewLogger("Server")
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	// background jobs such as the note sweeper
	Group         *sync.WaitGroup
	CloseServices context.CancelFunc
}

func CreateServer(listenAddr string, allowedOrigins []string, trustProxyHeaders bool) {
	r := utils.GetRouter()
	registerRoutes(r.Router, allowedOrigins, trustProxyHeaders)

	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error", err.Error(), "addr", listenAddr)
	}
}

// registerRoutes keys the rate limiter on the peer address unless trustProxyHeaders
// lets RealIP rewrite it from forwarding headers.
func registerRoutes(r *chi.Mux, allowedOrigins []string, trustProxyHeaders bool) {
	r.Use(chimiddleware.RequestID)
	if trustProxyHeaders {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", config.TRACE_ID_HEADER, config.SESSION_ID_HEADER},
		ExposedHeaders:   []string{config.TRACE_ID_HEADER, config.SESSION_ID_HEADER},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	utils.RegisterOperationalRoutes(r)

	r.Get("/health", middleware.GetHandler)
	r.Post("/summarize", middleware.SummarizeHandler)
	r.Post("/chat", middleware.ChatHandler)
	r.Post("/quiz", middleware.QuizHandler)
	r.Delete("/session", middleware.EndSessionHandler)
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	_logger.Info("Server is shutting down", "signal", state.String())

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		if server != nil {
			server.SetKeepAlivesEnabled(false)
			if err := server.Shutdown(ctx); err != nil {
				_logger.Error("Could not shutdown gracefully", "error", err)
			}
		}

		//stop background jobs and close redis
		shutdownParams.CloseServices()
		if shutdownParams.Group != nil {
			shutdownParams.Group.Wait()
		}
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully shut down")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
