package logger_i

import (
	"context"
	"log/slog"
	"os"

	"github.com/akolanti/StudyAPI/internal/config"
)

// Logger resolves slog.Default at call time, so package level loggers pick up Init.
type Logger struct {
	attrs []any
}

// Init installs the process-wide handler: text while developing, JSON in production.
func Init(settings *config.Settings) {
	options := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	if settings != nil {
		options.Level = settings.LogLevel
	}

	var handler slog.Handler
	if settings != nil && settings.IsProd() {
		if settings.LogLevel < config.LOG_LEVEL_PROD {
			options.Level = config.LOG_LEVEL_PROD
		}
		handler = slog.NewJSONHandler(os.Stdout, options)
	} else {
		handler = slog.NewTextHandler(os.Stdout, options)
	}
	slog.SetDefault(slog.New(handler))
}

func NewLogger(section string) *Logger {
	return &Logger{
		attrs: []any{"component", section},
	}
}

func (l *Logger) inner() *slog.Logger {
	return slog.Default().With(l.attrs...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.inner().Info(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.inner().Error(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.inner().Warn(msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.inner().Debug(msg, args...)
}

func (l *Logger) With(args ...any) *Logger {
	attrs := make([]any, 0, len(l.attrs)+len(args))
	attrs = append(attrs, l.attrs...)
	return &Logger{
		attrs: append(attrs, args...),
	}
}

// FromContext tags the logger with the request's trace and session ids, when present.
func (l *Logger) FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	var args []any
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok && trace != "" {
		args = append(args, "traceId", trace)
	}
	if sessionId, ok := ctx.Value(config.SESSION_ID_KEY).(string); ok && sessionId != "" {
		args = append(args, "sessionId", sessionId)
	}
	if len(args) == 0 {
		return l
	}
	return l.With(args...)
}
