package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds the values that differ between deployments. Everything else
// lives in the constants next to this file.
type Settings struct {
	Environment    string
	LogLevel       slog.Level
	ListenAddr     string
	LLMProvider    string
	GeminiAPIKey   string
	GeminiModel    string
	OpenAIAPIKey   string
	OpenAIModel    string
	OpenAIBaseURL  string
	RedisAddr      string
	RedisPassword  string
	UploadDir      string
	AllowedOrigins []string

	ExtractionParallelism int
	// only honour X-Forwarded-For / X-Real-IP when a known proxy sits in front
	TrustProxyHeaders     bool
}

// IsProd reports whether the service runs with production logging.
func (s *Settings) IsProd() bool {
	return strings.EqualFold(s.Environment, "production")
}

// LoadSettings reads an optional .env file and the process environment.
func LoadSettings() *Settings {
	_ = godotenv.Load()

	return &Settings{
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "debug")),
		ListenAddr:     getEnv("LISTEN_ADDR", ServerListenAddr),
		LLMProvider:    strings.ToLower(getEnv("LLM_PROVIDER", DefaultProvider)),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", GeminiModelName),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", OpenAIModelName),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", ""),
		RedisAddr:      getEnv("REDIS_ADDR", RedisAddr),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		UploadDir:      getEnv("UPLOAD_DIR", ""),
		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),

		ExtractionParallelism: getEnvInt("EXTRACTION_PARALLELISM", ExtractionParallelism),
		TrustProxyHeaders:     getEnvBool("TRUST_PROXY_HEADERS", false),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("environment value is not an int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("environment value is not a bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func getEnvList(key string, def []string) []string {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
