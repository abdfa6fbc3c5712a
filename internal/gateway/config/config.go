package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string
	Gemini   GeminiConfig
	Widgets  WidgetConfig
}

type GeminiConfig struct {
	APIKey      string
	SearchModel string
	ImageModel  string
}

type WidgetConfig struct {
	// Sessions bounds how many widget sessions the in-flight tracker keeps.
	Sessions       int
	MaxUploadBytes int64
}

const (
	defaultPort           = ":8080"
	defaultSessions       = 4096
	defaultMaxUploadBytes = 10 << 20
)

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:     NormalizePort(os.Getenv("PORT")),
		Env:      env,
		LogLevel: firstNonEmpty(strings.TrimSpace(os.Getenv("LOG_LEVEL")), defaultLogLevel(env)),
		Gemini: GeminiConfig{
			APIKey:      firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_API_KEY")), strings.TrimSpace(os.Getenv("API_KEY"))),
			SearchModel: strings.TrimSpace(os.Getenv("GEMINI_SEARCH_MODEL")),
			ImageModel:  strings.TrimSpace(os.Getenv("GEMINI_IMAGE_MODEL")),
		},
		Widgets: WidgetConfig{
			Sessions:       envInt("WIDGET_SESSIONS", defaultSessions),
			MaxUploadBytes: int64(envInt("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)),
		},
	}, nil
}

// NormalizePort accepts "8080" or ":8080"; empty means the default.
func NormalizePort(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return defaultPort
	}
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func defaultLogLevel(env string) string {
	if strings.EqualFold(env, "local") {
		return "debug"
	}
	return "info"
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
