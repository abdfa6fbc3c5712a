package app

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"provida/internal/ai"
	"provida/internal/gateway/config"
	"provida/internal/gateway/handler"
	"provida/internal/gateway/server"
	"provida/internal/inflight"
	"provida/internal/site"
)

type App struct {
	server *server.Server
	log    zerolog.Logger
}

// Deps lets callers replace the remote model, mainly in tests.
type Deps struct {
	Generator ai.ContentGenerator
}

// NewAdapter builds the AI adapter with logging and, when m is non-nil,
// metrics middleware around the Gemini client.
func NewAdapter(ctx context.Context, cfg config.GeminiConfig, gen ai.ContentGenerator, m *ai.Metrics, logger zerolog.Logger) (*ai.Adapter, error) {
	if gen == nil {
		if cfg.APIKey == "" {
			logger.Warn().Msg("GEMINI_API_KEY is not set; AI widgets will fail until it is")
		}
		g, err := ai.NewGeminiGenerator(ctx, cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		gen = g
	}
	gen = ai.Wrap(gen, ai.Logging(logger.With().Str("component", "gemini").Logger()), ai.Instrument(m))
	return ai.New(gen, ai.Options{
		SearchModel: cfg.SearchModel,
		ImageModel:  cfg.ImageModel,
		Logger:      logger,
	}), nil
}

func New(ctx context.Context, cfg *config.Config, deps Deps) (*App, error) {
	logger := NewLogger(cfg.Env, cfg.LogLevel, os.Stderr)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := ai.NewMetrics(reg)

	adapter, err := NewAdapter(ctx, cfg.Gemini, deps.Generator, metrics, logger)
	if err != nil {
		return nil, err
	}
	tracker, err := inflight.New(cfg.Widgets.Sessions)
	if err != nil {
		return nil, fmt.Errorf("create in-flight tracker: %w", err)
	}
	page, err := site.Render(site.Default())
	if err != nil {
		return nil, fmt.Errorf("render site: %w", err)
	}

	mux := server.NewMux(server.Handlers{
		Site:   handler.NewSiteHandler(page),
		Advice: handler.NewAdviceHandler(adapter, tracker),
		Image:  handler.NewImageHandler(adapter, tracker, cfg.Widgets.MaxUploadBytes),
	}, reg, logger)

	return &App{
		server: server.New(cfg.Port, mux, logger),
		log:    logger,
	}, nil
}

func (a *App) Logger() zerolog.Logger { return a.log }

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
