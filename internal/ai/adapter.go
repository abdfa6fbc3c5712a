package ai

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultSearchModel = "gemini-2.5-flash"
	DefaultImageModel  = "gemini-2.5-flash-image"
)

// Options configures an Adapter. Zero values fall back to the defaults.
type Options struct {
	SearchModel string
	ImageModel  string
	Logger      zerolog.Logger
}

// Adapter exposes the two Gemini-backed widget operations. It holds no
// per-call state and is safe for concurrent use.
type Adapter struct {
	gen         ContentGenerator
	searchModel string
	imageModel  string
	log         zerolog.Logger
}

func New(gen ContentGenerator, opts Options) *Adapter {
	searchModel := strings.TrimSpace(opts.SearchModel)
	if searchModel == "" {
		searchModel = DefaultSearchModel
	}
	imageModel := strings.TrimSpace(opts.ImageModel)
	if imageModel == "" {
		imageModel = DefaultImageModel
	}
	return &Adapter{
		gen:         gen,
		searchModel: searchModel,
		imageModel:  imageModel,
		log:         opts.Logger.With().Str("component", "ai").Logger(),
	}
}

// failureEvent logs remote failures at error level, except when the caller
// canceled the call (a newer widget request or a closed connection).
func failureEvent(log *zerolog.Logger, ctx context.Context) *zerolog.Event {
	if ctx.Err() != nil {
		return log.Debug()
	}
	return log.Error()
}
