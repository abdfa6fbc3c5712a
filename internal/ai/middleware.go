package ai

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	genai "google.golang.org/genai"
)

// Logging records every remote call on the operator log.
func Logging(logger zerolog.Logger) Middleware {
	return func(next ContentGenerator) ContentGenerator {
		return GeneratorFunc(func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			start := time.Now()
			resp, err := next.GenerateContent(ctx, model, contents, config)
			lvl := zerolog.DebugLevel
			if err != nil && ctx.Err() == nil {
				lvl = zerolog.WarnLevel
			}
			logger.WithLevel(lvl).Err(err).
				Str("model", model).
				Int("parts", countParts(contents)).
				Dur("elapsed", time.Since(start)).
				Msg("gemini generate content")
			return resp, err
		})
	}
}

// Instrument records call counts and latency per model.
func Instrument(m *Metrics) Middleware {
	return func(next ContentGenerator) ContentGenerator {
		if m == nil {
			return next
		}
		return GeneratorFunc(func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			start := time.Now()
			resp, err := next.GenerateContent(ctx, model, contents, config)
			m.observe(model, err, time.Since(start))
			return resp, err
		})
	}
}

func countParts(contents []*genai.Content) int {
	n := 0
	for _, c := range contents {
		if c != nil {
			n += len(c.Parts)
		}
	}
	return n
}
