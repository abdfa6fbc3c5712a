package ai

import (
	"context"

	genai "google.golang.org/genai"
)

// ContentGenerator is the part of *genai.Models the adapter calls.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeneratorFunc adapts a function to ContentGenerator.
type GeneratorFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

func (f GeneratorFunc) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return f(ctx, model, contents, config)
}

// Middleware decorates a ContentGenerator with a cross-cutting concern
// (logging, metrics).
type Middleware func(ContentGenerator) ContentGenerator

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner ContentGenerator, mws ...Middleware) ContentGenerator {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		out = mws[i](out)
	}
	return out
}

// NewGeminiGenerator builds the genai client for the Gemini API backend.
// The key is passed explicitly; an empty key lets the SDK fall back to
// GOOGLE_API_KEY / GEMINI_API_KEY from the environment.
func NewGeminiGenerator(ctx context.Context, apiKey string) (ContentGenerator, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return cli.Models, nil
}
