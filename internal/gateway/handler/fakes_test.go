package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"provida/internal/ai"
	"provida/internal/inflight"
)

type advisorFunc func(ctx context.Context, query string) (ai.SearchResult, error)

func (f advisorFunc) Search(ctx context.Context, query string) (ai.SearchResult, error) {
	return f(ctx, query)
}

type editorFunc func(ctx context.Context, image, prompt string) (string, error)

func (f editorFunc) EditImage(ctx context.Context, image, prompt string) (string, error) {
	return f(ctx, image, prompt)
}

func newTracker(t *testing.T) *inflight.Tracker {
	t.Helper()
	tr, err := inflight.New(16)
	require.NoError(t, err)
	return tr
}
