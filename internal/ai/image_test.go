package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	genai "google.golang.org/genai"
)

func TestEditImageReturnsFirstInlineImageAsPNG(t *testing.T) {
	out := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	gen := &fakeGenerator{resp: partsResponse(
		&genai.Part{Text: "Aqui está"},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/webp", Data: nil}},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: out}},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("later")}},
	)}
	a := newTestAdapter(gen)

	in := EncodeDataURI("image/jpeg", []byte("jpeg-bytes"))
	got, err := a.EditImage(context.Background(), in, "remova o fundo")
	require.NoError(t, err)
	require.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(out), got)

	require.Len(t, gen.calls, 1)
	call := gen.calls[0]
	require.Equal(t, DefaultImageModel, call.model)
	require.Len(t, call.contents, 1)
	parts := call.contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	require.Equal(t, "image/jpeg", parts[0].InlineData.MIMEType)
	require.Equal(t, []byte("jpeg-bytes"), parts[0].InlineData.Data)
	require.Equal(t, "remova o fundo", parts[1].Text)
}

func TestEditImageNoImagePart(t *testing.T) {
	a := newTestAdapter(&fakeGenerator{resp: partsResponse(&genai.Part{Text: "não consegui"})})

	got, err := a.EditImage(context.Background(), EncodeDataURI("image/png", []byte("x")), "clareie")
	require.ErrorIs(t, err, ErrNoImageProduced)
	require.NotErrorIs(t, err, ErrImageEdit)
	require.Empty(t, got)
}

func TestEditImageHidesRemoteError(t *testing.T) {
	remote := errors.New("rpc error: quota exceeded for key AIza-secret")
	a := newTestAdapter(&fakeGenerator{err: remote})

	_, err := a.EditImage(context.Background(), EncodeDataURI("image/png", []byte("x")), "clareie")
	require.ErrorIs(t, err, ErrImageEdit)
	require.NotContains(t, err.Error(), "AIza-secret")
}

func TestEditImageCanceledCallLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	a := New(&fakeGenerator{err: context.Canceled}, Options{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.EditImage(ctx, EncodeDataURI("image/png", []byte("x")), "clareie")
	require.ErrorIs(t, err, ErrImageEdit)
	require.Contains(t, buf.String(), `"level":"debug"`)
	require.NotContains(t, buf.String(), `"level":"error"`)
}

func TestEditImageNonDataURIStillCallsRemote(t *testing.T) {
	gen := &fakeGenerator{resp: partsResponse(&genai.Part{InlineData: &genai.Blob{Data: []byte("ok")}})}
	a := newTestAdapter(gen)

	raw := base64.StdEncoding.EncodeToString([]byte("plain-bytes"))
	_, err := a.EditImage(context.Background(), raw, "gire 90 graus")
	require.NoError(t, err)
	require.Len(t, gen.calls, 1)

	blob := gen.calls[0].contents[0].Parts[0].InlineData
	require.Equal(t, "image/jpeg", blob.MIMEType)
	require.Equal(t, []byte("plain-bytes"), blob.Data)
}

func TestEditImageRequiresImageAndPrompt(t *testing.T) {
	gen := &fakeGenerator{}
	a := newTestAdapter(gen)

	_, err := a.EditImage(context.Background(), "", "prompt")
	require.ErrorIs(t, err, ErrInvalidImageRequest)
	_, err = a.EditImage(context.Background(), EncodeDataURI("image/png", []byte("x")), "  ")
	require.ErrorIs(t, err, ErrInvalidImageRequest)
	require.Empty(t, gen.calls)
}

func TestEditImageUsesConfiguredModel(t *testing.T) {
	gen := &fakeGenerator{resp: partsResponse(&genai.Part{InlineData: &genai.Blob{Data: []byte("ok")}})}
	a := New(gen, Options{ImageModel: "custom-image"})

	_, err := a.EditImage(context.Background(), EncodeDataURI("image/png", []byte("x")), "p")
	require.NoError(t, err)
	require.Equal(t, "custom-image", gen.calls[0].model)
}
