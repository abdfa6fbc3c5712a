package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"provida/internal/ai"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func multipartRequest(t *testing.T, prompt string, file []byte, partType string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if prompt != "" {
		require.NoError(t, mw.WriteField("prompt", prompt))
	}
	if file != nil {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="image"; filename="foto.png"`)
		if partType != "" {
			hdr.Set("Content-Type", partType)
		}
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/image-edit", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandleEditJSON(t *testing.T) {
	in := ai.EncodeDataURI("image/jpeg", []byte("jpeg"))
	h := NewImageHandler(editorFunc(func(ctx context.Context, image, prompt string) (string, error) {
		require.Equal(t, in, image)
		require.Equal(t, "remova o fundo", prompt)
		return "data:image/png;base64,AAAA", nil
	}), newTracker(t), 0)

	rec := postJSON(h.HandleEdit, "/api/image-edit", `{"image":"`+in+`","prompt":"remova o fundo"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "data:image/png;base64,AAAA", decodeBody(t, rec)["image"])
}

func TestHandleEditMultipart(t *testing.T) {
	for name, partType := range map[string]string{"declared": "image/png", "sniffed": "application/octet-stream"} {
		t.Run(name, func(t *testing.T) {
			var gotImage string
			h := NewImageHandler(editorFunc(func(ctx context.Context, image, prompt string) (string, error) {
				gotImage = image
				return "data:image/png;base64,AAAA", nil
			}), newTracker(t), 1<<20)

			rec := httptest.NewRecorder()
			h.HandleEdit(rec, multipartRequest(t, "clareie", pngHeader, partType))
			require.Equal(t, http.StatusOK, rec.Code)

			parsed := ai.ParseDataURI(gotImage)
			require.Equal(t, "image/png", parsed.MIMEType)
			require.Equal(t, pngHeader, parsed.Bytes())
		})
	}
}

func TestHandleEditValidation(t *testing.T) {
	h := NewImageHandler(editorFunc(func(ctx context.Context, image, prompt string) (string, error) {
		t.Fatal("editor must not be called")
		return "", nil
	}), newTracker(t), 1<<20)

	rec := httptest.NewRecorder()
	h.HandleEdit(rec, multipartRequest(t, "", pngHeader, "image/png"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Envie uma imagem e descreva a edição desejada.", decodeBody(t, rec)["error"])

	rec = httptest.NewRecorder()
	h.HandleEdit(rec, multipartRequest(t, "clareie", nil, ""))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(h.HandleEdit, "/api/image-edit", `{"image":"","prompt":"x"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEditTooLarge(t *testing.T) {
	h := NewImageHandler(editorFunc(func(ctx context.Context, image, prompt string) (string, error) {
		return "", nil
	}), newTracker(t), 64)

	rec := httptest.NewRecorder()
	h.HandleEdit(rec, multipartRequest(t, "clareie", bytes.Repeat([]byte{1}, 4096), "image/png"))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, msgTooLarge, decodeBody(t, rec)["error"])
}

func TestHandleEditNoImageProduced(t *testing.T) {
	h := NewImageHandler(editorFunc(func(ctx context.Context, image, prompt string) (string, error) {
		return "", ai.ErrNoImageProduced
	}), newTracker(t), 0)

	rec := postJSON(h.HandleEdit, "/api/image-edit", `{"image":"data:image/png;base64,AAAA","prompt":"x"}`, nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "Nenhuma imagem gerada.", decodeBody(t, rec)["error"])
}

func TestHandleEditMethod(t *testing.T) {
	h := NewImageHandler(nil, newTracker(t), 0)
	rec := httptest.NewRecorder()
	h.HandleEdit(rec, httptest.NewRequest(http.MethodGet, "/api/image-edit", strings.NewReader("")))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleEditRejectsOversizedFilePart(t *testing.T) {
	h := NewImageHandler(editorFunc(func(ctx context.Context, image, prompt string) (string, error) {
		t.Fatal("editor must not be called")
		return "", nil
	}), newTracker(t), 1024)

	// The whole body fits under the JSON allowance; only the file is too big.
	file := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{1}, 1100)...)
	req := multipartRequest(t, "clareie", file, "image/png")
	require.Less(t, req.ContentLength, int64(1024+512))

	rec := httptest.NewRecorder()
	h.HandleEdit(rec, req)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, msgTooLarge, decodeBody(t, rec)["error"])
}

func TestHandleEditRejectsUnsupportedUploads(t *testing.T) {
	icoHeader := []byte{0, 0, 1, 0, 1, 0, 16, 16, 0, 0, 1, 0}
	cases := []struct {
		name     string
		file     []byte
		partType string
	}{
		{name: "text file", file: []byte("apenas texto, nada de imagem"), partType: "text/plain"},
		{name: "unknown bytes", file: []byte("apenas texto, nada de imagem"), partType: "application/octet-stream"},
		{name: "hyphenated image type", file: icoHeader, partType: "image/x-icon"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewImageHandler(editorFunc(func(ctx context.Context, image, prompt string) (string, error) {
				t.Fatal("editor must not be called")
				return "", nil
			}), newTracker(t), 1<<20)

			rec := httptest.NewRecorder()
			h.HandleEdit(rec, multipartRequest(t, "clareie", tc.file, tc.partType))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, msgUnsupportedImage, decodeBody(t, rec)["error"])
		})
	}
}

func TestUploadMIMETypeFallsBackToSniffing(t *testing.T) {
	mt, ok := uploadMIMEType("image/x-png", pngHeader)
	require.True(t, ok)
	require.Equal(t, "image/png", mt)

	mt, ok = uploadMIMEType("image/webp; charset=binary", []byte("x"))
	require.True(t, ok)
	require.Equal(t, "image/webp", mt)
}
