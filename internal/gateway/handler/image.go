package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"provida/internal/ai"
	"provida/internal/inflight"
)

const (
	msgTooLarge         = "Imagem muito grande."
	msgUnsupportedImage = "Formato de imagem não suportado."
)

var (
	errUploadTooLarge   = errors.New("handler: uploaded image exceeds limit")
	errUnsupportedImage = errors.New("handler: unsupported image type")
)

// ImageHandler serves the image-edit widget. It accepts either a JSON body
// with a data-URI image or a multipart upload.
type ImageHandler struct {
	editor   ImageEditor
	tracker  *inflight.Tracker
	maxBytes int64
}

func NewImageHandler(editor ImageEditor, tracker *inflight.Tracker, maxBytes int64) *ImageHandler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &ImageHandler{editor: editor, tracker: tracker, maxBytes: maxBytes}
}

type imageEditRequest struct {
	Image  string `json:"image"`
	Prompt string `json:"prompt"`
}

type imageEditResponse struct {
	Image string `json:"image"`
}

func (h *ImageHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	// Base64 inflates the upload by a third; leave room for it in JSON bodies.
	limit := h.maxBytes + h.maxBytes/2
	if r.ContentLength > limit {
		writeError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	in, err := h.readRequest(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || errors.Is(err, errUploadTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		if errors.Is(err, errUnsupportedImage) {
			writeError(w, http.StatusBadRequest, msgUnsupportedImage)
			return
		}
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}
	if strings.TrimSpace(in.Image) == "" || strings.TrimSpace(in.Prompt) == "" {
		writeAdapterError(w, ai.ErrInvalidImageRequest)
		return
	}

	call := h.tracker.Begin(r.Context(), widgetKey(r, "image"))
	defer call.Done()

	out, err := h.editor.EditImage(call.Context(), in.Image, in.Prompt)
	if stale := call.Err(); stale != nil {
		writeAdapterError(w, stale)
		return
	}
	if err != nil {
		writeAdapterError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, imageEditResponse{Image: out})
}

func (h *ImageHandler) readRequest(r *http.Request) (imageEditRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var in imageEditRequest
		err := json.NewDecoder(r.Body).Decode(&in)
		return in, err
	}

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		return imageEditRequest{}, err
	}
	in := imageEditRequest{Prompt: r.FormValue("prompt")}
	file, hdr, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil
	}
	if err != nil {
		return imageEditRequest{}, err
	}
	defer file.Close()
	if hdr.Size > h.maxBytes {
		return imageEditRequest{}, errUploadTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		return imageEditRequest{}, err
	}
	if int64(len(data)) > h.maxBytes {
		return imageEditRequest{}, errUploadTooLarge
	}
	mimeType, ok := uploadMIMEType(hdr.Header.Get("Content-Type"), data)
	if !ok {
		return imageEditRequest{}, errUnsupportedImage
	}
	in.Image = ai.EncodeDataURI(mimeType, data)
	return in, nil
}

// uploadMIMEType trusts the part header when it names a usable image type
// and sniffs the bytes otherwise. ok is false for anything else.
func uploadMIMEType(header string, data []byte) (mimeType string, ok bool) {
	if mt, _, err := mime.ParseMediaType(header); err == nil && ai.SupportedImageType(mt) {
		return mt, true
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mt, ai.SupportedImageType(mt)
}
