package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"provida/internal/ai"
	"provida/internal/inflight"
)

// WidgetSessionHeader carries the browser-generated id of one widget
// instance. Requests sharing a session supersede each other.
const WidgetSessionHeader = "X-Widget-Session"

const (
	maxJSONBody      = 64 << 10
	maxSessionLength = 128
	msgInternal      = "Erro interno. Tente novamente."
	msgBadBody       = "Requisição inválida."
	msgSuperseded    = "superseded"
)

// HealthAdvisor answers grounded health questions.
type HealthAdvisor interface {
	Search(ctx context.Context, query string) (ai.SearchResult, error)
}

// ImageEditor applies text instructions to data-URI images.
type ImageEditor interface {
	EditImage(ctx context.Context, image, prompt string) (string, error)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeAdapterError maps adapter and tracker errors to a status and a
// visitor-safe message.
func writeAdapterError(w http.ResponseWriter, err error) {
	if errors.Is(err, inflight.ErrSuperseded) {
		writeError(w, http.StatusConflict, msgSuperseded)
		return
	}
	msg, ok := ai.PublicMessage(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	status := http.StatusBadGateway
	if errors.Is(err, ai.ErrEmptyQuery) || errors.Is(err, ai.ErrInvalidImageRequest) {
		status = http.StatusBadRequest
	}
	writeError(w, status, msg)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(dst)
}

// widgetKey identifies the widget instance behind r. A request without a
// session header gets a key of its own and never supersedes another.
func widgetKey(r *http.Request, widget string) string {
	session := strings.TrimSpace(r.Header.Get(WidgetSessionHeader))
	if len(session) > maxSessionLength {
		session = session[:maxSessionLength]
	}
	if session == "" {
		return widget + ":req:" + uuid.NewString()
	}
	return widget + ":" + session
}
