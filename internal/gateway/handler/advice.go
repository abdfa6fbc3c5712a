package handler

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"provida/internal/ai"
	"provida/internal/inflight"
)

// AdviceHandler serves the health-advice search widget over plain HTTP
// and over a websocket.
type AdviceHandler struct {
	advisor HealthAdvisor
	tracker *inflight.Tracker
}

func NewAdviceHandler(advisor HealthAdvisor, tracker *inflight.Tracker) *AdviceHandler {
	return &AdviceHandler{advisor: advisor, tracker: tracker}
}

type adviceRequest struct {
	Query string `json:"query"`
}

func (h *AdviceHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in adviceRequest
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}
	if strings.TrimSpace(in.Query) == "" {
		writeAdapterError(w, ai.ErrEmptyQuery)
		return
	}

	call := h.tracker.Begin(r.Context(), widgetKey(r, "advice"))
	defer call.Done()

	res, err := h.advisor.Search(call.Context(), in.Query)
	if stale := call.Err(); stale != nil {
		zerolog.Ctx(r.Context()).Debug().Uint64("generation", call.Generation()).Msg("health advice superseded")
		writeAdapterError(w, stale)
		return
	}
	if err != nil {
		writeAdapterError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

const (
	adviceWSWriteWait = 10 * time.Second
	adviceWSPongWait  = 60 * time.Second
	adviceWSPingEvery = (adviceWSPongWait * 9) / 10
	adviceWSReadLimit = 64 << 10
)

var adviceWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type adviceWSInbound struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Query string `json:"query,omitempty"`
}

type adviceWSOutbound struct {
	Type    string               `json:"type"`
	ID      string               `json:"id,omitempty"`
	Text    string               `json:"text,omitempty"`
	Sources []ai.SourceReference `json:"sources,omitempty"`
	Message string               `json:"message,omitempty"`
}

// HandleSearchWS keeps one search conversation per connection. A new
// query cancels the one still running, and its late result is dropped.
func (h *AdviceHandler) HandleSearchWS(w http.ResponseWriter, r *http.Request) {
	conn, err := adviceWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	log := zerolog.Ctx(r.Context())
	ctx, cancel := context.WithCancel(r.Context())
	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()

	var writeMu sync.Mutex
	send := func(msg adviceWSOutbound) {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(adviceWSWriteWait))
		if err := conn.WriteJSON(msg); err != nil {
			log.Debug().Err(err).Msg("advice ws write failed")
			cancel()
		}
	}

	conn.SetReadLimit(adviceWSReadLimit)
	if err := conn.SetReadDeadline(time.Now().Add(adviceWSPongWait)); err != nil {
		log.Warn().Err(err).Msg("advice ws set read deadline failed")
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(adviceWSPongWait))
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(adviceWSPingEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				writeMu.Lock()
				err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(adviceWSWriteWait))
				writeMu.Unlock()
				if err != nil {
					cancel()
					return
				}
			}
		}
	}()

	key := "advice-ws:" + uuid.NewString()
	for {
		var in adviceWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Msg("advice ws closed")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(adviceWSPongWait))

		switch strings.TrimSpace(in.Type) {
		case "query":
			query := strings.TrimSpace(in.Query)
			if query == "" {
				msg, _ := ai.PublicMessage(ai.ErrEmptyQuery)
				send(adviceWSOutbound{Type: "error", ID: in.ID, Message: msg})
				continue
			}
			call := h.tracker.Begin(ctx, key)
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				defer call.Done()
				res, err := h.advisor.Search(call.Context(), query)
				if !call.Current() {
					return
				}
				if err != nil {
					msg, ok := ai.PublicMessage(err)
					if !ok {
						msg = msgInternal
					}
					send(adviceWSOutbound{Type: "error", ID: id, Message: msg})
					return
				}
				send(adviceWSOutbound{Type: "result", ID: id, Text: res.Text, Sources: res.Sources})
			}(in.ID)
		case "ping":
			send(adviceWSOutbound{Type: "pong", ID: in.ID})
		default:
			send(adviceWSOutbound{Type: "error", ID: in.ID, Message: msgBadBody})
		}
	}
}
