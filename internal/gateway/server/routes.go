package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"provida/internal/gateway/handler"
	"provida/internal/gateway/middleware"
)

type Handlers struct {
	Site   *handler.SiteHandler
	Advice *handler.AdviceHandler
	Image  *handler.ImageHandler
}

func NewMux(h Handlers, gatherer prometheus.Gatherer, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", h.Site.HandlePage)
	mux.HandleFunc("/healthz", handler.HandleHealthz)
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Widget endpoints
	mux.HandleFunc("/api/health-advice", h.Advice.HandleSearch)
	mux.HandleFunc("/ws/health-advice", h.Advice.HandleSearchWS)
	mux.HandleFunc("/api/image-edit", h.Image.HandleEdit)
	mux.HandleFunc("/api/booking", handler.HandleBooking)

	return middleware.RequestLog(logger)(middleware.CORS(mux))
}
