package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"provida/internal/booking"
)

// HandleBooking acknowledges a contact-form booking request. The request
// is validated and logged at debug level only; nothing is stored.
func HandleBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in booking.Request
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgBadBody)
		return
	}
	ack, err := booking.Submit(in)
	if err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("booking rejected")
		writeError(w, http.StatusBadRequest, booking.PublicMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, ack)
}
