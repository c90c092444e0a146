package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookingmx/cityconnect/citygraph"
	"github.com/bookingmx/cityconnect/models"
	"github.com/bookingmx/cityconnect/services"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusForError(err), models.ErrorResponse{Error: err.Error()})
}

// statusForError maps the domain's error kinds to HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, citygraph.ErrNotFound),
		errors.Is(err, citygraph.ErrNoConnection),
		errors.Is(err, services.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, citygraph.ErrDuplicate),
		errors.Is(err, services.ErrReservationExists):
		return http.StatusConflict
	case errors.Is(err, citygraph.ErrValidation),
		errors.Is(err, citygraph.ErrSelfLoop),
		errors.Is(err, services.ErrInvalidReservation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
