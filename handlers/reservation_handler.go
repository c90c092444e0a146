package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookingmx/cityconnect/models"
	"github.com/bookingmx/cityconnect/services"
)

// ReservationHandler exposes the reservation lifecycle over HTTP.
type ReservationHandler struct {
	reservations *services.ReservationService
}

func NewReservationHandler(reservations *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

func (h *ReservationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reservations", h.Create).Methods("POST")
	router.HandleFunc("/api/reservations", h.List).Methods("GET")
	router.HandleFunc("/api/reservations/{id}", h.Get).Methods("GET")
	router.HandleFunc("/api/reservations/{id}", h.Update).Methods("PUT")
	router.HandleFunc("/api/reservations/{id}/confirm", h.Confirm).Methods("POST")
	router.HandleFunc("/api/reservations/{id}/cancel", h.Cancel).Methods("POST")
	router.HandleFunc("/api/reservations/{id}/complete", h.Complete).Methods("POST")
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: invalid request body", services.ErrInvalidReservation))
		return
	}
	created, err := h.reservations.CreateReservation(req.ToReservation())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		results []*models.Reservation
		err     error
	)
	switch {
	case r.URL.Query().Get("guest") != "":
		results, err = h.reservations.FindReservationsByGuestName(r.URL.Query().Get("guest"))
	case r.URL.Query().Get("email") != "":
		results, err = h.reservations.FindReservationsByEmail(r.URL.Query().Get("email"))
	default:
		results, err = h.reservations.GetAllReservations()
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reservations": results,
		"count":        len(results),
	})
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.reservations.FindReservationByID(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: invalid request body", services.ErrInvalidReservation))
		return
	}
	updated, err := h.reservations.UpdateReservation(mux.Vars(r)["id"], req.ToReservation())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *ReservationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.ConfirmReservation)
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.CancelReservation)
}

func (h *ReservationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reservations.CompleteReservation)
}

func (h *ReservationHandler) transition(w http.ResponseWriter, r *http.Request, op func(string) (*models.Reservation, error)) {
	reservation, err := op(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reservation)
}
