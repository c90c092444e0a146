package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookingmx/cityconnect/citygraph"
	"github.com/bookingmx/cityconnect/services"
)

// CityHandler exposes the city network's query operations over HTTP.
type CityHandler struct {
	network *citygraph.Graph
	display *services.DisplayService
}

func NewCityHandler(network *citygraph.Graph, display *services.DisplayService) *CityHandler {
	return &CityHandler{network: network, display: display}
}

func (h *CityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cities", h.ListCities).Methods("GET")
	router.HandleFunc("/api/cities/{id}", h.GetCity).Methods("GET")
	router.HandleFunc("/api/cities/{id}/nearby", h.Nearby).Methods("GET")
	router.HandleFunc("/api/routes", h.Route).Methods("GET")
	router.HandleFunc("/api/network/stats", h.Stats).Methods("GET")
	router.HandleFunc("/api/network/validation", h.Validate).Methods("GET")
	router.HandleFunc("/api/network/export", h.Export).Methods("GET")
	router.HandleFunc("/api/network/import", h.Import).Methods("POST")
}

func (h *CityHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"cities": h.network.Locations(),
		"count":  h.network.LocationCount(),
	})
}

func (h *CityHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	loc, err := h.network.GetLocation(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loc)
}

func (h *CityHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, fmt.Errorf("%w: invalid limit %q", citygraph.ErrValidation, raw))
			return
		}
		limit = parsed
	}

	var listings interface{}
	var err error
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radius, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			respondError(w, fmt.Errorf("%w: invalid radius %q", citygraph.ErrValidation, raw))
			return
		}
		listings, err = h.display.NearbyWithinRadius(id, radius, limit)
	} else {
		listings, err = h.display.Nearby(id, limit)
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"nearby": listings})
}

func (h *CityHandler) Route(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		respondError(w, fmt.Errorf("%w: from and to query parameters are required", citygraph.ErrValidation))
		return
	}

	summary, err := h.display.RouteSummary(from, to)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *CityHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.display.NetworkStats()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *CityHandler) Validate(w http.ResponseWriter, r *http.Request) {
	report, err := h.display.ValidateNetwork()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (h *CityHandler) Export(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.network.Export())
}

func (h *CityHandler) Import(w http.ResponseWriter, r *http.Request) {
	var rec citygraph.NetworkRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respondError(w, fmt.Errorf("%w: invalid network record: %v", citygraph.ErrValidation, err))
		return
	}
	if err := h.network.Import(rec); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"locations":   h.network.LocationCount(),
		"connections": h.network.ConnectionCount(),
	})
}
