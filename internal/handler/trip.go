package handler

import (
	"net/http"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// PlanTrips handles POST /api/trips/plan. It normalizes the raw preference
// body and generates the candidate itineraries in one round trip.
func (s *Server) PlanTrips(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawPreferences
	if err := decodeJSON(r, &raw); err != nil {
		badRequest(w, err.Error())
		return
	}

	prefs, err := s.planner.Normalize(raw)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	options, err := s.planner.Generate(r.Context(), prefs, 0)
	if err != nil {
		respondError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, options)
}

// OptimizeTrip handles POST /api/trips/optimize. The body is a full
// TripOption; the response is the refined copy with a derived id.
func (s *Server) OptimizeTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.TripOption
	if err := decodeJSON(r, &trip); err != nil {
		badRequest(w, err.Error())
		return
	}
	if trip.ID == "" {
		badRequest(w, "trip id is required")
		return
	}

	writeJSON(w, http.StatusOK, s.planner.Optimize(trip))
}

// SaveTrip handles POST /api/trips.
func (s *Server) SaveTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.TripOption
	if err := decodeJSON(r, &trip); err != nil {
		badRequest(w, err.Error())
		return
	}

	if err := s.planner.SaveTrip(r.Context(), trip); err != nil {
		respondError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, trip)
}

// ListSavedTrips handles GET /api/trips.
func (s *Server) ListSavedTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.planner.SavedTrips(r.Context())
	if err != nil {
		respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, trips)
}
