package handler

import (
	"net/http"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// CalculateFootprint handles POST /api/carbon/footprint. The body is a full
// TripOption; the response is its CarbonFootprint.
func (s *Server) CalculateFootprint(w http.ResponseWriter, r *http.Request) {
	var trip domain.TripOption
	if err := decodeJSON(r, &trip); err != nil {
		badRequest(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.carbon.Calculate(trip))
}

// CompareFootprints handles POST /api/carbon/compare. The body is an array
// of TripOptions; each is assessed independently, in order.
func (s *Server) CompareFootprints(w http.ResponseWriter, r *http.Request) {
	var trips []domain.TripOption
	if err := decodeJSON(r, &trips); err != nil {
		badRequest(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.carbon.Compare(trips))
}

// GetReductionTips handles GET /api/carbon/tips.
func (s *Server) GetReductionTips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.carbon.ReductionTips())
}
