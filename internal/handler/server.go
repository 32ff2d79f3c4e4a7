// Package handler implements the HTTP surface of the trip-planning engine.
// All handlers are methods on Server, split into concern-specific files
// (trip.go, carbon.go, experience.go, ...) that share the same struct.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// PlannerServicer defines the planning operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer or the store.
type PlannerServicer interface {
	Normalize(raw domain.RawPreferences) (domain.TripPreferences, error)
	Generate(ctx context.Context, prefs domain.TripPreferences, optionCount int) ([]domain.TripOption, error)
	Optimize(trip domain.TripOption) domain.TripOption
	SaveTrip(ctx context.Context, trip domain.TripOption) error
	SavedTrips(ctx context.Context) ([]domain.TripOption, error)
}

// CarbonServicer defines the accounting operations the handlers depend on.
type CarbonServicer interface {
	Calculate(trip domain.TripOption) domain.CarbonFootprint
	Compare(trips []domain.TripOption) []domain.CarbonFootprint
	ReductionTips() []domain.CarbonReductionTip
}

// ExperienceServicer defines the cultural-experience operations the
// handlers depend on.
type ExperienceServicer interface {
	Recommend(interests []string, location string, limit int) []domain.Experience
	GetByID(id int) (domain.Experience, error)
	Search(query, location string) []domain.Experience
	Book(ctx context.Context, b domain.ExperienceBooking) (domain.ExperienceBooking, error)
	ListBookings(ctx context.Context, userID int) ([]domain.ExperienceBooking, error)
	Reviews(ctx context.Context, experienceID int) ([]domain.ExperienceReview, error)
	SubmitReview(ctx context.Context, r domain.ExperienceReview) (domain.ExperienceReview, error)
}

// Server holds every handler dependency. Methods live in concern-specific
// files but all operate on this struct.
type Server struct {
	planner     PlannerServicer
	carbon      CarbonServicer
	experiences ExperienceServicer
	realtime    domain.RealTimeInfo
	openapi     []byte
}

// NewServer constructs the Server with all its dependencies.
// openapi may be nil when the spec route is not wanted (tests).
func NewServer(planner PlannerServicer, carbon CarbonServicer, experiences ExperienceServicer, realtime domain.RealTimeInfo, openapi []byte) *Server {
	return &Server{
		planner:     planner,
		carbon:      carbon,
		experiences: experiences,
		realtime:    realtime,
		openapi:     openapi,
	}
}

// Routes returns the chi router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Post("/trips/plan", s.PlanTrips)
		r.Post("/trips/optimize", s.OptimizeTrip)
		r.Post("/trips", s.SaveTrip)
		r.Get("/trips", s.ListSavedTrips)

		r.Post("/carbon/footprint", s.CalculateFootprint)
		r.Post("/carbon/compare", s.CompareFootprints)
		r.Get("/carbon/tips", s.GetReductionTips)

		r.Get("/experiences", s.ListExperiences)
		r.Get("/experiences/search", s.SearchExperiences)
		r.Get("/experiences/{id}", s.GetExperience)
		r.Get("/experiences/{id}/reviews", s.ListReviews)
		r.Post("/experiences/{id}/reviews", s.SubmitReview)

		r.Post("/bookings", s.CreateBooking)
		r.Get("/bookings", s.ListBookings)

		r.Get("/realtime", s.GetRealTimeInfo)
	})

	return r
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetOpenAPI handles GET /openapi.yaml, serving the embedded spec.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	if len(s.openapi) == 0 {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.openapi)
}

// GetRealTimeInfo handles GET /api/realtime. The payload is a static
// fixture; there is no live feed.
func (s *Server) GetRealTimeInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.realtime)
}
