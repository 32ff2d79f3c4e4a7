package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
	"github.com/Maoxiaogui/lvyouzhinan/internal/handler"
)

// mockPlanner is a test double for handler.PlannerServicer.
// Set only the method fields your test needs.
type mockPlanner struct {
	normalize  func(raw domain.RawPreferences) (domain.TripPreferences, error)
	generate   func(ctx context.Context, prefs domain.TripPreferences, optionCount int) ([]domain.TripOption, error)
	optimize   func(trip domain.TripOption) domain.TripOption
	saveTrip   func(ctx context.Context, trip domain.TripOption) error
	savedTrips func(ctx context.Context) ([]domain.TripOption, error)
}

func (m *mockPlanner) Normalize(raw domain.RawPreferences) (domain.TripPreferences, error) {
	return m.normalize(raw)
}
func (m *mockPlanner) Generate(ctx context.Context, prefs domain.TripPreferences, optionCount int) ([]domain.TripOption, error) {
	return m.generate(ctx, prefs, optionCount)
}
func (m *mockPlanner) Optimize(trip domain.TripOption) domain.TripOption {
	return m.optimize(trip)
}
func (m *mockPlanner) SaveTrip(ctx context.Context, trip domain.TripOption) error {
	return m.saveTrip(ctx, trip)
}
func (m *mockPlanner) SavedTrips(ctx context.Context) ([]domain.TripOption, error) {
	return m.savedTrips(ctx)
}

var _ handler.PlannerServicer = (*mockPlanner)(nil)

// mockCarbon is a test double for handler.CarbonServicer.
type mockCarbon struct {
	calculate     func(trip domain.TripOption) domain.CarbonFootprint
	compare       func(trips []domain.TripOption) []domain.CarbonFootprint
	reductionTips func() []domain.CarbonReductionTip
}

func (m *mockCarbon) Calculate(trip domain.TripOption) domain.CarbonFootprint {
	return m.calculate(trip)
}
func (m *mockCarbon) Compare(trips []domain.TripOption) []domain.CarbonFootprint {
	return m.compare(trips)
}
func (m *mockCarbon) ReductionTips() []domain.CarbonReductionTip {
	return m.reductionTips()
}

var _ handler.CarbonServicer = (*mockCarbon)(nil)

// mockExperiences is a test double for handler.ExperienceServicer.
type mockExperiences struct {
	recommend    func(interests []string, location string, limit int) []domain.Experience
	getByID      func(id int) (domain.Experience, error)
	search       func(query, location string) []domain.Experience
	book         func(ctx context.Context, b domain.ExperienceBooking) (domain.ExperienceBooking, error)
	listBookings func(ctx context.Context, userID int) ([]domain.ExperienceBooking, error)
	reviews      func(ctx context.Context, experienceID int) ([]domain.ExperienceReview, error)
	submitReview func(ctx context.Context, r domain.ExperienceReview) (domain.ExperienceReview, error)
}

func (m *mockExperiences) Recommend(interests []string, location string, limit int) []domain.Experience {
	return m.recommend(interests, location, limit)
}
func (m *mockExperiences) GetByID(id int) (domain.Experience, error) {
	return m.getByID(id)
}
func (m *mockExperiences) Search(query, location string) []domain.Experience {
	return m.search(query, location)
}
func (m *mockExperiences) Book(ctx context.Context, b domain.ExperienceBooking) (domain.ExperienceBooking, error) {
	return m.book(ctx, b)
}
func (m *mockExperiences) ListBookings(ctx context.Context, userID int) ([]domain.ExperienceBooking, error) {
	return m.listBookings(ctx, userID)
}
func (m *mockExperiences) Reviews(ctx context.Context, experienceID int) ([]domain.ExperienceReview, error) {
	return m.reviews(ctx, experienceID)
}
func (m *mockExperiences) SubmitReview(ctx context.Context, r domain.ExperienceReview) (domain.ExperienceReview, error) {
	return m.submitReview(ctx, r)
}

var _ handler.ExperienceServicer = (*mockExperiences)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the chi router,
// mirroring how main.go wires it in production. Nil mocks are fine for
// routes the test never touches.
func newHTTPHandler(planner handler.PlannerServicer, carbon handler.CarbonServicer, experiences handler.ExperienceServicer) http.Handler {
	srv := handler.NewServer(planner, carbon, experiences, domain.RealTimeInfo{}, nil)
	return srv.Routes()
}

func tripOptionFixture(id string) domain.TripOption {
	date := time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)
	opt := domain.TripOption{
		ID:          id,
		Title:       "Hangzhou Classic Tour",
		Destination: "Hangzhou",
		StartDate:   date,
		EndDate:     date,
		Days: []domain.DayPlan{{
			Date: date,
			Activities: []domain.Activity{{
				ID: 1, Name: "West Lake", Type: domain.ActivityAttraction,
				Location: "Hangzhou", Duration: 2, Transport: domain.TransportBus,
			}},
			Accommodation: &domain.AccommodationRef{ID: 3, Name: "Business Hotel"},
			TotalDistance: 5, TotalDuration: 2, TotalCost: 250,
		}},
	}
	opt.RecomputeTotals()
	return opt
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeError unpacks the uniform error body.
func decodeError(t *testing.T, body *bytes.Buffer) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}
