// Package service contains the business logic of the trip-planning engine:
// preference normalization, itinerary generation, route refinement, carbon
// accounting, and cultural-experience recommendations. Services validate
// inputs and orchestrate repo calls; no SQL or HTTP lives here.
package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Maoxiaogui/lvyouzhinan/internal/catalog"
	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
	"github.com/Maoxiaogui/lvyouzhinan/internal/repo"
)

// DefaultOptionCount is how many itinerary variants one generation request produces.
const DefaultOptionCount = 3

// dayTripDefaultLength is the default trip length when no dates are given.
const dayTripDefaultLength = 3

// distancePerActivityKM is the flat heuristic distance between consecutive
// stops. There is no real routing; every hop counts as 5 km.
const distancePerActivityKM = 5.0

// variantNames title the generated options in order. Composition varies by
// independent random draws; the price-tier logic is identical across variants.
var variantNames = [...]string{"Classic", "In-Depth", "Light Luxury"}

// defaultTransportModes is the pool transport modes are drawn from when the
// traveller expressed no preference.
var defaultTransportModes = []domain.TransportMode{
	domain.TransportBus, domain.TransportPrivateCar, domain.TransportBike,
}

// carbonFriendlyModes replaces the default pool when the traveller asked for
// a low-carbon trip and gave no explicit transport preference.
var carbonFriendlyModes = []domain.TransportMode{
	domain.TransportBus, domain.TransportBike,
}

// PlannerService normalizes preferences, generates candidate itineraries,
// refines routes, and saves trips through the persistence gateway.
type PlannerService struct {
	catalog catalog.Catalog
	trips   repo.TripStore

	// mu guards rng: *rand.Rand is not safe for concurrent use and the
	// HTTP layer may run generation requests in parallel.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPlannerService constructs a PlannerService over the given catalog and
// trip store. Pass a seeded rng for reproducible output (tests do); nil
// selects a time-seeded source.
func NewPlannerService(cat catalog.Catalog, trips repo.TripStore, rng *rand.Rand) *PlannerService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PlannerService{catalog: cat, trips: trips, rng: rng}
}

// Normalize validates raw form input and fills defaults, returning canonical
// preferences. Returns domain.ErrValidation naming the offending field.
func (s *PlannerService) Normalize(raw domain.RawPreferences) (domain.TripPreferences, error) {
	dest := strings.TrimSpace(raw.Destination)
	if dest == "" {
		return domain.TripPreferences{}, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}

	start, end, err := normalizeDates(raw.StartDate, raw.EndDate)
	if err != nil {
		return domain.TripPreferences{}, err
	}

	travelers, err := normalizeTravelers(raw.Travelers)
	if err != nil {
		return domain.TripPreferences{}, err
	}

	interests := raw.Interests
	if interests == nil {
		interests = []string{}
	}

	transport := make([]domain.TransportMode, 0, len(raw.Transport))
	for _, m := range raw.Transport {
		if t := strings.TrimSpace(m); t != "" {
			transport = append(transport, domain.TransportMode(t))
		}
	}

	return domain.TripPreferences{
		Destination:    dest,
		StartDate:      start,
		EndDate:        end,
		Travelers:      travelers,
		Interests:      interests,
		Transport:      transport,
		Budget:         normalizeBudget(raw.Budget),
		Pace:           normalizePace(raw.Pace),
		CarbonFriendly: raw.CarbonFriendly,
	}, nil
}

// normalizeDates parses the optional date range. Absent dates default to
// today..today+3; an inverted range collapses to a 1-day trip.
func normalizeDates(startRaw, endRaw string) (time.Time, time.Time, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	start := today
	if startRaw != "" {
		t, err := time.Parse("2006-01-02", startRaw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", domain.ErrValidation)
		}
		start = t
	}

	end := start.AddDate(0, 0, dayTripDefaultLength)
	if endRaw != "" {
		t, err := time.Parse("2006-01-02", endRaw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", domain.ErrValidation)
		}
		end = t
	}

	if end.Before(start) {
		end = start
	}
	return start, end, nil
}

// normalizeTravelers parses the traveller count. Empty defaults to 2 and the
// "5+" form-sentinel maps to 5.
func normalizeTravelers(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 2, nil
	}
	if raw == "5+" {
		return 5, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: travelers must be a positive integer", domain.ErrValidation)
	}
	return n, nil
}

// normalizeBudget maps unrecognized tiers to medium.
func normalizeBudget(raw string) domain.BudgetTier {
	switch domain.BudgetTier(raw) {
	case domain.BudgetLow, domain.BudgetMedium, domain.BudgetHigh:
		return domain.BudgetTier(raw)
	default:
		return domain.BudgetMedium
	}
}

// normalizePace maps unrecognized paces to medium.
func normalizePace(raw string) domain.Pace {
	switch domain.Pace(raw) {
	case domain.PaceRelaxed, domain.PaceMedium, domain.PaceCompact:
		return domain.Pace(raw)
	default:
		return domain.PaceMedium
	}
}

// Generate produces optionCount distinct candidate itineraries for the given
// preferences. Non-positive optionCount means DefaultOptionCount. Returns
// domain.ErrInsufficientCatalog when the catalog has no attractions.
func (s *PlannerService) Generate(ctx context.Context, prefs domain.TripPreferences, optionCount int) ([]domain.TripOption, error) {
	if optionCount <= 0 {
		optionCount = DefaultOptionCount
	}
	if len(s.catalog.Attractions) == 0 {
		return nil, fmt.Errorf("service.PlannerService.Generate: %w: no attractions", domain.ErrInsufficientCatalog)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	options := make([]domain.TripOption, 0, optionCount)
	for i := 0; i < optionCount; i++ {
		options = append(options, s.buildOption(prefs, i))
	}
	return options, nil
}

// buildOption assembles one itinerary variant. All randomness goes through
// s.rng; the caller holds s.mu.
func (s *PlannerService) buildOption(prefs domain.TripPreferences, variant int) domain.TripOption {
	days := prefs.Days()
	multiplier := prefs.Budget.Multiplier()

	opt := domain.TripOption{
		ID:          uuid.NewString(),
		Title:       fmt.Sprintf("%s %s Tour", prefs.Destination, variantNames[variant%len(variantNames)]),
		Destination: prefs.Destination,
		StartDate:   prefs.StartDate,
		EndDate:     prefs.EndDate,
		Days:        make([]domain.DayPlan, 0, days),
	}

	for i := 0; i < days; i++ {
		day := domain.DayPlan{
			Date:       prefs.StartDate.AddDate(0, 0, i),
			Activities: s.dailyActivities(prefs, multiplier),
		}

		day.TotalDistance = float64(len(day.Activities)) * distancePerActivityKM
		for _, a := range day.Activities {
			day.TotalDuration += a.Duration
			day.TotalCost += a.Price
		}

		if len(s.catalog.Hotels) > 0 {
			hotel := s.catalog.Hotels[s.rng.Intn(len(s.catalog.Hotels))]
			day.Accommodation = &domain.AccommodationRef{ID: hotel.ID, Name: hotel.Name}
			day.TotalCost += hotel.Price * multiplier
		}

		opt.Days = append(opt.Days, day)
	}

	opt.RecomputeTotals()
	return opt
}

// dailyActivities draws one day's activities from the attraction catalog
// without replacement. The pool resets each day, so the same sight can
// appear on different days but never twice in one. When the pool runs out
// the day simply ends short rather than failing.
func (s *PlannerService) dailyActivities(prefs domain.TripPreferences, multiplier float64) []domain.Activity {
	count := prefs.Pace.ActivitiesPerDay()
	pool := make([]catalog.Attraction, len(s.catalog.Attractions))
	copy(pool, s.catalog.Attractions)

	modes := prefs.Transport
	if len(modes) == 0 {
		modes = defaultTransportModes
		if prefs.CarbonFriendly {
			modes = carbonFriendlyModes
		}
	}

	activities := make([]domain.Activity, 0, count)
	for i := 0; i < count && len(pool) > 0; i++ {
		idx := s.rng.Intn(len(pool))
		attraction := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		activities = append(activities, domain.Activity{
			ID:        attraction.ID,
			Name:      attraction.Name,
			Type:      domain.ActivityAttraction,
			Location:  attraction.Location,
			Duration:  prefs.Pace.ActivityHours(),
			Price:     math.Round(attraction.AdmissionFee * multiplier),
			Rating:    attraction.Rating,
			Transport: modes[s.rng.Intn(len(modes))],
		})
	}
	return activities
}

// Optimize applies the fixed-ratio route refinement pass: distance −10%,
// duration −5%, both rounded. Activities, dates, and costs are untouched and
// the input is never mutated; the result carries a derived id.
//
// This is a placeholder heuristic, not a routing solver. A real
// implementation could run a nearest-neighbour pass over activity locations
// behind the same contract.
func (s *PlannerService) Optimize(trip domain.TripOption) domain.TripOption {
	refined := trip
	refined.ID = "optimized_" + trip.ID
	refined.Days = make([]domain.DayPlan, len(trip.Days))
	copy(refined.Days, trip.Days)
	refined.TotalDistance = math.Round(trip.TotalDistance * 0.9)
	refined.TotalDuration = math.Round(trip.TotalDuration * 0.95)
	return refined
}

// SaveTrip appends the trip to the saved list in the persistence gateway.
func (s *PlannerService) SaveTrip(ctx context.Context, trip domain.TripOption) error {
	if trip.ID == "" {
		return fmt.Errorf("%w: trip id is required", domain.ErrValidation)
	}
	if err := s.trips.Append(ctx, trip); err != nil {
		return fmt.Errorf("service.PlannerService.SaveTrip: %w", err)
	}
	return nil
}

// SavedTrips returns every trip the traveller has saved.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PlannerService) SavedTrips(ctx context.Context) ([]domain.TripOption, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.SavedTrips: %w", err)
	}
	if trips == nil {
		return []domain.TripOption{}, nil
	}
	return trips, nil
}
