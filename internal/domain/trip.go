// Package domain contains the core data types for the trip-planning engine.
// This package has zero external dependencies and is imported by every other
// internal package (catalog, repo, service, handler).
package domain

import "time"

// BudgetTier is the traveller's spending level. It selects the price
// multiplier applied to every priced activity and accommodation.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// Multiplier returns the price scaling factor for the tier.
// Unknown tiers behave like medium.
func (b BudgetTier) Multiplier() float64 {
	switch b {
	case BudgetLow:
		return 0.7
	case BudgetHigh:
		return 1.5
	default:
		return 1.0
	}
}

// Pace is the itinerary density selected by the traveller. It controls how
// many activities are scheduled per day and how long each one lasts.
type Pace string

const (
	PaceRelaxed Pace = "relaxed"
	PaceMedium  Pace = "medium"
	PaceCompact Pace = "compact"
)

// ActivitiesPerDay returns the number of activities scheduled for one day.
// Unknown paces behave like medium.
func (p Pace) ActivitiesPerDay() int {
	switch p {
	case PaceRelaxed:
		return 2
	case PaceCompact:
		return 4
	default:
		return 3
	}
}

// ActivityHours returns the planned duration of a single activity in hours.
func (p Pace) ActivityHours() float64 {
	if p == PaceRelaxed {
		return 3
	}
	return 2
}

// TransportMode identifies how the traveller reaches an activity.
// The catalog's emission-factor table is keyed by these values.
type TransportMode string

const (
	TransportPlane      TransportMode = "plane"
	TransportTrain      TransportMode = "train"
	TransportBus        TransportMode = "bus"
	TransportPrivateCar TransportMode = "privateCar"
	TransportTaxi       TransportMode = "taxi"
	TransportBike       TransportMode = "bike"
	TransportWalk       TransportMode = "walk"
)

// RawPreferences is the unvalidated form input for a planning request.
// Numeric and enum fields arrive as strings; the planner normalizes them
// into a TripPreferences or rejects them with ErrValidation.
type RawPreferences struct {
	Destination    string   `json:"destination"`
	StartDate      string   `json:"start_date"` // YYYY-MM-DD, optional
	EndDate        string   `json:"end_date"`   // YYYY-MM-DD, optional
	Travelers      string   `json:"travelers"`  // positive integer, "5+" means 5
	Interests      []string `json:"interests"`
	Transport      []string `json:"transport_preferences"`
	Budget         string   `json:"budget"`
	Pace           string   `json:"pace"`
	CarbonFriendly bool     `json:"carbon_friendly"`
}

// TripPreferences is the canonical, validated planning request.
// Dates are UTC midnights and EndDate is never before StartDate.
type TripPreferences struct {
	Destination    string          `json:"destination"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Travelers      int             `json:"travelers"`
	Interests      []string        `json:"interests"`
	Transport      []TransportMode `json:"transport_preferences,omitempty"`
	Budget         BudgetTier      `json:"budget"`
	Pace           Pace            `json:"pace"`
	CarbonFriendly bool            `json:"carbon_friendly"`
}

// Days returns the inclusive number of calendar days covered by the
// preference date range, never less than 1.
func (p TripPreferences) Days() int {
	d := int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
	if d < 1 {
		return 1
	}
	return d
}

// ActivityType tags the kind of entry in a day plan. Carbon accounting
// dispatches on this tag.
type ActivityType string

const (
	ActivityAttraction    ActivityType = "attraction"
	ActivityRestaurant    ActivityType = "restaurant"
	ActivityExperience    ActivityType = "experience"
	ActivityAccommodation ActivityType = "accommodation"
)

// Activity is one scheduled entry of a day plan. Activities are value
// copies of catalog records taken at generation time, so later catalog
// changes never mutate an existing itinerary.
type Activity struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Type     ActivityType `json:"type"`
	Location string       `json:"location"`
	Duration float64      `json:"duration"` // hours, > 0
	Price    float64      `json:"price,omitempty"`
	Rating   float64      `json:"rating,omitempty"`
	// Transport is the mode used to reach this activity. Empty means
	// unspecified; the carbon accountant then applies a default factor.
	Transport TransportMode `json:"transport,omitempty"`
}

// AccommodationRef points at the hotel chosen for a day. The scaled room
// price is folded into the day's TotalCost at generation time.
type AccommodationRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DayPlan is the slice of an itinerary covering one calendar day.
// Activities are in visiting order. The three totals are derived from the
// activity list (plus the accommodation price) when the plan is built.
type DayPlan struct {
	Date          time.Time         `json:"date"`
	Activities    []Activity        `json:"activities"`
	Accommodation *AccommodationRef `json:"accommodation,omitempty"`
	TotalDistance float64           `json:"total_distance"` // km
	TotalDuration float64           `json:"total_duration"` // hours
	TotalCost     float64           `json:"total_cost"`
}

// TripOption is one complete candidate multi-day itinerary.
type TripOption struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Days        []DayPlan `json:"days"`
	// Trip totals are always the exact sum of the day totals (the route
	// refiner is the one exception: it scales them by its fixed ratios).
	TotalDistance float64 `json:"total_distance"`
	TotalDuration float64 `json:"total_duration"`
	TotalCost     float64 `json:"total_cost"`
	// CarbonFootprint is attached by the carbon accountant on request.
	CarbonFootprint *CarbonFootprint `json:"carbon_footprint,omitempty"`
}

// RecomputeTotals re-derives the trip-level totals from the day plans.
// Day totals themselves are owned by the generator, which is the only
// place that knows the scaled accommodation price.
func (t *TripOption) RecomputeTotals() {
	t.TotalDistance, t.TotalDuration, t.TotalCost = 0, 0, 0
	for _, d := range t.Days {
		t.TotalDistance += d.TotalDistance
		t.TotalDuration += d.TotalDuration
		t.TotalCost += d.TotalCost
	}
}
