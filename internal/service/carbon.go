package service

import (
	"fmt"
	"math"

	"github.com/Maoxiaogui/lvyouzhinan/internal/catalog"
	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// Emission constants (kg CO2e unless noted).
const (
	// defaultTransportFactor applies when an activity's mode is missing
	// from the factor table (kg CO2e/km).
	defaultTransportFactor = 0.1

	// kmPerActivityHour converts activity duration into travel distance.
	kmPerActivityHour = 3.0

	// accommodationPerStarNight is the per-star, per-night emission used
	// when a hotel has no measured carbon factor.
	accommodationPerStarNight = 50.0

	// referenceHotelStars selects the catalog hotel used for the nightly
	// accommodation estimate.
	referenceHotelStars = 3

	// luxuryHotelNight / ecoHotelNight bound the nightly savings from
	// choosing eco-certified lodging.
	luxuryHotelNight = 250.0
	ecoHotelNight    = 100.0

	// Savings fallbacks when the factor table lacks the mode entirely.
	fallbackCarFactor = 0.3
	fallbackBusFactor = 0.1

	// treeAbsorptionPerYear is how much CO2 one tree absorbs in a year.
	treeAbsorptionPerYear = 21.77
	// carEmissionPerKM is the reference car emission for the equivalence string.
	carEmissionPerKM = 0.12

	// maxRecommendations caps the advice list.
	maxRecommendations = 5

	// expensiveExperiencePrice is the threshold above which an experience
	// counts as a paid activity for recommendation purposes.
	expensiveExperiencePrice = 100.0
)

// activityEmissions is the fixed per-visit emission by activity type.
// Only attraction and experience activities are counted by Calculate;
// the dining figure is kept for restaurant entries should a future
// generator schedule them.
var activityEmissions = map[domain.ActivityType]float64{
	domain.ActivityAttraction: 5,
	domain.ActivityExperience: 10,
	domain.ActivityRestaurant: 2,
}

// genericRecommendations pad the advice list after personalized entries.
var genericRecommendations = []string{
	"Carry a reusable water bottle to cut plastic waste",
	"Choose local, seasonal food to reduce transport emissions",
	"Support attractions and activities with environmental certification",
}

// CarbonService is the carbon accountant: a pure function of an itinerary,
// the transport-factor table, and the fixed emission constants above.
type CarbonService struct {
	catalog catalog.Catalog
}

// NewCarbonService constructs a CarbonService over the given catalog.
func NewCarbonService(cat catalog.Catalog) *CarbonService {
	return &CarbonService{catalog: cat}
}

// Calculate computes the trip's emissions breakdown, potential savings,
// equivalence string, and recommendations. All reported values are rounded
// to 2 decimal places.
func (s *CarbonService) Calculate(trip domain.TripOption) domain.CarbonFootprint {
	var transport, accommodation, activities float64

	for _, day := range trip.Days {
		for _, a := range day.Activities {
			if a.Type != domain.ActivityAttraction && a.Type != domain.ActivityExperience {
				continue
			}
			activities += activityEmissions[a.Type]
			factor := s.catalog.TransportFactor(a.Transport, defaultTransportFactor)
			transport += factor * a.Duration * kmPerActivityHour
		}
		accommodation += s.nightlyAccommodation()
	}

	total := transport + accommodation + activities

	return domain.CarbonFootprint{
		TotalEmission: round2(total),
		Breakdown: domain.CarbonBreakdown{
			Transport:     round2(transport),
			Accommodation: round2(accommodation),
			Activities:    round2(activities),
		},
		Savings:         round2(s.potentialSavings(trip)),
		Equivalent:      equivalentDescription(total),
		Recommendations: s.recommendations(trip),
	}
}

// nightlyAccommodation returns the per-night emission: the reference hotel's
// measured factor when it has one, otherwise the star-based default.
func (s *CarbonService) nightlyAccommodation() float64 {
	if hotel, ok := s.catalog.HotelByStars(referenceHotelStars); ok && hotel.CarbonFactor > 0 {
		return hotel.CarbonFactor
	}
	return accommodationPerStarNight * referenceHotelStars
}

// potentialSavings sums the emission avoided by switching every car or taxi
// leg to the bus over the same distance, plus the luxury-vs-eco lodging
// differential for each night.
func (s *CarbonService) potentialSavings(trip domain.TripOption) float64 {
	carFactor := s.catalog.TransportFactor(domain.TransportPrivateCar, fallbackCarFactor)
	busFactor := s.catalog.TransportFactor(domain.TransportBus, fallbackBusFactor)

	var savings float64
	for _, day := range trip.Days {
		for _, a := range day.Activities {
			if a.Transport != domain.TransportPrivateCar && a.Transport != domain.TransportTaxi {
				continue
			}
			savings += (carFactor - busFactor) * a.Duration * kmPerActivityHour
		}
	}

	savings += (luxuryHotelNight - ecoHotelNight) * float64(len(trip.Days))
	return savings
}

// equivalentDescription translates a total emission into tree-years and car
// kilometres. Below one tree-year only the fractional tree figure is shown.
func equivalentDescription(total float64) string {
	trees := total / treeAbsorptionPerYear
	carKM := total / carEmissionPerKM

	if trees < 1 {
		return fmt.Sprintf("equivalent to planting %.1f trees for a year to offset", math.Round(trees*10)/10)
	}
	return fmt.Sprintf("equivalent to planting %.0f trees for a year, or driving %.0f km by car",
		math.Round(trees), math.Round(carKM))
}

// recommendations builds the ordered, deduplicated advice list: personalized
// entries first, then generic ones until 5 entries or the pool runs out.
func (s *CarbonService) recommendations(trip domain.TripOption) []string {
	var (
		usedPrivateCar  bool
		paidExperiences int
	)
	for _, day := range trip.Days {
		for _, a := range day.Activities {
			if a.Transport == domain.TransportPrivateCar {
				usedPrivateCar = true
			}
			if a.Type == domain.ActivityExperience && a.Price > expensiveExperiencePrice {
				paidExperiences++
			}
		}
	}

	var recs []string
	if usedPrivateCar {
		recs = append(recs, "Use public transport or shared bikes to cut transport emissions")
	}
	if len(trip.Days) > 5 {
		recs = append(recs, "Choose green-certified hotels and bring your own toiletries")
	}
	if paidExperiences > len(trip.Days) {
		recs = append(recs, "Mix in free natural activities such as hiking or picnicking")
	}
	recs = append(recs, genericRecommendations...)

	seen := make(map[string]struct{}, len(recs))
	out := make([]string, 0, maxRecommendations)
	for _, r := range recs {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

// ReductionTips returns the static, order-preserving catalog of reduction
// tips. No computation happens here.
func (s *CarbonService) ReductionTips() []domain.CarbonReductionTip {
	return []domain.CarbonReductionTip{
		{
			ID:          1,
			Title:       "Take public transport",
			Description: "Prefer the metro and buses over private cars",
			Reduction:   30,
			Difficulty:  domain.TipEasy,
			Icon:        "🚌",
		},
		{
			ID:          2,
			Title:       "Pick a green hotel",
			Description: "Stay at hotels with environmental certification to support sustainable tourism",
			Reduction:   25,
			Difficulty:  domain.TipMedium,
			Icon:        "🏨",
		},
		{
			ID:          3,
			Title:       "Skip single-use items",
			Description: "Bring your own toiletries, shopping bag, and cup",
			Reduction:   10,
			Difficulty:  domain.TipEasy,
			Icon:        "♻️",
		},
		{
			ID:          4,
			Title:       "Eat local",
			Description: "Try local specialities and cut food-transport emissions",
			Reduction:   15,
			Difficulty:  domain.TipMedium,
			Icon:        "🍜",
		},
		{
			ID:          5,
			Title:       "Offset your trip",
			Description: "Buy carbon offsets through a certified programme",
			Reduction:   100,
			Difficulty:  domain.TipHard,
			Icon:        "🌳",
		},
	}
}

// Compare maps Calculate over each option independently; there is no
// cross-option normalization.
func (s *CarbonService) Compare(trips []domain.TripOption) []domain.CarbonFootprint {
	footprints := make([]domain.CarbonFootprint, len(trips))
	for i, trip := range trips {
		footprints[i] = s.Calculate(trip)
	}
	return footprints
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
