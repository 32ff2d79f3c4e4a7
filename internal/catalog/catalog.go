// Package catalog holds the read-only datasets the planning engine draws
// from: attractions, hotels, cultural experiences, and transport emission
// factors. A Catalog is always passed into services explicitly so tests can
// substitute fixtures; nothing in this package is mutable at runtime.
package catalog

import "github.com/Maoxiaogui/lvyouzhinan/internal/domain"

// Attraction is a sight the generator can schedule as a day activity.
type Attraction struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Rating       float64 `json:"rating"`
	OpeningHours string  `json:"opening_hours"`
	AdmissionFee float64 `json:"admission_fee"`
}

// Hotel is an accommodation record. CarbonFactor, when set, is the hotel's
// measured kg CO2e per night; zero means unknown and the accountant falls
// back to the star-based default.
type Hotel struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Stars        int     `json:"stars"`
	Price        float64 `json:"price"` // per night, before budget scaling
	Location     string  `json:"location"`
	EcoCertified bool    `json:"eco_certified"`
	CarbonFactor float64 `json:"carbon_factor,omitempty"`
	Description  string  `json:"description"`
}

// Catalog bundles every dataset the engine consumes. Services receive it by
// value; generated itineraries copy records out of it and never alias it.
type Catalog struct {
	Attractions      []Attraction
	Hotels           []Hotel
	Experiences      []domain.Experience
	TransportFactors map[domain.TransportMode]float64 // kg CO2e per km
}

// TransportFactor returns the emission factor for mode, or fallback when the
// mode is absent from the table. An explicit zero entry (bike, walk) counts
// as present.
func (c Catalog) TransportFactor(mode domain.TransportMode, fallback float64) float64 {
	if f, ok := c.TransportFactors[mode]; ok {
		return f
	}
	return fallback
}

// HotelByStars returns the first hotel with the given star rating, falling
// back to the first hotel in the catalog. ok is false when the catalog has
// no hotels at all.
func (c Catalog) HotelByStars(stars int) (Hotel, bool) {
	for _, h := range c.Hotels {
		if h.Stars == stars {
			return h, true
		}
	}
	if len(c.Hotels) > 0 {
		return c.Hotels[0], true
	}
	return Hotel{}, false
}

// ExperienceByID returns the experience with the given id.
func (c Catalog) ExperienceByID(id int) (domain.Experience, bool) {
	for _, e := range c.Experiences {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Experience{}, false
}
