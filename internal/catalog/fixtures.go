package catalog

import (
	"time"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// Default returns the built-in Hangzhou demo catalog. Callers get a fresh
// value each time, but the slices inside are shared — treat the result as
// read-only, as with every Catalog.
func Default() Catalog {
	return Catalog{
		Attractions:      defaultAttractions,
		Hotels:           defaultHotels,
		Experiences:      defaultExperiences,
		TransportFactors: DefaultTransportFactors,
	}
}

// DefaultTransportFactors is the per-kilometre emission table (kg CO2e/km).
var DefaultTransportFactors = map[domain.TransportMode]float64{
	domain.TransportPlane:      0.252,
	domain.TransportTrain:      0.041,
	domain.TransportBus:        0.105,
	domain.TransportPrivateCar: 0.177,
	domain.TransportBike:       0,
	domain.TransportWalk:       0,
}

var defaultAttractions = []Attraction{
	{
		ID:           1,
		Name:         "West Lake",
		Location:     "Hangzhou",
		Category:     "natural scenery",
		Description:  "Famous scenic area and UNESCO World Heritage site",
		Rating:       4.8,
		OpeningHours: "00:00-24:00",
		AdmissionFee: 0,
	},
	{
		ID:           2,
		Name:         "Lingyin Temple",
		Location:     "Hangzhou",
		Category:     "religious culture",
		Description:  "Ancient Buddhist temple with a long history and deep cultural roots",
		Rating:       4.7,
		OpeningHours: "07:00-18:00",
		AdmissionFee: 45,
	},
	{
		ID:           3,
		Name:         "Qiandao Lake",
		Location:     "Chun'an, Hangzhou",
		Category:     "natural scenery",
		Description:  "5A-rated scenic area known for clear water and over a thousand islands",
		Rating:       4.6,
		OpeningHours: "08:00-17:00",
		AdmissionFee: 130,
	},
	{
		ID:           4,
		Name:         "Songcheng Park",
		Location:     "Hangzhou",
		Category:     "theme park",
		Description:  "Large Song-dynasty themed park recreating the old capital",
		Rating:       4.5,
		OpeningHours: "09:00-21:00",
		AdmissionFee: 310,
	},
	{
		ID:           5,
		Name:         "Leifeng Pagoda",
		Location:     "Hangzhou",
		Category:     "historic building",
		Description:  "One of the ten scenes of West Lake, tied to a famous legend",
		Rating:       4.4,
		OpeningHours: "08:00-20:30",
		AdmissionFee: 40,
	},
}

var defaultHotels = []Hotel{
	{
		ID:           1,
		Name:         "Luxury Resort Hotel",
		Stars:        5,
		Price:        800,
		Location:     "West Lake, Hangzhou",
		EcoCertified: true,
		Description:  "Lakeside luxury hotel with premium service and facilities",
	},
	{
		ID:           2,
		Name:         "Boutique Guesthouse",
		Stars:        4,
		Price:        400,
		Location:     "West Lake, Hangzhou",
		EcoCertified: false,
		Description:  "Artistic guesthouse five minutes' walk from West Lake",
	},
	{
		ID:           3,
		Name:         "Business Hotel",
		Stars:        3,
		Price:        250,
		Location:     "Hangzhou city centre",
		EcoCertified: true,
		Description:  "Central business hotel with convenient transport links",
	},
	{
		ID:           4,
		Name:         "Budget Hotel",
		Stars:        2,
		Price:        120,
		Location:     "Hangzhou urban area",
		EcoCertified: false,
		Description:  "Affordable rooms suited to budget travel",
	},
}

var defaultExperiences = []domain.Experience{
	{
		ID:              1,
		Title:           "West Lake Culture Tour",
		Location:        "West Lake, Hangzhou",
		Price:           200,
		Duration:        3,
		Category:        "culture",
		Tags:            []string{"west lake", "culture", "history"},
		Description:     "Explore the history of West Lake and the stories behind its ten scenes",
		ImageURL:        "/images/experience_1.jpg",
		AvailableDates:  dates("2025-12-05", "2025-12-06", "2025-12-07"),
		MaxParticipants: 15,
	},
	{
		ID:              2,
		Title:           "Longjing Tea Picking",
		Location:        "Longjing Village, Hangzhou",
		Price:           300,
		Duration:        4,
		Category:        "hands-on",
		Tags:            []string{"tea", "hands-on", "traditional craft"},
		Description:     "Pick Longjing tea yourself and learn how it is processed",
		ImageURL:        "/images/experience_2.jpg",
		AvailableDates:  dates("2025-12-08", "2025-12-09", "2025-12-10"),
		MaxParticipants: 10,
	},
	{
		ID:              3,
		Title:           "Romance of the Song Dynasty Show",
		Location:        "Songcheng, Hangzhou",
		Price:           320,
		Duration:        2,
		Category:        "performance",
		Tags:            []string{"show", "history", "culture"},
		Description:     "Large-scale live performance bringing Song-dynasty culture to the stage",
		ImageURL:        "/images/experience_3.jpg",
		AvailableDates:  dates("2025-12-05", "2025-12-06", "2025-12-07", "2025-12-08", "2025-12-09"),
		MaxParticipants: 50,
	},
	{
		ID:              4,
		Title:           "Silk Weaving Workshop",
		Location:        "China Silk Museum, Hangzhou",
		Price:           180,
		Duration:        3,
		Category:        "craft",
		Tags:            []string{"silk", "craft", "traditional"},
		Description:     "Learn the history of Chinese silk and weave a piece by hand",
		ImageURL:        "/images/experience_4.jpg",
		AvailableDates:  dates("2025-12-06", "2025-12-07", "2025-12-13", "2025-12-14"),
		MaxParticipants: 8,
	},
	{
		ID:              5,
		Title:           "Grand Canal Night Cruise",
		Location:        "Grand Canal, Hangzhou",
		Price:           150,
		Duration:        2,
		Category:        "night tour",
		Tags:            []string{"canal", "night view", "culture"},
		Description:     "Cruise the Grand Canal at night past light shows and historic buildings",
		ImageURL:        "/images/experience_5.jpg",
		AvailableDates:  dates("2025-12-05", "2025-12-06", "2025-12-07", "2025-12-08", "2025-12-09", "2025-12-10", "2025-12-11"),
		MaxParticipants: 30,
	},
}

// RealTime returns the static destination snapshot: weather, crowd levels,
// traffic, and air quality. There is no live feed behind it.
func RealTime() domain.RealTimeInfo {
	return domain.RealTimeInfo{
		Weather: domain.Weather{
			Temperature: 15,
			Humidity:    70,
			WindSpeed:   3,
			Condition:   "cloudy",
			Forecast: []domain.ForecastDay{
				{Date: "2025-12-05", Condition: "sunny", High: 18, Low: 10},
				{Date: "2025-12-06", Condition: "cloudy", High: 16, Low: 9},
				{Date: "2025-12-07", Condition: "light rain", High: 14, Low: 8},
			},
		},
		CrowdLevels: map[string]string{
			"West Lake":      "moderate",
			"Lingyin Temple": "high",
			"Qiandao Lake":   "low",
			"Songcheng Park": "moderate",
			"Leifeng Pagoda": "high",
		},
		Traffic: map[string]string{
			"West Lake area": "congested",
			"Lingyin Temple": "busy",
			"Qiandao Lake":   "clear",
			"Songcheng Park": "busy",
			"Leifeng Pagoda": "congested",
		},
		AirQuality: domain.AirQuality{AQI: 75, Level: "good", PM25: 45, PM10: 68},
	}
}

// dates parses YYYY-MM-DD strings into UTC midnights. Fixture data only;
// panics on malformed input.
func dates(ds ...string) []time.Time {
	out := make([]time.Time, len(ds))
	for i, d := range ds {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			panic("catalog: bad fixture date " + d)
		}
		out[i] = t
	}
	return out
}
