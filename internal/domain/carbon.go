package domain

// CarbonBreakdown splits a trip's emissions across the three sources the
// accountant tracks. Each value is rounded to 2 decimal places.
type CarbonBreakdown struct {
	Transport     float64 `json:"transport"`
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
}

// CarbonFootprint is the full emissions assessment of one itinerary.
// All quantities are kg CO2e.
type CarbonFootprint struct {
	TotalEmission float64         `json:"total_emission"`
	Breakdown     CarbonBreakdown `json:"breakdown"`
	// Savings is the emission the traveller could avoid by switching car
	// trips to the bus and luxury lodging to an eco-certified hotel.
	Savings float64 `json:"savings"`
	// Equivalent is a human-readable translation of TotalEmission into
	// tree-years or car kilometres.
	Equivalent string `json:"equivalent"`
	// Recommendations holds at most 5 deduplicated reduction suggestions,
	// personalized ones first.
	Recommendations []string `json:"recommendations"`
}

// TipDifficulty grades how hard a reduction tip is to act on.
type TipDifficulty string

const (
	TipEasy   TipDifficulty = "easy"
	TipMedium TipDifficulty = "medium"
	TipHard   TipDifficulty = "hard"
)

// CarbonReductionTip is a static catalog entry describing one way to lower
// a trip's footprint. Reduction is an estimated percentage.
type CarbonReductionTip struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Reduction   int           `json:"carbon_reduction"`
	Difficulty  TipDifficulty `json:"difficulty"`
	Icon        string        `json:"icon"`
}
