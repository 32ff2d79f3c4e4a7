package domain

// ForecastDay is one day of the static weather forecast fixture.
type ForecastDay struct {
	Date      string `json:"date"`
	Condition string `json:"condition"`
	High      int    `json:"high"`
	Low       int    `json:"low"`
}

// Weather is the current-conditions snapshot of the real-time fixture.
type Weather struct {
	Temperature int           `json:"temperature"` // °C
	Humidity    int           `json:"humidity"`    // percent
	WindSpeed   int           `json:"wind_speed"`  // m/s
	Condition   string        `json:"condition"`
	Forecast    []ForecastDay `json:"forecast"`
}

// AirQuality is the static air-quality reading of the fixture.
type AirQuality struct {
	AQI   int    `json:"aqi"`
	Level string `json:"level"`
	PM25  int    `json:"pm25"`
	PM10  int    `json:"pm10"`
}

// RealTimeInfo is the static stand-in for live destination data.
// There is no live feed; the catalog ships a fixed snapshot.
type RealTimeInfo struct {
	Weather     Weather           `json:"weather"`
	CrowdLevels map[string]string `json:"crowd_levels"`
	Traffic     map[string]string `json:"traffic"`
	AirQuality  AirQuality        `json:"air_quality"`
}
