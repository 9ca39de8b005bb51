// Package airquality resolves UK-AIR DAQI forecasts into a canonical,
// provider-independent shape.
package airquality

// Pollutant is one deduplicated species reading. Index is a DAQI value in
// [1,10]; Band is its severity label.
type Pollutant struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Units string  `json:"units"`
	Band  string  `json:"band,omitempty"`
	Index int     `json:"index,omitempty"`
}

// Result is the canonical air-quality view for one area. MaxDAQI is the
// highest pollutant index (1 when none were reported) and Summary its DAQI
// band. Pollutants are deduplicated by name, worst reading first.
type Result struct {
	Area         string      `json:"area"`
	MaxDAQI      int         `json:"max_daqi"`
	Summary      string      `json:"summary"`
	Pollutants   []Pollutant `json:"pollutants"`
	ForecastDate string      `json:"forecast_date"`
}

// Query selects a forecast area; empty falls back to the default region.
type Query struct {
	Area string
}
