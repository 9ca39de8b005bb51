package airquality

import (
	"strings"
	"time"
)

// Fixture forecasts served in mock mode for offline development.
var mockAreas = []Result{
	{
		Area:    "Yorkshire & Humber",
		MaxDAQI: 2,
		Summary: "Low",
		Pollutants: []Pollutant{
			{Name: "NO2", Value: 18.5, Units: units, Band: "Low", Index: 1},
			{Name: "PM2.5", Value: 6.2, Units: units, Band: "Low", Index: 1},
			{Name: "PM10", Value: 12.4, Units: units, Band: "Low", Index: 1},
			{Name: "O3", Value: 45.0, Units: units, Band: "Low", Index: 2},
		},
	},
	{
		Area:    "Greater London",
		MaxDAQI: 4,
		Summary: "Moderate",
		Pollutants: []Pollutant{
			{Name: "NO2", Value: 42.0, Units: units, Band: "Moderate", Index: 3},
			{Name: "PM2.5", Value: 18.5, Units: units, Band: "Moderate", Index: 4},
			{Name: "PM10", Value: 28.3, Units: units, Band: "Low", Index: 2},
			{Name: "O3", Value: 52.0, Units: units, Band: "Low", Index: 2},
			{Name: "SO2", Value: 8.0, Units: units, Band: "Low", Index: 1},
		},
	},
	{
		Area:    "Greater Manchester",
		MaxDAQI: 3,
		Summary: "Low",
		Pollutants: []Pollutant{
			{Name: "NO2", Value: 28.0, Units: units, Band: "Low", Index: 2},
			{Name: "PM2.5", Value: 10.5, Units: units, Band: "Low", Index: 2},
			{Name: "PM10", Value: 18.0, Units: units, Band: "Low", Index: 2},
			{Name: "O3", Value: 58.0, Units: units, Band: "Low", Index: 3},
		},
	},
	{
		Area:    "West Midlands",
		MaxDAQI: 3,
		Summary: "Low",
		Pollutants: []Pollutant{
			{Name: "NO2", Value: 25.0, Units: units, Band: "Low", Index: 2},
			{Name: "PM2.5", Value: 9.0, Units: units, Band: "Low", Index: 2},
			{Name: "PM10", Value: 15.0, Units: units, Band: "Low", Index: 1},
			{Name: "O3", Value: 60.0, Units: units, Band: "Low", Index: 3},
		},
	},
}

func mockResult(area string) Result {
	today := time.Now().Format("2006-01-02")

	query := strings.ToLower(area)
	for _, m := range mockAreas {
		name := strings.ToLower(m.Area)
		if strings.Contains(name, query) || strings.Contains(query, name) {
			r := m
			r.ForecastDate = today
			return r
		}
	}

	// Unknown area: serve the default region's readings under the
	// requested name.
	r := mockAreas[0]
	r.Area = area
	r.ForecastDate = today
	return r
}
