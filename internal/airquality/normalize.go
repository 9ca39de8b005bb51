package airquality

import (
	"log"
	"sort"
	"time"

	"github.com/councildata/council-data-explorer/internal/common"
)

const units = "µg/m³"

// daqiBands maps index ranges onto the four UK DAQI severity bands. The
// ranges are contiguous and exhaustive over [1,10].
var daqiBands = []struct {
	low, high int
	name      string
}{
	{1, 3, "Low"},
	{4, 6, "Moderate"},
	{7, 9, "High"},
	{10, 10, "Very High"},
}

// DAQISummary returns the band name for a DAQI index, or "Unknown" for
// values outside [1,10].
func DAQISummary(index int) string {
	for _, b := range daqiBands {
		if index >= b.low && index <= b.high {
			return b.name
		}
	}
	return "Unknown"
}

// Normalize converts a raw UK-AIR monitoring-index payload into the
// canonical Result. The feed nests local authorities, monitoring sites, and
// species readings, and any of those levels may encode a single child as an
// object rather than a one-element array; both are treated uniformly.
func Normalize(data any, area string) Result {
	m := common.AsMap(data)
	if m == nil {
		log.Printf("WARN: unexpected air quality payload shape, serving fallback")
		return Fallback(area)
	}

	forecastDate := time.Now().Format("2006-01-02")
	var readings []Pollutant

	if daily := common.AsMap(m["DailyAirQualityIndex"]); daily != nil {
		if d := common.FirstString(daily, "@ForecastDate"); d != "" {
			forecastDate = d
		}

		for _, la := range common.AsList(daily["LocalAuthority"]) {
			authority := common.AsMap(la)
			if authority == nil {
				continue
			}
			for _, st := range common.AsList(authority["Site"]) {
				site := common.AsMap(st)
				if site == nil {
					continue
				}
				for _, sp := range common.AsList(site["Species"]) {
					if p, ok := parseSpecies(common.AsMap(sp)); ok {
						readings = append(readings, p)
					}
				}
			}
		}
	}

	pollutants := dedupe(readings)

	maxDAQI := 1
	for _, p := range pollutants {
		if p.Index > maxDAQI {
			maxDAQI = p.Index
		}
	}

	return Result{
		Area:         area,
		MaxDAQI:      maxDAQI,
		Summary:      DAQISummary(maxDAQI),
		Pollutants:   pollutants,
		ForecastDate: forecastDate,
	}
}

// parseSpecies extracts one pollutant reading. Values default to 0, the
// index defaults to 1 and is clamped into [1,10], and a missing band label
// falls back to the DAQI band of the index.
func parseSpecies(sp map[string]any) (Pollutant, bool) {
	if sp == nil {
		return Pollutant{}, false
	}

	name := common.FirstString(sp, "@SpeciesCode")
	if name == "" {
		name = "Unknown"
	}

	index := common.ToInt(sp["@AirQualityIndex"], 1)
	if index < 1 {
		index = 1
	}
	if index > 10 {
		index = 10
	}

	band := common.FirstString(sp, "@AirQualityBand")
	if band == "" {
		band = DAQISummary(index)
	}

	return Pollutant{
		Name:  name,
		Value: common.ToFloat(sp["@Value"], 0),
		Units: units,
		Band:  band,
		Index: index,
	}, true
}

// dedupe keeps the worst (highest index) reading per species name as a
// conservative measure; ties keep the first encountered. Output is ordered
// worst-first.
func dedupe(readings []Pollutant) []Pollutant {
	position := make(map[string]int, len(readings))
	out := make([]Pollutant, 0, len(readings))

	for _, p := range readings {
		if at, seen := position[p.Name]; seen {
			if p.Index > out[at].Index {
				out[at] = p
			}
			continue
		}
		position[p.Name] = len(out)
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Index > out[j].Index
	})
	return out
}

// Fallback is the conservative "nothing alarming reported" result used
// when the upstream cannot provide data.
func Fallback(area string) Result {
	return Result{
		Area:         area,
		MaxDAQI:      1,
		Summary:      "Low",
		Pollutants:   []Pollutant{},
		ForecastDate: time.Now().Format("2006-01-02"),
	}
}
