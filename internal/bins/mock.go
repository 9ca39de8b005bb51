package bins

import "strings"

// Fixture schedules served in mock mode for offline development, keyed by
// normalized postcode.
var mockResults = map[string]Result{
	"default": {
		Address: "10 Example Street, York, YO1 1AA",
		Council: "City of York Council",
		Bins: []Collection{
			{Type: "Refuse", CollectionDate: "2025-12-09"},
			{Type: "Recycling", CollectionDate: "2025-12-16"},
			{Type: "Garden Waste", CollectionDate: "2025-12-23"},
		},
	},
	"SW1A1AA": {
		Address: "10 Downing Street, London, SW1A 1AA",
		Council: "Westminster City Council",
		Bins: []Collection{
			{Type: "General Waste", CollectionDate: "2025-12-10"},
			{Type: "Recycling", CollectionDate: "2025-12-12"},
			{Type: "Food Waste", CollectionDate: "2025-12-10"},
		},
	},
	"M11AA": {
		Address: "1 Piccadilly Gardens, Manchester, M1 1AA",
		Council: "Manchester City Council",
		Bins: []Collection{
			{Type: "Black Bin", CollectionDate: "2025-12-11"},
			{Type: "Blue Bin", CollectionDate: "2025-12-18"},
		},
	},
}

func mockResult(q Query) Result {
	if q.Postcode != "" {
		normalized := strings.ToUpper(strings.ReplaceAll(q.Postcode, " ", ""))
		if r, ok := mockResults[normalized]; ok {
			if q.HouseNumber != "" {
				r.Address = q.HouseNumber + ", " + r.Address
			}
			return r
		}
	}

	r := mockResults["default"]
	if q.HouseNumber != "" {
		r.Address = q.HouseNumber + " Example Street, York, YO1 1AA"
	}
	return r
}
