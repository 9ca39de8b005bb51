// Package bins resolves waste-collection schedules from the City of York
// waste API into a canonical, provider-independent shape.
package bins

// Collection is one scheduled pickup in the canonical schema. The date is
// ISO-normalized (YYYY-MM-DD), or preserved verbatim when the upstream
// value could not be parsed.
type Collection struct {
	Type           string `json:"type"`
	CollectionDate string `json:"collection_date"`
}

// Result is the canonical collection schedule for one property, ordered by
// ascending collection date.
type Result struct {
	Address string       `json:"address"`
	Council string       `json:"council"`
	Bins    []Collection `json:"bins"`
}

// Query identifies a property. UPRN is the preferred lookup key; postcode
// and house number only shape mock and fallback responses.
type Query struct {
	UPRN        string
	Postcode    string
	HouseNumber string
}
