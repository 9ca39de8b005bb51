// Package planning resolves planning applications from planning.data.gov.uk
// into a canonical, provider-independent shape.
package planning

// Application is one canonical planning application. Reference is the
// record's identity; raw entities without a derivable reference are dropped
// during normalization.
type Application struct {
	Reference       string `json:"reference"`
	Address         string `json:"address"`
	Proposal        string `json:"proposal"`
	Status          string `json:"status"`
	ReceivedDate    string `json:"received_date"`
	DecisionDate    string `json:"decision_date,omitempty"`
	Decision        string `json:"decision,omitempty"`
	ApplicantName   string `json:"applicant_name,omitempty"`
	ApplicationType string `json:"application_type,omitempty"`
}

// Result is the canonical planning response for one local planning
// authority, ordered by descending received date. TotalCount is the
// post-filter length, independent of any upstream-declared count.
type Result struct {
	LPA          string        `json:"lpa"`
	Applications []Application `json:"applications"`
	TotalCount   int           `json:"total_count"`
}

// Query scopes a lookup to a local planning authority with an optional
// inclusive received-date range (YYYY-MM-DD bounds).
type Query struct {
	LPA      string
	DateFrom string
	DateTo   string
}
