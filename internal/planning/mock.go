package planning

import "strings"

// Fixture applications served in mock mode for offline development. Kept as
// an ordered slice so the no-match fallback is deterministic.
var mockLPAs = []struct {
	name string
	apps []Application
}{
	{
		name: "City of York Council",
		apps: []Application{
			{
				Reference:       "23/12345/FUL",
				Address:         "12 Example Road, York, YO1 1AB",
				Proposal:        "Erection of single storey rear extension",
				Status:          "Pending Consideration",
				ReceivedDate:    "2025-11-10",
				ApplicationType: "Full Application",
			},
			{
				Reference:       "23/12346/HOU",
				Address:         "45 Sample Street, York, YO2 2CD",
				Proposal:        "Loft conversion with rear dormer window",
				Status:          "Approved",
				ReceivedDate:    "2025-10-15",
				DecisionDate:    "2025-11-20",
				Decision:        "Approved",
				ApplicationType: "Householder",
			},
			{
				Reference:       "23/12347/OUT",
				Address:         "Land North of Main Road, York",
				Proposal:        "Outline application for residential development (10 dwellings)",
				Status:          "Under Review",
				ReceivedDate:    "2025-09-01",
				ApplicationType: "Outline Application",
			},
		},
	},
	{
		name: "Westminster City Council",
		apps: []Application{
			{
				Reference:       "23/07890/FULL",
				Address:         "100 Victoria Street, London, SW1E 5JL",
				Proposal:        "Change of use from office to residential",
				Status:          "Pending",
				ReceivedDate:    "2025-11-05",
				ApplicationType: "Full Application",
			},
		},
	},
	{
		name: "Manchester City Council",
		apps: []Application{
			{
				Reference:       "135678/FO/2025",
				Address:         "Piccadilly Plaza, Manchester, M1 4AH",
				Proposal:        "Internal alterations to ground floor retail unit",
				Status:          "Decided",
				ReceivedDate:    "2025-10-01",
				DecisionDate:    "2025-11-15",
				Decision:        "Granted",
				ApplicationType: "Full Application",
			},
		},
	},
}

func mockResult(q Query) Result {
	apps := mockLPAs[0].apps
	matched := mockLPAs[0].name

	query := strings.ToLower(q.LPA)
	for _, m := range mockLPAs {
		name := strings.ToLower(m.name)
		if strings.Contains(name, query) || strings.Contains(query, name) {
			apps, matched = m.apps, m.name
			break
		}
	}

	if q.DateFrom != "" || q.DateTo != "" {
		apps = filterByDate(apps, q.DateFrom, q.DateTo)
	}

	return Result{
		LPA:          matched,
		Applications: apps,
		TotalCount:   len(apps),
	}
}
