package planning

import (
	"sort"
	"strings"

	"github.com/councildata/council-data-explorer/internal/common"
)

// statusNames maps planning.data.gov.uk decision values to user-facing
// statuses.
var statusNames = map[string]string{
	"pending":           "Pending Consideration",
	"approved":          "Approved",
	"refused":           "Refused",
	"withdrawn":         "Withdrawn",
	"decided":           "Decided",
	"registered":        "Registered",
	"awaiting-decision": "Awaiting Decision",
	"in-progress":       "In Progress",
}

// Normalize converts a raw planning.data.gov.uk payload into the canonical
// Result, applying the optional inclusive date-range filter. The payload is
// either a list of entities or an object with an "entities" list.
func Normalize(data any, lpa, dateFrom, dateTo string) Result {
	var entities []any
	if m := common.AsMap(data); m != nil {
		entities = common.AsList(m["entities"])
	} else if list, ok := data.([]any); ok {
		entities = list
	}

	apps := make([]Application, 0, len(entities))
	for _, e := range entities {
		if app, ok := parseEntity(common.AsMap(e)); ok {
			apps = append(apps, app)
		}
	}

	if dateFrom != "" || dateTo != "" {
		apps = filterByDate(apps, dateFrom, dateTo)
	}
	sortApplications(apps)

	return Result{
		LPA:          lpa,
		Applications: apps,
		TotalCount:   len(apps),
	}
}

// parseEntity maps one upstream entity onto an Application. An entity with
// no derivable reference is dropped, not defaulted: the reference is the
// record's identity and without one it cannot be deduplicated or cited.
func parseEntity(e map[string]any) (Application, bool) {
	if e == nil {
		return Application{}, false
	}

	reference := common.FirstString(e, "reference", "planning-application-reference", "name")
	if reference == "" {
		return Application{}, false
	}

	proposal := common.FirstString(e, "description", "name", "notes")
	if proposal == "" {
		proposal = "Planning application"
	}

	return Application{
		Reference:       reference,
		Address:         extractAddress(e),
		Proposal:        proposal,
		Status:          normalizeStatus(common.FirstString(e, "planning-decision")),
		ReceivedDate:    common.NormalizeDate(common.FirstString(e, "entry-date", "start-date", "received-date")),
		DecisionDate:    common.NormalizeDate(common.FirstString(e, "decision-date", "end-date")),
		Decision:        common.FirstString(e, "planning-decision"),
		ApplicantName:   common.FirstString(e, "applicant-name"),
		ApplicationType: common.FirstString(e, "planning-application-type", "development-type"),
	}, true
}

// extractAddress tries direct address fields, then the text after a
// case-insensitive " at " in the free-text name (title-cased), then the
// name itself, then the reference.
func extractAddress(e map[string]any) string {
	if addr := common.FirstString(e, "address", "site-address", "address-text"); addr != "" {
		return addr
	}

	name := common.FirstString(e, "name")
	if idx := strings.Index(strings.ToLower(name), " at "); idx >= 0 {
		return common.TitleCase(name[idx+len(" at "):])
	}
	if name != "" {
		return name
	}
	if ref := common.FirstString(e, "reference"); ref != "" {
		return ref
	}
	return "Unknown Address"
}

// normalizeStatus resolves a raw status through the synonym table, title-
// casing unmapped non-empty values and defaulting empty ones to "Pending".
func normalizeStatus(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "Pending"
	}
	if mapped, ok := statusNames[s]; ok {
		return mapped
	}
	return common.TitleCase(raw)
}

// filterByDate keeps applications received within [from, to], comparing
// lexicographically on the normalized YYYY-MM-DD form. Applications whose
// date failed to parse are kept rather than silently dropped.
func filterByDate(apps []Application, from, to string) []Application {
	filtered := make([]Application, 0, len(apps))
	for _, app := range apps {
		if _, ok := common.ParseISODate(app.ReceivedDate); !ok {
			filtered = append(filtered, app)
			continue
		}
		if from != "" && app.ReceivedDate < from {
			continue
		}
		if to != "" && app.ReceivedDate > to {
			continue
		}
		filtered = append(filtered, app)
	}
	return filtered
}

// sortApplications orders descending by received date. Unparseable dates
// parse to the zero time, the earliest possible value, so those records
// sink to the end.
func sortApplications(apps []Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		ti, _ := common.ParseISODate(apps[i].ReceivedDate)
		tj, _ := common.ParseISODate(apps[j].ReceivedDate)
		return ti.After(tj)
	})
}
