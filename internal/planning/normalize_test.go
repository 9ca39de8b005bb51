package planning

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func TestNormalizeEntities(t *testing.T) {
	data := decode(t, `{"entities": [
		{
			"reference": "23/12345/FUL",
			"name": "Erection of extension at 12 example road",
			"description": "Erection of single storey rear extension",
			"planning-decision": "approved",
			"entry-date": "2025-11-10",
			"decision-date": "2025-12-01",
			"applicant-name": "J Smith",
			"planning-application-type": "Full Application"
		}
	]}`)

	got := Normalize(data, "City of York Council", "", "")

	if got.LPA != "City of York Council" || got.TotalCount != 1 {
		t.Fatalf("unexpected result envelope: %+v", got)
	}
	app := got.Applications[0]
	if app.Reference != "23/12345/FUL" {
		t.Fatalf("unexpected reference %q", app.Reference)
	}
	if app.Address != "12 Example Road" {
		t.Fatalf("expected address extracted after \" at \", got %q", app.Address)
	}
	if app.Status != "Approved" {
		t.Fatalf("unexpected status %q", app.Status)
	}
	if app.ReceivedDate != "2025-11-10" || app.DecisionDate != "2025-12-01" {
		t.Fatalf("unexpected dates: %+v", app)
	}
	if app.ApplicantName != "J Smith" || app.ApplicationType != "Full Application" {
		t.Fatalf("unexpected optional fields: %+v", app)
	}
}

// An entity with no derivable reference is dropped, not defaulted, and does
// not count toward total_count.
func TestEntityWithoutReferenceDropped(t *testing.T) {
	data := decode(t, `{"entities": [
		{"description": "no identity here", "entry-date": "2025-11-10"},
		{"reference": "23/00001/FUL", "entry-date": "2025-11-11"}
	]}`)

	got := Normalize(data, "york", "", "")

	if got.TotalCount != 1 || len(got.Applications) != 1 {
		t.Fatalf("expected only the referenced entity, got %+v", got)
	}
	if got.Applications[0].Reference != "23/00001/FUL" {
		t.Fatalf("unexpected survivor: %+v", got.Applications[0])
	}
}

func TestReferenceFallsBackToName(t *testing.T) {
	data := decode(t, `[{"name": "Planning application at 1 High Street", "entry-date": "2025-11-10"}]`)

	got := Normalize(data, "york", "", "")

	if got.TotalCount != 1 || got.Applications[0].Reference != "Planning application at 1 High Street" {
		t.Fatalf("expected name used as reference, got %+v", got)
	}
	if got.Applications[0].Address != "1 High Street" {
		t.Fatalf("unexpected address %q", got.Applications[0].Address)
	}
}

func TestStatusNormalization(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"pending", "Pending Consideration"},
		{"awaiting-decision", "Awaiting Decision"},
		{"under review", "Under Review"},
		{"", "Pending"},
	}

	for _, tc := range cases {
		if got := normalizeStatus(tc.raw); got != tc.want {
			t.Fatalf("normalizeStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDateRangeFilterInclusive(t *testing.T) {
	data := decode(t, `{"entities": [
		{"reference": "A", "entry-date": "2025-10-01"},
		{"reference": "B", "entry-date": "2025-11-01"},
		{"reference": "C", "entry-date": "2025-12-01"}
	]}`)

	got := Normalize(data, "york", "2025-10-15", "2025-11-30")

	if got.TotalCount != 1 || got.Applications[0].Reference != "B" {
		t.Fatalf("expected exactly the 2025-11-01 application, got %+v", got)
	}
}

// Entities whose received date failed to parse are kept by the filter:
// excluding them could silently drop legitimate records with dirty data.
func TestDateRangeFilterKeepsUnparseable(t *testing.T) {
	data := decode(t, `{"entities": [
		{"reference": "A", "entry-date": "sometime in autumn"},
		{"reference": "B", "entry-date": "2025-01-01"}
	]}`)

	got := Normalize(data, "york", "2025-06-01", "2025-12-31")

	if got.TotalCount != 1 {
		t.Fatalf("expected the unparseable-date entity kept and the out-of-range one dropped, got %+v", got)
	}
	if got.Applications[0].Reference != "A" {
		t.Fatalf("unexpected survivor: %+v", got.Applications[0])
	}
}

func TestSortDescendingUnparseableLast(t *testing.T) {
	data := decode(t, `{"entities": [
		{"reference": "OLD", "entry-date": "2025-01-01"},
		{"reference": "JUNK", "entry-date": "garbled"},
		{"reference": "NEW", "entry-date": "2025-12-01"}
	]}`)

	got := Normalize(data, "york", "", "")

	refs := []string{
		got.Applications[0].Reference,
		got.Applications[1].Reference,
		got.Applications[2].Reference,
	}
	want := []string{"NEW", "OLD", "JUNK"}
	if !reflect.DeepEqual(refs, want) {
		t.Fatalf("expected order %v, got %v", want, refs)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := `{"entities": [
		{"reference": "A", "entry-date": "2025-10-01", "planning-decision": "refused"},
		{"reference": "B", "entry-date": "junk"}
	]}`

	first := Normalize(decode(t, raw), "york", "", "")
	second := Normalize(decode(t, raw), "york", "", "")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}
