package bins

import (
	"sort"
	"strings"

	"github.com/councildata/council-data-explorer/internal/common"
)

const council = "City of York Council"

// binTypes maps upstream service labels to user-facing bin types.
var binTypes = map[string]string{
	"REFUSE":             "Refuse",
	"RECYCLING":          "Recycling",
	"GARDEN":             "Garden Waste",
	"GARDEN WASTE":       "Garden Waste",
	"FOOD":               "Food Waste",
	"KERBSIDE RECYCLING": "Recycling",
	"GREY BIN":           "Refuse",
	"GREEN BIN":          "Recycling",
	"BROWN BIN":          "Garden Waste",
}

// itemFields names the alternate keys one payload variant uses for the bin
// type and collection date. Probe order is fixed: when several keys are
// present at once the earlier one wins.
type itemFields struct {
	typeKeys []string
	dateKeys []string
}

// variants are the top-level keys the waste API has been observed nesting
// its item list under, in probe priority order. The first key present with
// a non-empty list wins.
var variants = []struct {
	key    string
	fields itemFields
}{
	{"bins", itemFields{
		typeKeys: []string{"binType", "bin_type", "type", "binTypeDescription"},
		dateKeys: []string{"nextCollectionDate", "next_collection_date", "collectionDate", "date"},
	}},
	{"services", itemFields{
		typeKeys: []string{"service", "serviceType", "type"},
		dateKeys: []string{"nextCollection", "next_collection", "collectionDate"},
	}},
	{"collections", itemFields{
		typeKeys: []string{"type", "binType", "service"},
		dateKeys: []string{"collection_date", "date", "nextCollection"},
	}},
}

// Normalize converts a raw waste-API payload into the canonical Result.
// The payload may be a bare array of items or an object nesting the item
// list under "bins", "services" or "collections"; a single object in place
// of a list is treated as a one-element list.
func Normalize(data any, uprn string) Result {
	address := "Unknown Address"
	var items []Collection

	if m := common.AsMap(data); m != nil {
		address = resolveAddress(m, uprn)
		for _, v := range variants {
			if raw := common.AsList(m[v.key]); len(raw) > 0 {
				items = parseItems(raw, v.fields)
				break
			}
		}
	} else if raw, ok := data.([]any); ok {
		items = parseItems(raw, variants[0].fields)
	}

	sortCollections(items)

	return Result{
		Address: address,
		Council: council,
		Bins:    items,
	}
}

func resolveAddress(m map[string]any, uprn string) string {
	if addr := common.FirstString(m, "address", "propertyAddress"); addr != "" {
		return addr
	}
	return "UPRN: " + uprn
}

func parseItems(raw []any, f itemFields) []Collection {
	items := make([]Collection, 0, len(raw))
	for _, it := range raw {
		m := common.AsMap(it)
		if m == nil {
			continue
		}

		typ := common.FirstString(m, f.typeKeys...)
		if typ == "" {
			typ = "Unknown"
		}

		date := common.NormalizeDate(common.FirstString(m, f.dateKeys...))
		if date == "" {
			// No date at all; the item cannot be scheduled.
			continue
		}

		items = append(items, Collection{
			Type:           normalizeType(typ),
			CollectionDate: date,
		})
	}
	return items
}

// normalizeType resolves an upstream bin label through the synonym table,
// falling back to title case for labels the table does not know.
func normalizeType(raw string) string {
	if mapped, ok := binTypes[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return mapped
	}
	return common.TitleCase(raw)
}

// sortCollections orders ascending by collection date; entries whose date
// failed to normalize sort after all parseable ones.
func sortCollections(items []Collection) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, iok := common.ParseISODate(items[i].CollectionDate)
		tj, jok := common.ParseISODate(items[j].CollectionDate)
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ti.Before(tj)
	})
}
