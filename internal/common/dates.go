package common

import (
	"log"
	"strings"
	"time"
)

// dateLayouts are tried in order when normalizing upstream date strings.
// The feeds mix ISO dates, ISO date-times (with and without fractional
// seconds or zone), and UK day-first forms.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05Z07:00",
	"02/01/2006",
	"02-01-2006",
}

// NormalizeDate converts an upstream date string to YYYY-MM-DD. An
// unparseable non-empty value is returned verbatim with a logged warning
// rather than fabricated or dropped; empty input stays empty.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	log.Printf("WARN: could not parse date: %q", s)
	return s
}

// ParseISODate parses a normalized YYYY-MM-DD date, reporting whether the
// input was in that form. Callers sort on the returned time; the zero time
// for unparseable input puts such records at the extreme of any ordering.
func ParseISODate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}
