package common

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase renders a raw upstream label in title case, used as the
// fallback when a synonym table has no mapping for a value.
func TitleCase(s string) string {
	return cases.Title(language.BritishEnglish).String(strings.TrimSpace(s))
}
