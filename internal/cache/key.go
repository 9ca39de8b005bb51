package cache

import (
	"sort"
	"strings"
)

// Key derives a deterministic cache key from an operation name, positional
// arguments, and named parameters. Empty arguments are omitted entirely, so
// two calls differing only in an unused optional argument collide to the
// same key. Named parameters are sorted by name for stability.
func Key(op string, args []string, params map[string]string) string {
	parts := []string{op}
	for _, a := range args {
		if a != "" {
			parts = append(parts, a)
		}
	}

	names := make([]string, 0, len(params))
	for name, v := range params {
		if v != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, name+"="+params[name])
	}

	return strings.Join(parts, ":")
}
