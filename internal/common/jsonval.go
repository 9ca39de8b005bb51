package common

import (
	"strconv"
	"strings"
)

// Helpers for probing loosely-structured upstream JSON decoded into any.
// Field names, nesting, and cardinality drift across providers, so callers
// enumerate alternate keys in priority order and coerce singletons to lists.

// AsMap returns v as a JSON object, or nil when it is anything else.
func AsMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// AsList coerces v into a list: an array is returned as-is and a single
// object becomes a one-element list. Anything else yields nil.
func AsList(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case map[string]any:
		return []any{t}
	default:
		return nil
	}
}

// FirstString returns the first non-empty string value among the given
// keys, probing them in order. Missing keys and non-string values are
// skipped.
func FirstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// ToFloat coerces a JSON number or numeric string to a float64, returning
// def when the value is absent or unparseable.
func ToFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// ToInt coerces a JSON number or numeric string to an int, returning def
// when the value is absent or unparseable.
func ToInt(v any, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return def
		}
		return i
	default:
		return def
	}
}
