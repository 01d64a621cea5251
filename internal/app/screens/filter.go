package screens

import (
	"slices"
	"strings"
)

// Filter returns the items for which any searchable field contains query,
// ignoring case. An empty query keeps every item. The input is never
// modified and the result preserves the input order.
func Filter[R any](items []R, query string, searchable func(R) []string) []R {
	if query == "" {
		return slices.Clone(items)
	}

	needle := strings.ToLower(query)
	out := make([]R, 0, len(items))
	for _, item := range items {
		if matches(searchable(item), needle) {
			out = append(out, item)
		}
	}
	return out
}

func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
