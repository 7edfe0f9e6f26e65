package app

import "strings"

const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses whitespace in a statement and caps its
// length before it becomes a span attribute.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
