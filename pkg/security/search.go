package security

import "strings"

// MaxSearchQueryLength defines the maximum allowed length for search queries.
const MaxSearchQueryLength = 100

// NormalizeSearchQuery trims and length-bounds a user-supplied search query.
// Queries run through parameterized LIKE statements, so the only hard limit
// enforced here is length; overly long input is truncated rather than rejected.
func NormalizeSearchQuery(query string) string {
	query = strings.TrimSpace(query)
	if len(query) > MaxSearchQueryLength {
		query = query[:MaxSearchQueryLength]
	}
	return query
}

// EscapeLike escapes LIKE wildcards so a query matches them literally.
func EscapeLike(query string) string {
	query = strings.ReplaceAll(query, `\`, `\\`)
	query = strings.ReplaceAll(query, "%", `\%`)
	query = strings.ReplaceAll(query, "_", `\_`)
	return query
}
