package httpx

import (
	"net/url"
	"strings"
)

const (
	// StrTrue represents the string "true" for boolean query parameters.
	StrTrue = "true"
	// StrFalse represents the string "false" for boolean query parameters.
	StrFalse = "false"
	// SortDirAsc represents ascending sort direction.
	SortDirAsc = "asc"
	// SortDirDesc represents descending sort direction.
	SortDirDesc = "desc"
)

// ParseSortParam extracts and validates sort field and direction from URL query parameters.
// It supports two formats:
// 1. Combined format: ?sort=field:dir (e.g., ?sort=order:desc)
// 2. Separate format: ?sort=field&dir=direction (e.g., ?sort=order&dir=desc)
//
// The direction is normalized to lowercase and validated (must be "asc" or "desc").
// If the direction is invalid, it returns an empty string for dir.
func ParseSortParam(q url.Values, sortKey, dirKey string) (string, string) {
	sortParam := strings.TrimSpace(q.Get(sortKey))
	dirParam := strings.ToLower(strings.TrimSpace(q.Get(dirKey)))

	parts := strings.SplitN(sortParam, ":", 2)
	if len(parts) == 2 {
		fieldPart := strings.TrimSpace(parts[0])
		dirPart := strings.ToLower(strings.TrimSpace(parts[1]))
		if dirPart == SortDirAsc || dirPart == SortDirDesc {
			return fieldPart, dirPart
		}
		// Invalid direction in colon syntax, return field only
		return fieldPart, ""
	}

	if dirParam == SortDirAsc || dirParam == SortDirDesc {
		return sortParam, dirParam
	}

	return sortParam, ""
}

// ParseBoolFilter reads a tri-state boolean query param: "true"/"false"
// select a filter, anything else (including absence) means no filter.
func ParseBoolFilter(q url.Values, key string) *bool {
	switch strings.ToLower(strings.TrimSpace(q.Get(key))) {
	case StrTrue:
		v := true
		return &v
	case StrFalse:
		v := false
		return &v
	default:
		return nil
	}
}

// SearchQuery returns the trimmed local search term from the query string.
func SearchQuery(q url.Values) string {
	return strings.TrimSpace(q.Get("q"))
}

// FilterLocal narrows already-fetched items by a case-insensitive substring
// match against each item's searchable fields. The search never touches the
// platform API: it only filters what the current page has loaded.
func FilterLocal[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" || fields == nil {
		return items
	}
	needle := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
