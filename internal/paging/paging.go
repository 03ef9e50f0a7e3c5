package paging

import (
	"slices"
	"strings"

	"backoffice/internal/domain"
)

// Apply runs search, sort and pagination over rows and returns the requested
// page together with the number of rows that matched the search.
//
// A row matches when any text field contains the search term (case-sensitive).
// Sorting is stable and silently skipped when SortBy names no known field.
func Apply[T any](rows []T, req domain.PagedRequest, fields Fields[T]) ([]T, int) {
	filtered := Filter(rows, req.SearchTerm, fields)
	Sort(filtered, req.SortBy, req.SortDesc, fields)

	total := len(filtered)
	start := req.Offset()
	if start < 0 || start >= total {
		return []T{}, total
	}
	end := start + min(req.PageSize(), total-start)
	return filtered[start:end], total
}

// Filter returns a new slice with the rows matching term. Empty term keeps all rows.
func Filter[T any](rows []T, term string, fields Fields[T]) []T {
	out := make([]T, 0, len(rows))
	if term == "" {
		return append(out, rows...)
	}
	texts := fields.Texts()
	for i := range rows {
		if matches(&rows[i], term, texts) {
			out = append(out, rows[i])
		}
	}
	return out
}

func matches[T any](row *T, term string, texts Fields[T]) bool {
	for _, f := range texts {
		if strings.Contains(f.Text(row), term) {
			return true
		}
	}
	return false
}

// Sort orders rows in place by the named field. It reports whether a sort happened.
func Sort[T any](rows []T, sortBy string, desc bool, fields Fields[T]) bool {
	if sortBy == "" {
		return false
	}
	f, ok := fields.Lookup(sortBy)
	if !ok || f.Compare == nil {
		return false
	}
	slices.SortStableFunc(rows, func(a, b T) int {
		c := f.Compare(&a, &b)
		if desc {
			return -c
		}
		return c
	})
	return true
}
