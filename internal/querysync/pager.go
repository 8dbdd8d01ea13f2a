package querysync

import "deskline/internal/shared/utils"

// Page is one client-side slice of a filtered collection.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	TotalItems int

	// Reset is true when the requested page exceeded the filtered
	// collection and the pager fell back to page 1. Callers mirror the
	// reset into their query state so navigation stays consistent.
	Reset bool
}

// Paginate slices an already filtered collection. totalPages is never
// below 1, so an empty collection yields one empty page.
func Paginate[T any](items []T, page, limit int) Page[T] {
	pagination := utils.ValidatePagination(page, limit)
	page = pagination.Page
	limit = pagination.Limit

	totalItems := len(items)
	totalPages := utils.TotalPages(int64(totalItems), limit)

	reset := false
	if page > totalPages {
		page = 1
		reset = true
	}

	start, end := utils.ApplyPagination(totalItems, page, limit)

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: totalItems,
		Reset:      reset,
	}
}

// Filter keeps the items satisfying the predicate, preserving order.
func Filter[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}
