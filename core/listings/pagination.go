// ABOUTME: Pagination utilities for listing results
// ABOUTME: Provides functions to slice listings into pages for list views

package listings

import "realtorist-web/core/domain"

// DefaultPerPage is used when a caller passes a non-positive page size
const DefaultPerPage = 12

// Paginate returns a page of listings. Pages start at 1.
func Paginate(listings []domain.Listing, page, perPage int) []domain.Listing {
	if page < 1 {
		page = 1
	}

	if perPage < 1 {
		perPage = DefaultPerPage
	}

	start := (page - 1) * perPage
	end := start + perPage

	if start >= len(listings) {
		return []domain.Listing{}
	}

	if end > len(listings) {
		end = len(listings)
	}

	return listings[start:end]
}

// PageCount returns the number of pages needed for total listings
func PageCount(total, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}
