package domain

import (
	"strconv"
	"strings"
)

// PageSize is the fixed number of products per catalog page.
const PageSize = 20

// Pagination pairs a zero-based page index with the total reported by the
// last product fetch.
type Pagination struct {
	Page  int
	Total int
}

func (p Pagination) Offset() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page * PageSize
}

// TotalPages is ceil(Total / PageSize).
func (p Pagination) TotalPages() int {
	if p.Total <= 0 {
		return 0
	}
	return (p.Total + PageSize - 1) / PageSize
}

func (p Pagination) HasPrevious() bool {
	return p.Page > 0
}

func (p Pagination) HasNext() bool {
	return (p.Page+1)*PageSize < p.Total
}

// Range returns the one-based numbers of the first and last product shown
// when the current page holds shown items.
func (p Pagination) Range(shown int) (first, last int) {
	first = p.Offset() + 1
	last = p.Offset() + shown
	return first, last
}

// ParsePageInput validates a manually entered page number against
// [1, TotalPages()] and returns the matching zero-based index.
func (p Pagination) ParsePageInput(raw string) (int, bool) {
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	if val < 1 || val > p.TotalPages() {
		return 0, false
	}
	return val - 1, true
}
