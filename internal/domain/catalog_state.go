package domain

import (
	"fmt"

	apperrors "stackshop/internal/errors"
)

// CatalogState is the filter and page index owned by the catalog page.
// Every transition reports whether the state changed so callers know when a
// new product query is due.
type CatalogState struct {
	Filter Filter
	Page   int
}

func (s *CatalogState) SetSearch(text string) bool {
	if s.Filter.Search == text {
		return false
	}
	s.Filter.Search = text
	s.Page = 0
	return true
}

// SelectCategory switches the category. The sub-category always belongs to
// the previous category's option set, so it is cleared on change.
func (s *CatalogState) SelectCategory(category string) bool {
	if s.Filter.Category == category {
		return false
	}
	s.Filter.Category = category
	s.Filter.SubCategory = ""
	s.Page = 0
	return true
}

func (s *CatalogState) SelectSubCategory(subCategory string) bool {
	if s.Filter.Category == "" {
		if s.Filter.SubCategory == "" {
			return false
		}
		s.Filter.SubCategory = ""
		s.Page = 0
		return true
	}
	if s.Filter.SubCategory == subCategory {
		return false
	}
	s.Filter.SubCategory = subCategory
	s.Page = 0
	return true
}

// ClearFilters resets search, category and sub-category in one step. It is a
// no-op while no filter is active.
func (s *CatalogState) ClearFilters() bool {
	if !s.Filter.Active() {
		return false
	}
	s.Filter = Filter{}
	s.Page = 0
	return true
}

func (s *CatalogState) Previous() bool {
	if s.Page <= 0 {
		s.Page = 0
		return false
	}
	s.Page--
	return true
}

func (s *CatalogState) Next(total int) bool {
	if !s.Pagination(total).HasNext() {
		return false
	}
	s.Page++
	return true
}

// JumpTo applies a manually entered one-based page number. Input outside
// [1, ceil(total/PageSize)] is rejected with a ValidationError on the goto
// field and leaves the state untouched.
func (s *CatalogState) JumpTo(raw string, total int) error {
	p := s.Pagination(total)
	idx, ok := p.ParsePageInput(raw)
	if !ok {
		return apperrors.NewValidationError("invalid page number", apperrors.ValidationDetail{
			Field:   "goto",
			Message: fmt.Sprintf("%q is not a page between 1 and %d", raw, p.TotalPages()),
		})
	}
	s.Page = idx
	return nil
}

// ClampPage moves a page index past the last page back onto it, or onto the
// first page when there are no results.
func (s *CatalogState) ClampPage(total int) bool {
	last := max(s.Pagination(total).TotalPages()-1, 0)
	if s.Page <= last {
		return false
	}
	s.Page = last
	return true
}

func (s CatalogState) Pagination(total int) Pagination {
	return Pagination{Page: s.Page, Total: total}
}

func (s CatalogState) ProductQuery() ProductQuery {
	return ProductQuery{
		Search:      s.Filter.Search,
		Category:    s.Filter.Category,
		SubCategory: s.Filter.SubCategory,
		Limit:       PageSize,
		Offset:      s.Pagination(0).Offset(),
	}
}
