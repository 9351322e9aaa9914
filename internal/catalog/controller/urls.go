package controller

import (
	"net/url"
	"strconv"

	"stackshop/internal/domain"
)

const (
	paramSearch      = "search"
	paramCategory    = "category"
	paramSubCategory = "subCategory"
	paramPage        = "page"

	paramSetSearch      = "set.search"
	paramSetCategory    = "set.category"
	paramSetSubCategory = "set.subCategory"
	paramAction         = "action"
	paramGoto           = "goto"

	actionClear    = "clear"
	actionPrevious = "previous"
	actionNext     = "next"
)

// parseState reads the canonical catalog state. page is one-based; a missing
// or malformed value means the first page.
func parseState(q url.Values) domain.CatalogState {
	state := domain.CatalogState{
		Filter: domain.Filter{
			Search:      q.Get(paramSearch),
			Category:    q.Get(paramCategory),
			SubCategory: q.Get(paramSubCategory),
		},
	}
	if page, err := strconv.Atoi(q.Get(paramPage)); err == nil && page > 1 {
		state.Page = page - 1
	}
	return state
}

// catalogURL is the canonical address of state. Unset filters and the first
// page are omitted.
func catalogURL(state domain.CatalogState) string {
	v := url.Values{}
	if state.Filter.Search != "" {
		v.Set(paramSearch, state.Filter.Search)
	}
	if state.Filter.Category != "" {
		v.Set(paramCategory, state.Filter.Category)
	}
	if state.Filter.SubCategory != "" {
		v.Set(paramSubCategory, state.Filter.SubCategory)
	}
	if state.Page > 0 {
		v.Set(paramPage, strconv.Itoa(state.Page+1))
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

func productURL(sku string) string {
	return "/product?" + url.Values{"id": []string{sku}}.Encode()
}
