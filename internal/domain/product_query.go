package domain

import (
	"net/url"
	"strconv"
)

// ProductQuery is the parameter set sent to the products endpoint.
type ProductQuery struct {
	Search      string
	Category    string
	SubCategory string
	Limit       int
	Offset      int
}

// Values encodes the query. Empty filters are omitted; limit and offset are
// always present.
func (q ProductQuery) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.SubCategory != "" {
		v.Set("subCategory", q.SubCategory)
	}
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("offset", strconv.Itoa(q.Offset))
	return v
}
