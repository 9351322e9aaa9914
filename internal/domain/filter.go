package domain

// Filter drives which products are queried. An empty string means unset.
// SubCategory is only meaningful while Category is set.
type Filter struct {
	Search      string
	Category    string
	SubCategory string
}

func (f Filter) Active() bool {
	return f.Search != "" || f.Category != "" || f.SubCategory != ""
}
