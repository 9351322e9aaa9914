package domain

// ResultSet holds the products shown for the latest catalog query.
//
// Each fetch takes a ticket from Begin. Only the holder of the most recent
// ticket may store results, so a response that resolves after a newer
// request was issued is dropped instead of overwriting fresher data.
type ResultSet struct {
	Products []Product
	Total    int
	Loading  bool
	Loaded   bool

	ticket uint64
}

func (r *ResultSet) Begin() uint64 {
	r.ticket++
	r.Loading = true
	return r.ticket
}

func (r *ResultSet) IsLatest(ticket uint64) bool {
	return ticket == r.ticket
}

func (r *ResultSet) Resolve(ticket uint64, products []Product, total int) bool {
	if !r.IsLatest(ticket) {
		return false
	}
	r.Products = products
	r.Total = total
	r.Loading = false
	r.Loaded = true
	return true
}

// Fail clears the loading flag for the latest ticket and keeps the previous
// results on screen.
func (r *ResultSet) Fail(ticket uint64) bool {
	if !r.IsLatest(ticket) {
		return false
	}
	r.Loading = false
	return true
}

// Empty reports a completed fetch that returned no products.
func (r ResultSet) Empty() bool {
	return r.Loaded && !r.Loading && len(r.Products) == 0
}
