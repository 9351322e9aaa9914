package dto

import "stackshop/internal/domain"

// CatalogListing is what the browse use case produces for one catalog state.
type CatalogListing struct {
	State         domain.CatalogState
	Categories    []string
	SubCategories []string
	Products      []domain.Product
	Total         int
}

// CatalogPageView is the template model of the catalog page.
type CatalogPageView struct {
	Listing CatalogListing

	ShowSubCategories bool
	ShowClearFilters  bool
	ClearURL          string

	RangeFirst int
	RangeLast  int

	PageNumber  int
	TotalPages  int
	PageInput   string
	PrevURL     string
	NextURL     string
	HasPrevious bool
	HasNext     bool

	Cards []ProductCard

	// Error is set when the product list could not be loaded.
	Error string
}

type ProductCard struct {
	Product   domain.Product
	DetailURL string
	ImageURL  string
}

// ProductPageView is the template model of the detail page.
type ProductPageView struct {
	Product    *domain.ProductDetail
	MainImage  string
	Thumbnails []Thumbnail
}

type Thumbnail struct {
	Index    int
	Label    int
	URL      string
	LinkURL  string
	Selected bool
}
