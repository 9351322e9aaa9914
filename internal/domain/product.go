package domain

// Product is the catalog listing view of an item.
type Product struct {
	StacklineSku    string
	Title           string
	CategoryName    string
	SubCategoryName string
	ImageURLs       []string
}

// PrimaryImage returns the first image URL, or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

// ProductDetail is the detail page view: the listing fields plus feature
// bullets and the retailer SKU.
type ProductDetail struct {
	Product
	FeatureBullets []string
	RetailerSku    string
}

func (p ProductDetail) HasGallery() bool {
	return len(p.ImageURLs) > 1
}
