package dto

import "stackshop/internal/domain"

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type SubCategoriesResponse struct {
	SubCategories []string `json:"subCategories"`
}

type ProductsResponse struct {
	Products []ProductDTO `json:"products"`
	Total    int          `json:"total"`
}

type ProductDTO struct {
	StacklineSku    string   `json:"stacklineSku"`
	Title           string   `json:"title"`
	CategoryName    string   `json:"categoryName"`
	SubCategoryName string   `json:"subCategoryName"`
	ImageURLs       []string `json:"imageUrls"`
}

type ProductDetailResponse struct {
	ProductDTO
	FeatureBullets []string `json:"featureBullets"`
	RetailerSku    string   `json:"retailerSku"`
}

func (p ProductDTO) ToDomain() domain.Product {
	return domain.Product{
		StacklineSku:    p.StacklineSku,
		Title:           p.Title,
		CategoryName:    p.CategoryName,
		SubCategoryName: p.SubCategoryName,
		ImageURLs:       p.ImageURLs,
	}
}

func (r ProductsResponse) DomainProducts() []domain.Product {
	products := make([]domain.Product, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, p.ToDomain())
	}
	return products
}

func (r ProductDetailResponse) ToDomain() *domain.ProductDetail {
	return &domain.ProductDetail{
		Product:        r.ProductDTO.ToDomain(),
		FeatureBullets: r.FeatureBullets,
		RetailerSku:    r.RetailerSku,
	}
}
