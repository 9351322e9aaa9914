package usecase

import (
	"context"
	"strings"

	"stackshop/internal/domain"
	apperrors "stackshop/internal/errors"
)

type ProductSource interface {
	Product(ctx context.Context, id string) (*domain.ProductDetail, error)
}

type LoadProductUseCase struct {
	source ProductSource
}

func NewLoadProductUseCase(source ProductSource) *LoadProductUseCase {
	return &LoadProductUseCase{source: source}
}

// Load fetches one product by SKU. A blank id is reported as not found
// without calling the catalog.
func (uc *LoadProductUseCase) Load(ctx context.Context, id string) (*domain.ProductDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewNotFoundError("product id is required")
	}
	return uc.source.Product(ctx, id)
}
