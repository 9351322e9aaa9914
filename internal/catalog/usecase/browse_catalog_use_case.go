package usecase

import (
	"context"
	"fmt"

	"stackshop/internal/domain"
	"stackshop/internal/dto"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TaxonomyService interface {
	Categories(ctx context.Context) ([]string, error)
	SubCategories(ctx context.Context, category string) ([]string, error)
}

type ProductSource interface {
	Products(ctx context.Context, q domain.ProductQuery) (*dto.ProductsResponse, error)
}

type BrowseCatalogUseCase struct {
	taxonomy TaxonomyService
	products ProductSource
	logger   *zap.Logger
}

func NewBrowseCatalogUseCase(taxonomy TaxonomyService, products ProductSource, logger *zap.Logger) *BrowseCatalogUseCase {
	return &BrowseCatalogUseCase{
		taxonomy: taxonomy,
		products: products,
		logger:   logger,
	}
}

// Browse loads everything the catalog page needs for state. Option list
// failures degrade to empty lists; only a products failure is returned.
func (uc *BrowseCatalogUseCase) Browse(ctx context.Context, state domain.CatalogState) (*dto.CatalogListing, error) {
	listing := &dto.CatalogListing{State: state}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		categories, err := uc.taxonomy.Categories(gctx)
		if err != nil {
			uc.logger.Warn("failed to load categories", zap.Error(err))
			return nil
		}
		listing.Categories = categories
		return nil
	})

	if category := state.Filter.Category; category != "" {
		g.Go(func() error {
			subCategories, err := uc.taxonomy.SubCategories(gctx, category)
			if err != nil {
				uc.logger.Warn("failed to load subcategories",
					zap.String("category", category),
					zap.Error(err),
				)
				return nil
			}
			listing.SubCategories = subCategories
			return nil
		})
	}

	g.Go(func() error {
		resp, err := uc.products.Products(gctx, state.ProductQuery())
		if err != nil {
			return fmt.Errorf("loading products: %w", err)
		}
		listing.Products = resp.DomainProducts()
		listing.Total = resp.Total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return listing, nil
}
