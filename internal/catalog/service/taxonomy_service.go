package service

import (
	"context"

	"go.uber.org/zap"
)

const (
	categoriesKey    = "categories"
	subCategoriesKey = "subcategories:"
)

type CatalogAPI interface {
	Categories(ctx context.Context) ([]string, error)
	SubCategories(ctx context.Context, category string) ([]string, error)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]string, bool, error)
	Set(ctx context.Context, key string, values []string) error
}

// TaxonomyService serves the category and sub-category option lists,
// going to the catalog API only on a cache miss.
type TaxonomyService struct {
	api    CatalogAPI
	cache  Cache
	logger *zap.Logger
}

func NewTaxonomyService(api CatalogAPI, cache Cache, logger *zap.Logger) *TaxonomyService {
	return &TaxonomyService{
		api:    api,
		cache:  cache,
		logger: logger,
	}
}

func (s *TaxonomyService) Categories(ctx context.Context) ([]string, error) {
	return s.cached(ctx, categoriesKey, s.api.Categories)
}

// SubCategories returns nil without calling the API when no category is
// selected.
func (s *TaxonomyService) SubCategories(ctx context.Context, category string) ([]string, error) {
	if category == "" {
		return nil, nil
	}
	return s.cached(ctx, subCategoriesKey+category, func(ctx context.Context) ([]string, error) {
		return s.api.SubCategories(ctx, category)
	})
}

func (s *TaxonomyService) cached(ctx context.Context, key string, fetch func(context.Context) ([]string, error)) ([]string, error) {
	values, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("taxonomy cache read failed", zap.String("key", key), zap.Error(err))
	}
	if ok {
		return values, nil
	}

	values, err = fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, values); err != nil {
		s.logger.Warn("taxonomy cache write failed", zap.String("key", key), zap.Error(err))
	}
	return values, nil
}
