package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"stackshop/internal/domain"
	"stackshop/internal/dto"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mockTaxonomyService struct {
	CategoriesFunc    func(ctx context.Context) ([]string, error)
	SubCategoriesFunc func(ctx context.Context, category string) ([]string, error)
}

func (m *mockTaxonomyService) Categories(ctx context.Context) ([]string, error) {
	return m.CategoriesFunc(ctx)
}

func (m *mockTaxonomyService) SubCategories(ctx context.Context, category string) ([]string, error) {
	return m.SubCategoriesFunc(ctx, category)
}

type mockProductSource struct {
	ProductsFunc func(ctx context.Context, q domain.ProductQuery) (*dto.ProductsResponse, error)
}

func (m *mockProductSource) Products(ctx context.Context, q domain.ProductQuery) (*dto.ProductsResponse, error) {
	return m.ProductsFunc(ctx, q)
}

func defaultTaxonomy() *mockTaxonomyService {
	return &mockTaxonomyService{
		CategoriesFunc: func(ctx context.Context) ([]string, error) {
			return []string{"Home", "Toys"}, nil
		},
		SubCategoriesFunc: func(ctx context.Context, category string) ([]string, error) {
			return []string{"Lighting"}, nil
		},
	}
}

func TestBrowse_LoadsListing(t *testing.T) {
	var gotQuery domain.ProductQuery
	products := &mockProductSource{
		ProductsFunc: func(ctx context.Context, q domain.ProductQuery) (*dto.ProductsResponse, error) {
			gotQuery = q
			return &dto.ProductsResponse{
				Products: []dto.ProductDTO{{StacklineSku: "SKU1", Title: "Desk Lamp"}},
				Total:    41,
			}, nil
		},
	}
	uc := NewBrowseCatalogUseCase(defaultTaxonomy(), products, zap.NewNop())

	state := domain.CatalogState{Filter: domain.Filter{Search: "lamp", Category: "Home"}, Page: 2}
	listing, err := uc.Browse(context.Background(), state)
	require.NoError(t, err)

	want := &dto.CatalogListing{
		State:         state,
		Categories:    []string{"Home", "Toys"},
		SubCategories: []string{"Lighting"},
		Products:      []domain.Product{{StacklineSku: "SKU1", Title: "Desk Lamp"}},
		Total:         41,
	}
	if diff := cmp.Diff(want, listing); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, domain.ProductQuery{Search: "lamp", Category: "Home", Limit: 20, Offset: 40}, gotQuery)
}

func TestBrowse_NoCategorySkipsSubCategories(t *testing.T) {
	taxonomy := defaultTaxonomy()
	taxonomy.SubCategoriesFunc = func(ctx context.Context, category string) ([]string, error) {
		t.Error("subcategories must not be fetched without a category")
		return nil, nil
	}
	products := &mockProductSource{
		ProductsFunc: func(ctx context.Context, q domain.ProductQuery) (*dto.ProductsResponse, error) {
			return &dto.ProductsResponse{}, nil
		},
	}
	uc := NewBrowseCatalogUseCase(taxonomy, products, zap.NewNop())

	listing, err := uc.Browse(context.Background(), domain.CatalogState{})
	require.NoError(t, err)
	assert.Nil(t, listing.SubCategories)
	assert.Empty(t, listing.Products)
}

func TestBrowse_TaxonomyFailureDegrades(t *testing.T) {
	taxonomy := &mockTaxonomyService{
		CategoriesFunc: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("categories down")
		},
		SubCategoriesFunc: func(ctx context.Context, category string) ([]string, error) {
			return nil, errors.New("subcategories down")
		},
	}
	products := &mockProductSource{
		ProductsFunc: func(ctx context.Context, q domain.ProductQuery) (*dto.ProductsResponse, error) {
			return &dto.ProductsResponse{Products: []dto.ProductDTO{{StacklineSku: "SKU1"}}, Total: 1}, nil
		},
	}
	uc := NewBrowseCatalogUseCase(taxonomy, products, zap.NewNop())

	listing, err := uc.Browse(context.Background(), domain.CatalogState{Filter: domain.Filter{Category: "Home"}})
	require.NoError(t, err)
	assert.Empty(t, listing.Categories)
	assert.Empty(t, listing.SubCategories)
	assert.Equal(t, 1, listing.Total)
}

func TestBrowse_ProductsFailure(t *testing.T) {
	products := &mockProductSource{
		ProductsFunc: func(ctx context.Context, q domain.ProductQuery) (*dto.ProductsResponse, error) {
			return nil, errors.New("upstream down")
		},
	}
	uc := NewBrowseCatalogUseCase(defaultTaxonomy(), products, zap.NewNop())

	listing, err := uc.Browse(context.Background(), domain.CatalogState{})
	assert.Nil(t, listing)
	assert.ErrorContains(t, err, "loading products")
}

func TestBrowse_FetchesConcurrently(t *testing.T) {
	// Both taxonomy calls and the products call must be in flight together.
	var ready sync.WaitGroup
	ready.Add(3)
	release := make(chan struct{})
	go func() {
		ready.Wait()
		close(release)
	}()

	wait := func() {
		ready.Done()
		<-release
	}

	taxonomy := &mockTaxonomyService{
		CategoriesFunc: func(ctx context.Context) ([]string, error) {
			wait()
			return []string{"Home"}, nil
		},
		SubCategoriesFunc: func(ctx context.Context, category string) ([]string, error) {
			wait()
			return []string{"Lighting"}, nil
		},
	}
	products := &mockProductSource{
		ProductsFunc: func(ctx context.Context, q domain.ProductQuery) (*dto.ProductsResponse, error) {
			wait()
			return &dto.ProductsResponse{Total: 0}, nil
		},
	}
	uc := NewBrowseCatalogUseCase(taxonomy, products, zap.NewNop())

	listing, err := uc.Browse(context.Background(), domain.CatalogState{Filter: domain.Filter{Category: "Home"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Home"}, listing.Categories)
	assert.Equal(t, []string{"Lighting"}, listing.SubCategories)
}
