package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"stackshop/internal/dto"
)

// FakeCatalogAPI serves the catalog endpoints from an in-memory dataset.
type FakeCatalogAPI struct {
	Server        *httptest.Server
	Categories    []string
	SubCategories []string
	Products      []dto.ProductDetailResponse

	ProductListCalls atomic.Int32
	CategoryCalls    atomic.Int32
}

func NewFakeCatalogAPI(t *testing.T, products []dto.ProductDetailResponse) *FakeCatalogAPI {
	t.Helper()

	f := &FakeCatalogAPI{Products: products}
	seenCat := map[string]bool{}
	seenSub := map[string]bool{}
	for _, p := range products {
		if p.CategoryName != "" && !seenCat[p.CategoryName] {
			seenCat[p.CategoryName] = true
			f.Categories = append(f.Categories, p.CategoryName)
		}
		if p.SubCategoryName != "" && !seenSub[p.SubCategoryName] {
			seenSub[p.SubCategoryName] = true
			f.SubCategories = append(f.SubCategories, p.SubCategoryName)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		f.CategoryCalls.Add(1)
		writeJSON(w, dto.CategoriesResponse{Categories: f.Categories})
	})
	mux.HandleFunc("GET /api/subcategories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, dto.SubCategoriesResponse{SubCategories: f.SubCategories})
	})
	mux.HandleFunc("GET /api/products", f.listProducts)
	mux.HandleFunc("GET /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for _, p := range f.Products {
			if p.StacklineSku == id {
				writeJSON(w, p)
				return
			}
		}
		http.NotFound(w, r)
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeCatalogAPI) URL() string {
	return f.Server.URL
}

func (f *FakeCatalogAPI) listProducts(w http.ResponseWriter, r *http.Request) {
	f.ProductListCalls.Add(1)

	q := r.URL.Query()
	search := strings.ToLower(q.Get("search"))
	category := q.Get("category")
	subCategory := q.Get("subCategory")
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	var matched []dto.ProductDTO
	for _, p := range f.Products {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if category != "" && p.CategoryName != category {
			continue
		}
		if subCategory != "" && p.SubCategoryName != subCategory {
			continue
		}
		matched = append(matched, p.ProductDTO)
	}

	total := len(matched)
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	writeJSON(w, dto.ProductsResponse{Products: matched[offset:end], Total: total})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
