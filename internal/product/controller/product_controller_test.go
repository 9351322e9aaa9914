package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stackshop/internal/domain"
	apperrors "stackshop/internal/errors"
	"stackshop/internal/httpx"
	"stackshop/internal/web"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockLoadProductUseCase struct {
	LoadFunc func(ctx context.Context, id string) (*domain.ProductDetail, error)
	ids      []string
}

func (m *mockLoadProductUseCase) Load(ctx context.Context, id string) (*domain.ProductDetail, error) {
	m.ids = append(m.ids, id)
	return m.LoadFunc(ctx, id)
}

func lamp() *domain.ProductDetail {
	return &domain.ProductDetail{
		Product: domain.Product{
			StacklineSku:    "SKU1",
			Title:           "Desk Lamp",
			CategoryName:    "Home",
			SubCategoryName: "Lighting",
			ImageURLs:       []string{"https://img.test/a.jpg", "https://img.test/b.jpg", "https://img.test/c.jpg"},
		},
		FeatureBullets: []string{"Bright", "Adjustable"},
		RetailerSku:    "R-100",
	}
}

func loading(product *domain.ProductDetail, err error) *mockLoadProductUseCase {
	return &mockLoadProductUseCase{
		LoadFunc: func(ctx context.Context, id string) (*domain.ProductDetail, error) {
			return product, err
		},
	}
}

func newTestController(t *testing.T, uc LoadProductUseCase) *ProductController {
	t.Helper()
	renderer, err := web.NewRenderer(zap.NewNop())
	require.NoError(t, err)
	return NewProductController(uc, renderer, zap.NewNop())
}

func serve(t *testing.T, c *ProductController, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	rec := httptest.NewRecorder()
	c.HandleProduct(rec, httptest.NewRequest(http.MethodGet, target, nil))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func TestHandleProduct_RendersDetail(t *testing.T) {
	uc := loading(lamp(), nil)
	c := newTestController(t, uc)

	rec, doc := serve(t, c, "/product?id=SKU1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"SKU1"}, uc.ids)
	assert.Equal(t, "Desk Lamp", doc.Find("h1.title").Text())
	assert.Equal(t, "SKU: R-100", doc.Find(".sku").Text())
	assert.Equal(t, "Features", doc.Find(".features h2").Text())
	assert.Equal(t, 2, doc.Find(".features li").Length())
	assert.Equal(t, "Home", doc.Find(".badges .badge").First().Text())

	src, _ := doc.Find(".main-image img").Attr("src")
	assert.Equal(t, "https://img.test/a.jpg", src)
	assert.Equal(t, 3, doc.Find(".thumbnail").Length())
	assert.True(t, doc.Find(".thumbnail").First().HasClass("selected"))

	link, _ := doc.Find(".thumbnail").Eq(2).Attr("href")
	assert.Equal(t, "/product?id=SKU1&image=2", link)

	back, _ := doc.Find("a.back").Attr("href")
	assert.Equal(t, "/", back)
}

func TestHandleProduct_SelectsImage(t *testing.T) {
	c := newTestController(t, loading(lamp(), nil))

	_, doc := serve(t, c, "/product?id=SKU1&image=1")

	src, _ := doc.Find(".main-image img").Attr("src")
	assert.Equal(t, "https://img.test/b.jpg", src)
	assert.True(t, doc.Find(".thumbnail").Eq(1).HasClass("selected"))
	assert.Equal(t, 1, doc.Find(".thumbnail.selected").Length())
}

func TestHandleProduct_ClampsImageIndex(t *testing.T) {
	tests := []struct {
		image string
		want  string
	}{
		{image: "9", want: "https://img.test/c.jpg"},
		{image: "-3", want: "https://img.test/a.jpg"},
		{image: "abc", want: "https://img.test/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.image, func(t *testing.T) {
			c := newTestController(t, loading(lamp(), nil))

			rec, doc := serve(t, c, "/product?id=SKU1&image="+tt.image)

			assert.Equal(t, http.StatusOK, rec.Code)
			src, _ := doc.Find(".main-image img").Attr("src")
			assert.Equal(t, tt.want, src)
		})
	}
}

func TestHandleProduct_SingleImageHasNoThumbnails(t *testing.T) {
	product := lamp()
	product.ImageURLs = product.ImageURLs[:1]
	product.FeatureBullets = nil
	c := newTestController(t, loading(product, nil))

	_, doc := serve(t, c, "/product?id=SKU1")

	assert.Equal(t, 0, doc.Find(".thumbnails").Length())
	assert.Equal(t, 0, doc.Find(".features").Length())
	assert.Equal(t, 1, doc.Find(".main-image img").Length())
}

func TestHandleProduct_NoImages(t *testing.T) {
	product := lamp()
	product.ImageURLs = nil
	c := newTestController(t, loading(product, nil))

	rec, doc := serve(t, c, "/product?id=SKU1&image=2")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, doc.Find(".main-image img").Length())
}

func TestHandleProduct_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
		logged bool
	}{
		{name: "missing id", target: "/product", err: apperrors.NewNotFoundError("product id is required"), status: http.StatusNotFound},
		{name: "upstream 404", target: "/product?id=nope", err: apperrors.NewNotFoundError("not found"), status: http.StatusNotFound, logged: true},
		{name: "upstream 500", target: "/product?id=SKU1", err: apperrors.NewUpstreamError(500, "catalog api error"), status: http.StatusNotFound, logged: true},
		{name: "unreachable", target: "/product?id=SKU1", err: errors.New("connection refused"), status: http.StatusBadGateway, logged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			renderer, err := web.NewRenderer(zap.NewNop())
			require.NoError(t, err)
			c := NewProductController(loading(nil, tt.err), renderer, zap.New(core))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = req.WithContext(httpx.WithRequestID(req.Context(), "rid-9"))
			rec := httptest.NewRecorder()
			c.HandleProduct(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
			require.NoError(t, err)
			assert.Equal(t, "Product not found", doc.Find(".not-found").Text())
			back, _ := doc.Find("a.back").Attr("href")
			assert.Equal(t, "/", back)

			errorLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
			if !tt.logged {
				assert.Empty(t, errorLogs)
				return
			}
			require.Len(t, errorLogs, 1)
			fields := errorLogs[0].ContextMap()
			assert.Equal(t, "rid-9", fields["traceId"])
			assert.NotEmpty(t, fields["id"])
		})
	}
}
