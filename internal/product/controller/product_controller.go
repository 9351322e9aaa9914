package controller

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"stackshop/internal/domain"
	"stackshop/internal/dto"
	apperrors "stackshop/internal/errors"
	"stackshop/internal/httpx"
	"stackshop/internal/web"

	"go.uber.org/zap"
)

type LoadProductUseCase interface {
	Load(ctx context.Context, id string) (*domain.ProductDetail, error)
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any)
}

type ProductController struct {
	useCase  LoadProductUseCase
	renderer Renderer
	logger   *zap.Logger
}

func NewProductController(useCase LoadProductUseCase, renderer Renderer, logger *zap.Logger) *ProductController {
	return &ProductController{
		useCase:  useCase,
		renderer: renderer,
		logger:   logger,
	}
}

// HandleProduct serves GET /product?id=<sku>&image=<index>.
func (c *ProductController) HandleProduct(w http.ResponseWriter, r *http.Request) {
	traceID := httpx.TraceID(r.Context())
	logger := c.logger.With(zap.String("traceId", traceID))

	q := r.URL.Query()
	id := q.Get("id")

	product, err := c.useCase.Load(r.Context(), id)
	if err != nil {
		c.handleLoadError(w, id, err, logger)
		return
	}

	var gallery domain.Gallery
	if k, err := strconv.Atoi(q.Get("image")); err == nil {
		gallery.Selected = k
	}
	gallery.Clamp(len(product.ImageURLs))

	c.renderer.Render(w, http.StatusOK, web.PageProduct, buildView(id, product, gallery))
}

func (c *ProductController) handleLoadError(w http.ResponseWriter, id string, err error, logger *zap.Logger) {
	if id == "" {
		c.renderer.Render(w, http.StatusNotFound, web.PageNotFound, nil)
		return
	}

	logger.Error("failed to load product", zap.String("id", id), zap.Error(err))

	_, notFound := apperrors.IsNotFoundError(err)
	_, upstream := apperrors.IsUpstreamError(err)
	if notFound || upstream {
		c.renderer.Render(w, http.StatusNotFound, web.PageNotFound, nil)
		return
	}

	c.renderer.Render(w, http.StatusBadGateway, web.PageNotFound, nil)
}

func buildView(id string, product *domain.ProductDetail, gallery domain.Gallery) dto.ProductPageView {
	view := dto.ProductPageView{
		Product:   product,
		MainImage: gallery.Current(product.ImageURLs),
	}

	if !product.HasGallery() {
		return view
	}

	view.Thumbnails = make([]dto.Thumbnail, 0, len(product.ImageURLs))
	for i, u := range product.ImageURLs {
		view.Thumbnails = append(view.Thumbnails, dto.Thumbnail{
			Index:    i,
			Label:    i + 1,
			URL:      u,
			LinkURL:  imageURL(id, i),
			Selected: i == gallery.Selected,
		})
	}
	return view
}

func imageURL(id string, index int) string {
	v := url.Values{}
	v.Set("id", id)
	v.Set("image", strconv.Itoa(index))
	return "/product?" + v.Encode()
}
