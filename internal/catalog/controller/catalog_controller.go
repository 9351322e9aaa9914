package controller

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"stackshop/internal/domain"
	"stackshop/internal/dto"
	"stackshop/internal/httpx"
	"stackshop/internal/web"

	"go.uber.org/zap"
)

const productsUnavailable = "Unable to load products"

type BrowseCatalogUseCase interface {
	Browse(ctx context.Context, state domain.CatalogState) (*dto.CatalogListing, error)
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any)
}

type CatalogController struct {
	useCase  BrowseCatalogUseCase
	renderer Renderer
	logger   *zap.Logger
}

func NewCatalogController(useCase BrowseCatalogUseCase, renderer Renderer, logger *zap.Logger) *CatalogController {
	return &CatalogController{
		useCase:  useCase,
		renderer: renderer,
		logger:   logger,
	}
}

// HandleCatalog serves GET /. Filter and Previous actions are applied before
// fetching and answered with a redirect to the canonical URL. Next and goto
// depend on the product total, so they are validated after the fetch, and a
// page past the last one is redirected onto it.
func (c *CatalogController) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	traceID := httpx.TraceID(r.Context())
	logger := c.logger.With(zap.String("traceId", traceID))

	q := r.URL.Query()
	state := parseState(q)

	if applyPreFetchActions(&state, q) {
		c.redirect(w, r, state)
		return
	}

	listing, err := c.useCase.Browse(r.Context(), state)
	if err != nil {
		logger.Error("failed to load catalog", zap.Error(err))
		c.renderer.Render(w, http.StatusBadGateway, web.PageCatalog, c.errorView(state))
		return
	}

	if q.Get(paramAction) == actionNext && state.Next(listing.Total) {
		c.redirect(w, r, state)
		return
	}

	if q.Has(paramGoto) {
		err := state.JumpTo(q.Get(paramGoto), listing.Total)
		if err == nil {
			c.redirect(w, r, state)
			return
		}
		logger.Info("rejected page input", zap.Error(err))
	}

	if state.ClampPage(listing.Total) {
		logger.Info("page out of range", zap.Int("total", listing.Total))
		c.redirect(w, r, state)
		return
	}

	c.renderer.Render(w, http.StatusOK, web.PageCatalog, buildView(listing))
}

// applyPreFetchActions applies set.* and the clear/previous actions. It
// returns true when the request carried any of them, so the caller can answer
// with the canonical URL.
func applyPreFetchActions(state *domain.CatalogState, q url.Values) bool {
	handled := false

	// A sub-category without a category is not a valid state.
	if state.Filter.Category == "" && state.SelectSubCategory("") {
		handled = true
	}

	if q.Has(paramSetSearch) {
		state.SetSearch(q.Get(paramSetSearch))
		handled = true
	}

	categoryChanged := false
	if q.Has(paramSetCategory) {
		categoryChanged = state.SelectCategory(q.Get(paramSetCategory))
		handled = true
	}

	if q.Has(paramSetSubCategory) {
		if !categoryChanged {
			state.SelectSubCategory(q.Get(paramSetSubCategory))
		}
		handled = true
	}

	switch q.Get(paramAction) {
	case actionClear:
		state.ClearFilters()
		handled = true
	case actionPrevious:
		state.Previous()
		handled = true
	}

	return handled
}

func (c *CatalogController) redirect(w http.ResponseWriter, r *http.Request, state domain.CatalogState) {
	http.Redirect(w, r, catalogURL(state), http.StatusSeeOther)
}

func (c *CatalogController) errorView(state domain.CatalogState) dto.CatalogPageView {
	return dto.CatalogPageView{
		Listing:          dto.CatalogListing{State: state},
		ShowClearFilters: state.Filter.Active(),
		ClearURL:         clearedURL(state),
		PageNumber:       state.Page + 1,
		PageInput:        strconv.Itoa(state.Page + 1),
		Error:            productsUnavailable,
	}
}

func buildView(listing *dto.CatalogListing) dto.CatalogPageView {
	state := listing.State
	p := state.Pagination(listing.Total)
	first, last := p.Range(len(listing.Products))

	cards := make([]dto.ProductCard, 0, len(listing.Products))
	for _, product := range listing.Products {
		cards = append(cards, dto.ProductCard{
			Product:   product,
			DetailURL: productURL(product.StacklineSku),
			ImageURL:  product.PrimaryImage(),
		})
	}

	prev, next := state, state
	prev.Previous()
	next.Next(listing.Total)

	return dto.CatalogPageView{
		Listing:           *listing,
		ShowSubCategories: state.Filter.Category != "" && len(listing.SubCategories) > 0,
		ShowClearFilters:  state.Filter.Active(),
		ClearURL:          clearedURL(state),
		RangeFirst:        first,
		RangeLast:         last,
		PageNumber:        state.Page + 1,
		TotalPages:        p.TotalPages(),
		PageInput:         strconv.Itoa(state.Page + 1),
		PrevURL:           catalogURL(prev),
		NextURL:           catalogURL(next),
		HasPrevious:       p.HasPrevious(),
		HasNext:           p.HasNext(),
		Cards:             cards,
	}
}

func clearedURL(state domain.CatalogState) string {
	state.ClearFilters()
	return catalogURL(state)
}
