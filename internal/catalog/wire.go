package catalog

import (
	"stackshop/internal/catalog/controller"
	"stackshop/internal/catalog/service"
	"stackshop/internal/catalog/usecase"
	"stackshop/internal/infrastructure/cache"
	"stackshop/internal/infrastructure/catalogapi"
	"stackshop/internal/web"

	"go.uber.org/zap"
)

func NewUseCase(api *catalogapi.Client, store cache.Store, logger *zap.Logger) *usecase.BrowseCatalogUseCase {
	taxonomy := service.NewTaxonomyService(api, store, logger)
	return usecase.NewBrowseCatalogUseCase(taxonomy, api, logger)
}

func NewModule(api *catalogapi.Client, store cache.Store, renderer *web.Renderer, logger *zap.Logger) *controller.CatalogController {
	return controller.NewCatalogController(NewUseCase(api, store, logger), renderer, logger)
}
