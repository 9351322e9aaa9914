package product

import (
	"stackshop/internal/infrastructure/catalogapi"
	"stackshop/internal/product/controller"
	"stackshop/internal/product/usecase"
	"stackshop/internal/web"

	"go.uber.org/zap"
)

func NewUseCase(api *catalogapi.Client) *usecase.LoadProductUseCase {
	return usecase.NewLoadProductUseCase(api)
}

func NewModule(api *catalogapi.Client, renderer *web.Renderer, logger *zap.Logger) *controller.ProductController {
	return controller.NewProductController(NewUseCase(api), renderer, logger)
}
