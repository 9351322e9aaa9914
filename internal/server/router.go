package server

import (
	"net/http"
	"time"

	"stackshop/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type CatalogHandler interface {
	HandleCatalog(w http.ResponseWriter, r *http.Request)
}

type ProductHandler interface {
	HandleProduct(w http.ResponseWriter, r *http.Request)
}

func NewRouter(catalogCtrl CatalogHandler, productCtrl ProductHandler, requestTimeout time.Duration, logger *zap.Logger) http.Handler {
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(httpx.RequestID)
	r.Use(AccessLog(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", catalogCtrl.HandleCatalog)
	r.Get("/product", productCtrl.HandleProduct)

	return r
}
