package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/product-catalog/docs"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Post("/categories", handlers.CreateCategoryHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Put("/categories/{id}", handlers.UpdateCategoryHandler)
	r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

	r.Post("/products", handlers.CreateProductHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Put("/products/{id}", handlers.UpdateProductHandler)
	r.Delete("/products/{id}", handlers.DeleteProductHandler)
	r.Get("/products/{id}/variations", handlers.GetProductVariationsHandler)

	r.Post("/variations", handlers.CreateProductVariationHandler)
	r.Put("/variations/{id}", handlers.UpdateProductVariationHandler)
	r.Delete("/variations/{id}", handlers.DeleteProductVariationHandler)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
