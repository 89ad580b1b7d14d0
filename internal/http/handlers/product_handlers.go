package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product, optionally linked to existing categories. A category id that does not exist fails the whole request and nothing is stored.
// @Tags products
// @Accept json
// @Produce json
// @Param product body catalog.CreateProductInput true "Product to add"
// @Success 201 {object} models.ProductWithRelations
// @Failure 400 {array} catalog.FieldError
// @Failure 404 {string} string "Referenced category not found"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var in catalog.CreateProductInput
	if err := readJSON(w, r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	created, err := catalogSvc.CreateProduct(in)
	if err != nil {
		writeCatalogError(w, err, "could not create product")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetProductsHandler godoc
// @Summary List all products with their categories and variations
// @Tags products
// @Produce json
// @Success 200 {array} models.ProductWithRelations
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogSvc.Products()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID with its categories and variations
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ProductWithRelations
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := catalogSvc.Product(id)
	if err != nil {
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Applies only the fields present in the payload. Providing category_ids replaces the whole category set (an empty array clears it); omitting it leaves associations untouched. The variations list in the response is always empty; query it separately.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body catalog.ProductPatch true "Fields to change"
// @Success 200 {object} models.ProductWithRelations
// @Failure 400 {array} catalog.FieldError
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var patch catalog.ProductPatch
	if err := readJSON(w, r, &patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, err := catalogSvc.UpdateProduct(id, patch)
	if err != nil {
		writeCatalogError(w, err, "could not update product")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Removes the product with all of its variations and category links. Idempotent; deleting an unknown id succeeds.
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := catalogSvc.DeleteProduct(id); err != nil {
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
