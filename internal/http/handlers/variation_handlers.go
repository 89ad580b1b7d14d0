package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
)

// CreateProductVariationHandler godoc
// @Summary Create a product variation
// @Description Adds a variation to an existing product. Fails 404 when the product does not exist.
// @Tags variations
// @Accept json
// @Produce json
// @Param variation body catalog.CreateVariationInput true "Variation to add"
// @Success 201 {object} models.ProductVariation
// @Failure 400 {array} catalog.FieldError
// @Failure 404 {string} string "Product not found"
// @Router /variations [post]
func CreateProductVariationHandler(w http.ResponseWriter, r *http.Request) {
	var in catalog.CreateVariationInput
	if err := readJSON(w, r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	created, err := catalogSvc.CreateVariation(in)
	if err != nil {
		writeCatalogError(w, err, "could not create product variation")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetProductVariationsHandler godoc
// @Summary List the variations of a product
// @Description Returns an empty list both when the product has no variations and when the product does not exist.
// @Tags variations
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} models.ProductVariation
// @Failure 400 {string} string "Invalid ID"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/variations [get]
func GetProductVariationsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	variations, err := catalogSvc.Variations(id)
	if err != nil {
		http.Error(w, "could not fetch product variations", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, variations)
}

// UpdateProductVariationHandler godoc
// @Summary Update a product variation
// @Description Applies only the fields present in the payload; prices pass through the money codec.
// @Tags variations
// @Accept json
// @Produce json
// @Param id path int true "Variation ID"
// @Param variation body catalog.VariationPatch true "Fields to change"
// @Success 200 {object} models.ProductVariation
// @Failure 400 {array} catalog.FieldError
// @Failure 404 {string} string "Not found"
// @Router /variations/{id} [put]
func UpdateProductVariationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid variation ID", http.StatusBadRequest)
		return
	}

	var patch catalog.VariationPatch
	if err := readJSON(w, r, &patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, err := catalogSvc.UpdateVariation(id, patch)
	if err != nil {
		writeCatalogError(w, err, "could not update product variation")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductVariationHandler godoc
// @Summary Delete a product variation
// @Description Idempotent; deleting an unknown id succeeds.
// @Tags variations
// @Param id path int true "Variation ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 500 {string} string "Internal error"
// @Router /variations/{id} [delete]
func DeleteProductVariationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid variation ID", http.StatusBadRequest)
		return
	}

	if err := catalogSvc.DeleteVariation(id); err != nil {
		http.Error(w, "could not delete product variation", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
