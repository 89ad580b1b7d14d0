package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
)

// CreateCategoryHandler godoc
// @Summary Create a new category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body catalog.CreateCategoryInput true "Category to add"
// @Success 201 {object} models.Category
// @Failure 400 {array} catalog.FieldError
// @Router /categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var in catalog.CreateCategoryInput
	if err := readJSON(w, r, &in); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	created, err := catalogSvc.CreateCategory(in)
	if err != nil {
		writeCatalogError(w, err, "could not create category")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetCategoriesHandler godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {string} string "Internal error"
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := catalogSvc.Categories()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// UpdateCategoryHandler godoc
// @Summary Update a category
// @Description Applies only the fields present in the payload
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body catalog.CategoryPatch true "Fields to change"
// @Success 200 {object} models.Category
// @Failure 400 {array} catalog.FieldError
// @Failure 404 {string} string "Not found"
// @Router /categories/{id} [put]
func UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	var patch catalog.CategoryPatch
	if err := readJSON(w, r, &patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, err := catalogSvc.UpdateCategory(id, patch)
	if err != nil {
		writeCatalogError(w, err, "could not update category")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Description Idempotent; deleting an unknown id succeeds. Products keep existing, their link to this category is resolved as absent from then on.
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 500 {string} string "Internal error"
// @Router /categories/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	if err := catalogSvc.DeleteCategory(id); err != nil {
		http.Error(w, "could not delete category", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
