package handlers_test_suite

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	"github.com/rogerio-castellano/product-catalog/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createCategory(r, catalog.CreateCategoryInput{Name: "Electronics"})
	category, err := decodeBody[models.Category](w)
	if err != nil {
		t.Fatal(err)
	}

	w = createProduct(r, catalog.CreateProductInput{
		Name:        "Phone",
		ImageURL:    strPtr("https://example.com/phone.png"),
		CategoryIDs: []int{category.ID},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	resp, err := decodeBody[models.ProductWithRelations](w)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Name != "Phone" {
		t.Errorf("expected name 'Phone', got %q", resp.Name)
	}
	if len(resp.Categories) != 1 || resp.Categories[0].ID != category.ID {
		t.Errorf("expected linked category, got %+v", resp.Categories)
	}
	if resp.Variations == nil || len(resp.Variations) != 0 {
		t.Errorf("expected empty variations array, got %v", resp.Variations)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        catalog.CreateProductInput
		expectedErrors []string
	}{
		{
			name:           "Empty name",
			payload:        catalog.CreateProductInput{Name: ""},
			expectedErrors: []string{"name"},
		},
		{
			name:           "Bad image URL",
			payload:        catalog.CreateProductInput{Name: "Phone", ImageURL: strPtr("not a url")},
			expectedErrors: []string{"image_url"},
		},
		{
			name:           "Both invalid",
			payload:        catalog.CreateProductInput{Name: " ", ImageURL: strPtr("nope")},
			expectedErrors: []string{"name", "image_url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			fields, err := decodeBody[[]catalog.FieldError](w)
			if err != nil {
				t.Fatal(err)
			}
			for _, field := range tt.expectedErrors {
				found := false
				for _, fe := range fields {
					if strings.EqualFold(fe.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found in %+v", field, fields)
				}
			}
		})
	}
}

func TestCreateProductHandler_UnknownCategoryIsAtomic(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, catalog.CreateProductInput{Name: "Phone", CategoryIDs: []int{42}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "42") {
		t.Errorf("expected the offending id in the body, got %q", w.Body.String())
	}

	// The failed creation must not leave a product behind.
	w = doJSON(r, http.MethodGet, "/products", nil)
	products, err := decodeBody[[]models.ProductWithRelations](w)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Errorf("expected no products, got %d", len(products))
	}
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	createProduct(r, catalog.CreateProductInput{Name: "Phone"})
	createProduct(r, catalog.CreateProductInput{Name: "Tablet"})

	w := doJSON(r, http.MethodGet, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	products, err := decodeBody[[]models.ProductWithRelations](w)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Phone" || products[1].Name != "Tablet" {
		t.Errorf("expected insertion order, got %+v", products)
	}
}

func TestGetProductByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/products/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/products/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-numeric id, got %d", w.Code)
	}
}

func TestUpdateProductHandler_CategoryReplacement(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createCategory(r, catalog.CreateCategoryInput{Name: "Electronics"})
	c1, _ := decodeBody[models.Category](w)
	w = createCategory(r, catalog.CreateCategoryInput{Name: "Sale"})
	c2, _ := decodeBody[models.Category](w)

	w = createProduct(r, catalog.CreateProductInput{Name: "Phone", CategoryIDs: []int{c1.ID}})
	product, err := decodeBody[models.ProductWithRelations](w)
	if err != nil {
		t.Fatal(err)
	}

	// Replacement: the new set wins wholesale.
	w = doRaw(r, http.MethodPut, fmt.Sprintf("/products/%d", product.ID),
		fmt.Sprintf(`{"category_ids": [%d]}`, c2.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	updated, err := decodeBody[models.ProductWithRelations](w)
	if err != nil {
		t.Fatal(err)
	}
	if len(updated.Categories) != 1 || updated.Categories[0].ID != c2.ID {
		t.Errorf("expected categories replaced with [Sale], got %+v", updated.Categories)
	}

	// An explicit empty array clears the set.
	w = doRaw(r, http.MethodPut, fmt.Sprintf("/products/%d", product.ID), `{"category_ids": []}`)
	updated, err = decodeBody[models.ProductWithRelations](w)
	if err != nil {
		t.Fatal(err)
	}
	if len(updated.Categories) != 0 {
		t.Errorf("expected categories cleared, got %+v", updated.Categories)
	}

	// Omitting category_ids leaves the set untouched.
	w = doRaw(r, http.MethodPut, fmt.Sprintf("/products/%d", product.ID),
		fmt.Sprintf(`{"category_ids": [%d]}`, c1.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	w = doRaw(r, http.MethodPut, fmt.Sprintf("/products/%d", product.ID), `{"name": "Phone X"}`)
	updated, err = decodeBody[models.ProductWithRelations](w)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Phone X" {
		t.Errorf("expected renamed product, got %q", updated.Name)
	}
	if len(updated.Categories) != 1 || updated.Categories[0].ID != c1.ID {
		t.Errorf("expected category set untouched, got %+v", updated.Categories)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRaw(r, http.MethodPut, "/products/999", `{"name": "X"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler_CascadesAndIsIdempotent(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, catalog.CreateProductInput{Name: "Phone"})
	product, err := decodeBody[models.ProductWithRelations](w)
	if err != nil {
		t.Fatal(err)
	}
	createVariation(r, catalog.CreateVariationInput{
		ProductID: product.ID, VariationName: "Black", UnitPrice: 1, WholesalePrice: 1, StockQuantity: 1,
	})

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 on repeated delete, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d/variations", product.ID), nil)
	variations, err := decodeBody[[]models.ProductVariation](w)
	if err != nil {
		t.Fatal(err)
	}
	if len(variations) != 0 {
		t.Errorf("expected cascaded variation delete, got %d", len(variations))
	}
}
