package handlers_test_suite

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	"github.com/rogerio-castellano/product-catalog/internal/models"
)

func TestCreateCategoryHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	desc := "electronic gadgets"
	w := createCategory(r, catalog.CreateCategoryInput{Name: "Electronics", Description: &desc})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	resp, err := decodeBody[models.Category](w)
	if err != nil {
		t.Fatal(err)
	}
	if resp.ID == 0 {
		t.Error("expected a server-assigned id")
	}
	if resp.Name != "Electronics" {
		t.Errorf("expected name 'Electronics', got %q", resp.Name)
	}
	if resp.Description == nil || *resp.Description != desc {
		t.Errorf("expected description %q, got %v", desc, resp.Description)
	}
	if resp.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestCreateCategoryHandler_EmptyName(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createCategory(r, catalog.CreateCategoryInput{Name: ""})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	fields, err := decodeBody[[]catalog.FieldError](w)
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 1 || fields[0].Field != "name" {
		t.Errorf("expected a single error on name, got %+v", fields)
	}
}

func TestCreateCategoryHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRaw(r, http.MethodPost, "/categories", `{name: "Invalid"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestGetCategoriesHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	createCategory(r, catalog.CreateCategoryInput{Name: "Electronics"})
	createCategory(r, catalog.CreateCategoryInput{Name: "Furniture"})

	w := doJSON(r, http.MethodGet, "/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	categories, err := decodeBody[[]models.Category](w)
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Name != "Electronics" || categories[1].Name != "Furniture" {
		t.Errorf("expected insertion order, got %+v", categories)
	}
}

func TestUpdateCategoryHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createCategory(r, catalog.CreateCategoryInput{Name: "Electronics"})
	created, err := decodeBody[models.Category](w)
	if err != nil {
		t.Fatal(err)
	}

	w = doRaw(r, http.MethodPut, fmt.Sprintf("/categories/%d", created.ID), `{"name": "Gadgets"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	updated, err := decodeBody[models.Category](w)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Gadgets" {
		t.Errorf("expected renamed category, got %q", updated.Name)
	}
}

func TestUpdateCategoryHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doRaw(r, http.MethodPut, "/categories/999", `{"name": "Gadgets"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteCategoryHandler_IdempotentAndKeepsProducts(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createCategory(r, catalog.CreateCategoryInput{Name: "Electronics"})
	created, err := decodeBody[models.Category](w)
	if err != nil {
		t.Fatal(err)
	}
	w = createProduct(r, catalog.CreateProductInput{Name: "Phone", CategoryIDs: []int{created.ID}})
	product, err := decodeBody[models.ProductWithRelations](w)
	if err != nil {
		t.Fatal(err)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/categories/%d", created.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	// Deleting again succeeds as well.
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/categories/%d", created.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 on repeated delete, got %d", w.Code)
	}

	// The product survives with its link resolved as absent.
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", product.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected product to survive, got %d", w.Code)
	}
	got, err := decodeBody[models.ProductWithRelations](w)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Categories) != 0 {
		t.Errorf("expected dangling link omitted, got %+v", got.Categories)
	}
}
