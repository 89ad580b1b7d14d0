package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

var (
	categoryRepo  *repo.InMemoryCategoryRepository
	productRepo   *repo.InMemoryProductRepository
	variationRepo *repo.InMemoryVariationRepository
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	variationRepo = repo.NewInMemoryVariationRepository()
	productRepo = repo.NewInMemoryProductRepository(categoryRepo, variationRepo)
	handler.SetCatalog(catalog.NewService(categoryRepo, productRepo, variationRepo))
}

func clearAll() {
	productRepo.Clear()
	variationRepo.Clear()
	categoryRepo.Clear()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCategory(r http.Handler, in catalog.CreateCategoryInput) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/categories", in)
}

func createProduct(r http.Handler, in catalog.CreateProductInput) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", in)
}

func createVariation(r http.Handler, in catalog.CreateVariationInput) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/variations", in)
}

func decodeBody[T any](w *httptest.ResponseRecorder) (T, error) {
	var out T
	err := json.NewDecoder(w.Body).Decode(&out)
	if err != nil {
		return out, fmt.Errorf("decoding response body: %w", err)
	}
	return out, nil
}
