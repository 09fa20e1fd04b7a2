package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianlopez/vainilla-catalog/internal/core"
	"github.com/julianlopez/vainilla-catalog/pkg/problem"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCatalogServer() (chi.Router, *productRepoFake) {
	repo := newProductRepoFake()
	handler := NewProductHandler(core.NewCatalogService(repo), testLogger())

	r := chi.NewRouter()
	handler.Mount(r)
	return r, repo
}

func doRequest(r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) problem.Problem {
	t.Helper()
	var p problem.Problem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	return p
}

func createProduct(t *testing.T, r chi.Router, payload string) core.Product {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/catalog", payload)
	require.Equal(t, http.StatusOK, w.Code, "create failed: %s", w.Body.String())

	var p core.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	return p
}

func TestCreateProduct_ReturnsNormalized(t *testing.T) {
	r, _ := newCatalogServer()

	w := doRequest(r, http.MethodPost, "/api/catalog",
		`{"title":"Widget Pro","price":19.99,"category":"Tools"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))

	id, ok := got["_id"].(string)
	require.True(t, ok, "_id must be a string, got %T", got["_id"])
	assert.NotEmpty(t, id)
	assert.Equal(t, "Widget Pro", got["title"])
	assert.Equal(t, 19.99, got["price"])
	assert.Equal(t, "tools", got["category"])
}

func TestCreateProduct_ValidationMessages(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"empty body", "", "Product required"},
		{"null body", "null", "Product required"},
		{"invalid json", "{not json", "Product required"},
		{"short title", `{"title":"abcd","price":10,"category":"tools"}`, "Product title not found or too short!"},
		{"missing title", `{"price":10,"category":"tools"}`, "Product title not found or too short!"},
		{"missing price", `{"title":"Widget Pro","category":"tools"}`, "Product price not found!"},
		{"string price", `{"title":"Widget Pro","price":"10","category":"tools"}`, "Price value must be a number"},
		{"zero price", `{"title":"Widget Pro","price":0,"category":"tools"}`, "Price value must be greater than 0"},
		{"negative price", `{"title":"Widget Pro","price":-1,"category":"tools"}`, "Price value must be greater than 0"},
		{"missing category", `{"title":"Widget Pro","price":10}`, "Product category not found!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, repo := newCatalogServer()
			w := doRequest(r, http.MethodPost, "/api/catalog", tt.payload)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, decodeProblem(t, w).Detail)
			assert.Empty(t, repo.products, "no partial write on rejection")
		})
	}
}

func TestCreateProduct_SmallestPositivePrice(t *testing.T) {
	r, _ := newCatalogServer()
	p := createProduct(t, r, `{"title":"Penny Sweet","price":0.01,"category":"grocery"}`)
	assert.Equal(t, 0.01, p.Price)
}

func TestListCatalog_SortedByTitle(t *testing.T) {
	r, _ := newCatalogServer()
	createProduct(t, r, `{"title":"Zoom Lens","price":200,"category":"photo"}`)
	createProduct(t, r, `{"title":"Apple Slicer","price":5,"category":"kitchen"}`)
	createProduct(t, r, `{"title":"Mixer Deluxe","price":50,"category":"kitchen"}`)

	w := doRequest(r, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)

	var products []core.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	require.Len(t, products, 3)
	assert.Equal(t, "Apple Slicer", products[0].Title)
	assert.Equal(t, "Mixer Deluxe", products[1].Title)
	assert.Equal(t, "Zoom Lens", products[2].Title)
}

func TestListCatalog_EmptyIsArray(t *testing.T) {
	r, _ := newCatalogServer()

	w := doRequest(r, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestCountAndTotal(t *testing.T) {
	r, _ := newCatalogServer()

	w := doRequest(r, http.MethodGet, "/api/products/total", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", strings.TrimSpace(w.Body.String()))

	createProduct(t, r, `{"title":"Widget Pro","price":19.99,"category":"tools"}`)
	createProduct(t, r, `{"title":"Gadget Max","price":10.01,"category":"tools"}`)

	w = doRequest(r, http.MethodGet, "/api/products/count", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", strings.TrimSpace(w.Body.String()))

	w = doRequest(r, http.MethodGet, "/api/products/total", "")
	require.Equal(t, http.StatusOK, w.Code)

	var total float64
	require.NoError(t, json.NewDecoder(w.Body).Decode(&total))
	assert.InDelta(t, 30.0, total, 1e-9)
}

func TestCatalogByCategory_MatchesStoredCaseOnly(t *testing.T) {
	r, _ := newCatalogServer()
	createProduct(t, r, `{"title":"Widget Pro","price":19.99,"category":"Tools"}`)

	// Stored lowercase; the filter takes the path parameter as given.
	w := doRequest(r, http.MethodGet, "/api/catalog/tools", "")
	require.Equal(t, http.StatusOK, w.Code)
	var products []core.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	assert.Len(t, products, 1)

	w = doRequest(r, http.MethodGet, "/api/catalog/Tools", "")
	require.Equal(t, http.StatusOK, w.Code)
	products = nil
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	assert.Empty(t, products, "mixed-case query must not match the lowercase stored value")
}

func TestCatalogPriceFilters(t *testing.T) {
	r, _ := newCatalogServer()
	createProduct(t, r, `{"title":"Cheap Thing","price":5,"category":"misc"}`)
	createProduct(t, r, `{"title":"Exact Thing","price":10,"category":"misc"}`)
	createProduct(t, r, `{"title":"Dear Thing","price":15,"category":"misc"}`)

	// lower is strict <
	w := doRequest(r, http.MethodGet, "/api/catalog/lower/10", "")
	require.Equal(t, http.StatusOK, w.Code)
	var products []core.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Cheap Thing", products[0].Title)

	// greater is inclusive >=
	w = doRequest(r, http.MethodGet, "/api/catalog/greater/10", "")
	require.Equal(t, http.StatusOK, w.Code)
	products = nil
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	assert.Len(t, products, 2)

	w = doRequest(r, http.MethodGet, "/api/catalog/lower/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Amount must be a number", decodeProblem(t, w).Detail)
}

func TestUniqueCategories(t *testing.T) {
	r, _ := newCatalogServer()
	createProduct(t, r, `{"title":"Widget Pro","price":19.99,"category":"Tools"}`)
	createProduct(t, r, `{"title":"Gadget Max","price":10,"category":"tools"}`)
	createProduct(t, r, `{"title":"Apple Corer","price":3,"category":"kitchen"}`)

	w := doRequest(r, http.MethodGet, "/api/category/unique", "")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&categories))
	assert.ElementsMatch(t, []string{"tools", "kitchen"}, categories)
}

func TestUpdateProduct(t *testing.T) {
	r, _ := newCatalogServer()
	created := createProduct(t, r, `{"title":"Widget Pro","price":19.99,"category":"tools"}`)

	w := doRequest(r, http.MethodPut, "/api/catalog",
		`{"_id":"`+created.ID+`","price":25,"category":"Hardware"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"Ok"`, strings.TrimSpace(w.Body.String()))

	w = doRequest(r, http.MethodGet, "/api/product/details/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got core.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, 25.0, got.Price)
	assert.Equal(t, "hardware", got.Category)
	assert.Equal(t, "Widget Pro", got.Title, "absent fields stay untouched")
}

func TestUpdateProduct_MissingID(t *testing.T) {
	r, _ := newCatalogServer()

	w := doRequest(r, http.MethodPut, "/api/catalog", `{"price":25}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing product id!", decodeProblem(t, w).Detail)
}

func TestUpdateProduct_UnknownIDStillOk(t *testing.T) {
	r, _ := newCatalogServer()

	// No match signal: the legacy contract answers "Ok" either way.
	w := doRequest(r, http.MethodPut, "/api/catalog",
		`{"_id":"000000000000000000000001","price":25}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"Ok"`, strings.TrimSpace(w.Body.String()))
}

func TestDeleteProduct(t *testing.T) {
	r, _ := newCatalogServer()
	created := createProduct(t, r, `{"title":"Widget Pro","price":19.99,"category":"tools"}`)

	w := doRequest(r, http.MethodDelete, "/api/catalog/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var res deleteResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, int64(1), res.Count)

	// Absent id is not an error, just count 0.
	w = doRequest(r, http.MethodDelete, "/api/catalog/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	res = deleteResponse{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, int64(0), res.Count)
}

func TestProductDetails_NotFound(t *testing.T) {
	r, _ := newCatalogServer()

	w := doRequest(r, http.MethodGet, "/api/product/details/000000000000000000000001", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decodeProblem(t, w).Detail)
}
