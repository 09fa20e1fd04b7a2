package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/julianlopez/vainilla-catalog/internal/core"
)

type ProductHandler struct {
	catalog core.CatalogService
	log     *slog.Logger
}

func NewProductHandler(catalog core.CatalogService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, log: log}
}

func (h *ProductHandler) Mount(r chi.Router) {
	r.Get("/api/catalog", h.List)
	r.Post("/api/catalog", h.Create)
	r.Put("/api/catalog", h.Update)
	r.Get("/api/catalog/lower/{amount}", h.PriceBelow)
	r.Get("/api/catalog/greater/{amount}", h.PriceAtLeast)
	r.Get("/api/catalog/{category}", h.ByCategory)
	r.Delete("/api/catalog/{id}", h.Delete)
	r.Get("/api/products/count", h.Count)
	r.Get("/api/products/total", h.Total)
	r.Get("/api/category/unique", h.Categories)
	r.Get("/api/product/details/{id}", h.Details)
}

// List returns every product, ordered by title.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalog.List(ctx)
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not load catalog")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, products)
}

// Create validates the payload, stores the product and returns it with its
// generated id and lowercased category.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in core.ProductInput
	if err := decodeBody(r, &in); err != nil {
		writeError(ctx, h.log, w, &core.ValidationError{Msg: "Product required"}, "")
		return
	}

	product, err := h.catalog.Create(ctx, in)
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not save product")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, product)
}

// Update applies the patch fields to the product named by _id. The response
// is the legacy "Ok" marker; it does not say whether anything matched.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patch core.ProductPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(ctx, h.log, w, &core.ValidationError{Msg: "Product required"}, "")
		return
	}

	if err := h.catalog.Update(ctx, patch); err != nil {
		writeError(ctx, h.log, w, err, "Could not update product")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, "Ok")
}

func (h *ProductHandler) Count(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.catalog.Count(ctx)
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not count products")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, count)
}

func (h *ProductHandler) Total(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.catalog.TotalPrice(ctx)
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not total prices")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, total)
}

// ByCategory filters on the path parameter exactly as given; categories are
// stored lowercase.
func (h *ProductHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := chi.URLParam(r, "category")

	products, err := h.catalog.ListByCategory(ctx, category)
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not load catalog")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, products)
}

// PriceBelow lists products priced strictly under the given amount.
func (h *ProductHandler) PriceBelow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	amount, ok := h.parseAmount(ctx, w, chi.URLParam(r, "amount"))
	if !ok {
		return
	}
	products, err := h.catalog.ListPriceBelow(ctx, amount)
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not load catalog")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, products)
}

// PriceAtLeast lists products priced at or above the given amount.
func (h *ProductHandler) PriceAtLeast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	amount, ok := h.parseAmount(ctx, w, chi.URLParam(r, "amount"))
	if !ok {
		return
	}
	products, err := h.catalog.ListPriceAtLeast(ctx, amount)
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not load catalog")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, products)
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not load categories")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, categories)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.catalog.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not delete product")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, deleteResponse{Count: count})
}

func (h *ProductHandler) Details(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	product, err := h.catalog.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(ctx, h.log, w, err, "Product not found")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, product)
}

func (h *ProductHandler) parseAmount(ctx context.Context, w http.ResponseWriter, raw string) (float64, bool) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeError(ctx, h.log, w, &core.ValidationError{Msg: "Amount must be a number"}, "")
		return 0, false
	}
	return amount, true
}

type deleteResponse struct {
	Count int64 `json:"count"`
}
