package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/julianlopez/vainilla-catalog/internal/core"
)

type CouponHandler struct {
	coupons core.CouponService
	log     *slog.Logger
}

func NewCouponHandler(coupons core.CouponService, log *slog.Logger) *CouponHandler {
	return &CouponHandler{coupons: coupons, log: log}
}

func (h *CouponHandler) Mount(r chi.Router) {
	r.Post("/api/coupons", h.Create)
	r.Get("/api/coupons", h.List)
	r.Get("/api/coupons/details/{code}", h.Details)
	r.Delete("/api/coupons/{id}", h.Delete)
}

// Create validates the payload, stores the coupon and returns it with its
// generated id and uppercased code.
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in core.CouponInput
	if err := decodeBody(r, &in); err != nil {
		writeError(ctx, h.log, w, &core.ValidationError{Msg: "Coupon required"}, "")
		return
	}

	coupon, err := h.coupons.Create(ctx, in)
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not save coupon")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, coupon)
}

func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	coupons, err := h.coupons.List(ctx)
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not load coupons")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, coupons)
}

// Details looks the coupon up by its exact stored (uppercase) code.
func (h *CouponHandler) Details(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	coupon, err := h.coupons.GetByCode(ctx, chi.URLParam(r, "code"))
	if err != nil {
		writeError(ctx, h.log, w, err, "Code not found")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, coupon)
}

func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.coupons.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(ctx, h.log, w, err, "Could not delete coupon")
		return
	}
	writeJSON(ctx, h.log, w, http.StatusOK, deleteResponse{Count: count})
}
