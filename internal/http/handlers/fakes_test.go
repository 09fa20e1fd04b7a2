package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/julianlopez/vainilla-catalog/internal/core"
)

// productRepoFake mirrors the store contract in memory: title-sorted
// listing, exact category match, strict-lower / inclusive-greater price
// filters, first-seen distinct order.
type productRepoFake struct {
	products []core.Product
	nextID   int
}

func newProductRepoFake() *productRepoFake { return &productRepoFake{} }

func (f *productRepoFake) newID() string {
	f.nextID++
	return fmt.Sprintf("%024x", f.nextID)
}

func (f *productRepoFake) List(context.Context) ([]core.Product, error) {
	out := append([]core.Product(nil), f.products...)
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	if out == nil {
		out = []core.Product{}
	}
	return out, nil
}

func (f *productRepoFake) Insert(_ context.Context, p core.Product) (string, error) {
	p.ID = f.newID()
	f.products = append(f.products, p)
	return p.ID, nil
}

func (f *productRepoFake) Count(context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *productRepoFake) SumPrices(context.Context) (float64, error) {
	var total float64
	for _, p := range f.products {
		total += p.Price
	}
	return total, nil
}

func (f *productRepoFake) ListByCategory(_ context.Context, category string) ([]core.Product, error) {
	out := []core.Product{}
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *productRepoFake) ListPriceBelow(_ context.Context, amount float64) ([]core.Product, error) {
	out := []core.Product{}
	for _, p := range f.products {
		if p.Price < amount {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *productRepoFake) ListPriceAtLeast(_ context.Context, amount float64) ([]core.Product, error) {
	out := []core.Product{}
	for _, p := range f.products {
		if p.Price >= amount {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *productRepoFake) DistinctCategories(context.Context) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range f.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (f *productRepoFake) Update(_ context.Context, id string, patch core.ProductPatch) error {
	for i := range f.products {
		if f.products[i].ID != id {
			continue
		}
		if patch.Title != nil {
			f.products[i].Title = *patch.Title
		}
		if patch.Price != nil {
			f.products[i].Price = *patch.Price
		}
		if patch.Category != nil {
			f.products[i].Category = strings.ToLower(*patch.Category)
		}
		return nil
	}
	// No match is a silent no-op, like the store.
	return nil
}

func (f *productRepoFake) Delete(_ context.Context, id string) (int64, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *productRepoFake) GetByID(_ context.Context, id string) (core.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return core.Product{}, core.ErrNotFound
}

type couponRepoFake struct {
	coupons []core.Coupon
	nextID  int
}

func newCouponRepoFake() *couponRepoFake { return &couponRepoFake{} }

func (f *couponRepoFake) List(context.Context) ([]core.Coupon, error) {
	out := append([]core.Coupon{}, f.coupons...)
	return out, nil
}

func (f *couponRepoFake) Insert(_ context.Context, c core.Coupon) (string, error) {
	f.nextID++
	c.ID = fmt.Sprintf("%024x", f.nextID)
	f.coupons = append(f.coupons, c)
	return c.ID, nil
}

func (f *couponRepoFake) GetByCode(_ context.Context, code string) (core.Coupon, error) {
	for _, c := range f.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return core.Coupon{}, core.ErrNotFound
}

func (f *couponRepoFake) Delete(_ context.Context, id string) (int64, error) {
	for i := range f.coupons {
		if f.coupons[i].ID == id {
			f.coupons = append(f.coupons[:i], f.coupons[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
