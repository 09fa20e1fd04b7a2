package core

import (
	"context"
	"encoding/json"
	"strings"
)

type Coupon struct {
	ID       string  `json:"_id"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// CouponInput is the create payload; discount stays raw for the same reason
// as ProductInput.Price.
type CouponInput struct {
	Code     *string         `json:"code"`
	Discount json.RawMessage `json:"discount"`
}

type CouponRepo interface {
	List(ctx context.Context) ([]Coupon, error)
	Insert(ctx context.Context, c Coupon) (string, error)
	GetByCode(ctx context.Context, code string) (Coupon, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type CouponService interface {
	List(ctx context.Context) ([]Coupon, error)
	Create(ctx context.Context, in CouponInput) (Coupon, error)
	GetByCode(ctx context.Context, code string) (Coupon, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// Validate runs the create checks in order and returns the normalized
// coupon (code uppercased).
func (in CouponInput) Validate() (Coupon, error) {
	if in.Code == nil {
		return Coupon{}, invalid("Missing coupon code!")
	}
	if in.Discount == nil {
		return Coupon{}, invalid("Missing discount value!")
	}
	discount, ok := numberValue(in.Discount)
	if !ok {
		return Coupon{}, invalid("Discount value must be a number")
	}
	return Coupon{
		Code:     strings.ToUpper(*in.Code),
		Discount: discount,
	}, nil
}
