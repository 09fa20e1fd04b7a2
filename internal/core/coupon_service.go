package core

import "context"

type couponService struct {
	coupons CouponRepo
}

func NewCouponService(coupons CouponRepo) CouponService {
	return &couponService{coupons: coupons}
}

func (s *couponService) List(ctx context.Context) ([]Coupon, error) {
	return s.coupons.List(ctx)
}

func (s *couponService) Create(ctx context.Context, in CouponInput) (Coupon, error) {
	c, err := in.Validate()
	if err != nil {
		return Coupon{}, err
	}

	id, err := s.coupons.Insert(ctx, c)
	if err != nil {
		return Coupon{}, err
	}
	c.ID = id
	return c, nil
}

// GetByCode matches the stored code exactly; codes are stored uppercase, so
// callers pass the uppercase form.
func (s *couponService) GetByCode(ctx context.Context, code string) (Coupon, error) {
	return s.coupons.GetByCode(ctx, code)
}

func (s *couponService) Delete(ctx context.Context, id string) (int64, error) {
	return s.coupons.Delete(ctx, id)
}
