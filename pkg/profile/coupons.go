package profile

import (
	"context"
	"fmt"

	"github.com/aivault/profile-client/pkg/client"
)

// CreateCoupon registers a new promotional offer.
func (a *API) CreateCoupon(ctx context.Context, in CouponCreate) (*Coupon, error) {
	if err := a.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("validate coupon: %w", err)
	}

	var out Coupon
	if err := a.client.Post(ctx, client.KindCoupon, "/coupons/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Coupon fetches a single coupon by ID.
func (a *API) Coupon(ctx context.Context, couponID string) (*Coupon, error) {
	var out Coupon
	if _, err := a.client.Get(ctx, client.KindCoupon, "/coupons/"+couponID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Coupons lists a business's coupons, most recently valid first.
func (a *API) Coupons(ctx context.Context, businessID string, limit, offset int) ([]Coupon, error) {
	var out []Coupon
	path := listPath("/coupons/", businessID, limit, offset)
	if _, err := a.client.Get(ctx, client.KindCoupon, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCoupon applies a partial update to a coupon.
func (a *API) UpdateCoupon(ctx context.Context, couponID string, in CouponUpdate) (*Coupon, error) {
	var out Coupon
	if err := a.client.Patch(ctx, client.KindCoupon, "/coupons/"+couponID, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCoupon removes a coupon.
func (a *API) DeleteCoupon(ctx context.Context, couponID string) error {
	return a.client.Delete(ctx, client.KindCoupon, "/coupons/"+couponID)
}

// HydrateCoupons synchronously returns the cached coupon list for the same
// pagination window, if a previous fetch saw it.
func (a *API) HydrateCoupons(businessID string, limit, offset int) ([]Coupon, bool) {
	var out []Coupon
	if !a.client.Hydrate(listPath("/coupons/", businessID, limit, offset), &out) {
		return nil, false
	}
	return out, true
}
