package handler

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/coupon"
)

func (h *Handler) ValidateCoupon(ctx context.Context, req *oas.ValidateCouponRequest) (*oas.CouponValidationResponse, error) {
	// Keys without a user validate anonymously, skipping the per-user check.
	var uid *int64
	if p, ok := auth.PrincipalFrom(ctx); ok {
		uid = p.UserID
	}
	res, err := h.coupons.Validate(ctx, req.Code, decimal.NewFromFloat(req.OrderAmount), uid)
	if err != nil {
		return nil, errors.Wrap(err, "validate coupon")
	}

	data := oas.CouponValidation{
		Valid:    res.Valid,
		Discount: money(res.Discount),
		Message:  optString(res.Message),
	}
	if res.Valid {
		data.CouponId = oas.NewOptInt64(res.CouponID)
		data.Code = oas.NewOptString(res.Code)
	}
	return &oas.CouponValidationResponse{Success: true, Data: data}, nil
}

func (h *Handler) UseCoupon(ctx context.Context, req *oas.UseCouponRequest, params oas.UseCouponParams) (*oas.SuccessResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.coupons.Use(ctx, params.ID, uid, req.OrderId); err != nil {
		return nil, errors.Wrap(err, "use coupon")
	}
	return success(), nil
}

func (h *Handler) ListCoupons(ctx context.Context) (*oas.CouponListResponse, error) {
	coupons, err := h.coupons.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list coupons")
	}
	data := make([]oas.Coupon, len(coupons))
	for i := range coupons {
		data[i] = toCoupon(&coupons[i])
	}
	return &oas.CouponListResponse{Success: true, Data: data}, nil
}

func (h *Handler) CreateCoupon(ctx context.Context, req *oas.CreateCouponRequest) (*oas.CouponResponse, error) {
	create := coupon.CreateRequest{
		Code:               req.Code,
		Description:        req.Description.Or(""),
		DiscountType:       coupon.DiscountType(req.DiscountType),
		Value:              decimal.NewFromFloat(req.DiscountValue),
		MinimumOrderAmount: decimal.NewFromFloat(req.MinimumOrderAmount.Or(0)),
		ValidFrom:          req.ValidFrom,
		ValidUntil:         req.ValidUntil,
	}
	if v, ok := req.MaximumDiscountAmount.Get(); ok {
		d := decimal.NewFromFloat(v)
		create.MaximumDiscountAmount = &d
	}
	if n, ok := req.UsageLimit.Get(); ok {
		create.UsageLimit = &n
	}

	c, err := h.coupons.Create(ctx, create)
	if err != nil {
		return nil, errors.Wrap(err, "create coupon")
	}
	return &oas.CouponResponse{Success: true, Data: toCoupon(c)}, nil
}

func (h *Handler) GetCoupon(ctx context.Context, params oas.GetCouponParams) (*oas.CouponResponse, error) {
	c, err := h.coupons.Get(ctx, params.ID)
	if err != nil {
		return nil, errors.Wrap(err, "get coupon")
	}
	return &oas.CouponResponse{Success: true, Data: toCoupon(c)}, nil
}

func (h *Handler) DeactivateCoupon(ctx context.Context, params oas.DeactivateCouponParams) (*oas.SuccessResponse, error) {
	if err := h.coupons.Deactivate(ctx, params.ID); err != nil {
		return nil, errors.Wrap(err, "deactivate coupon")
	}
	return success(), nil
}

func (h *Handler) DeleteCoupon(ctx context.Context, params oas.DeleteCouponParams) (*oas.SuccessResponse, error) {
	if err := h.coupons.Delete(ctx, params.ID); err != nil {
		return nil, errors.Wrap(err, "delete coupon")
	}
	return success(), nil
}
