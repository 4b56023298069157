package coupon

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var _ Validator = (*Service)(nil)

// ValidationError describes an invalid field in a coupon definition.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid coupon %s: %s", e.Field, e.Reason)
}

// CreateRequest holds the definition of a new coupon.
type CreateRequest struct {
	Code                  string
	Description           string
	DiscountType          DiscountType
	Value                 decimal.Decimal
	MinimumOrderAmount    decimal.Decimal
	MaximumDiscountAmount *decimal.Decimal
	UsageLimit            *int
	ValidFrom             time.Time
	ValidUntil            time.Time
}

// Service exposes coupon validation, redemption and administration.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a Service backed by the given Store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Validate checks code against amount for the optional user and returns the
// discount it would grant. Nothing is redeemed.
func (s *Service) Validate(ctx context.Context, code string, amount decimal.Decimal, userID *int64) (Result, error) {
	res, _, err := Check(ctx, s.store, s.now(), code, amount, userID)
	return res, err
}

// Use redeems couponID for userID against an already placed order. It
// refuses orders that don't exist or belong to another user.
func (s *Service) Use(ctx context.Context, couponID, userID, orderID int64) error {
	owned, err := s.store.OrderOwnedBy(ctx, orderID, userID)
	if err != nil {
		return errors.Wrap(err, "lookup order")
	}
	if !owned {
		return ErrOrderNotFound
	}
	if _, err := s.store.FindByID(ctx, couponID); err != nil {
		return err
	}

	now := s.now()
	return s.store.InTx(ctx, func(repo Repository) error {
		return Redeem(ctx, repo, Usage{
			CouponID: couponID,
			UserID:   userID,
			OrderID:  orderID,
			UsedAt:   now,
		})
	})
}

// Create validates and stores a new coupon. The code is upper-cased.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Coupon, error) {
	if err := validateDefinition(req); err != nil {
		return nil, err
	}

	now := s.now()
	c := &Coupon{
		Code:                  NormalizeCode(req.Code),
		Description:           req.Description,
		DiscountType:          req.DiscountType,
		Value:                 req.Value,
		MinimumOrderAmount:    req.MinimumOrderAmount,
		MaximumDiscountAmount: req.MaximumDiscountAmount,
		UsageLimit:            req.UsageLimit,
		ValidFrom:             req.ValidFrom,
		ValidUntil:            req.ValidUntil,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a coupon by id.
func (s *Service) Get(ctx context.Context, id int64) (*Coupon, error) {
	return s.store.FindByID(ctx, id)
}

// List returns every coupon.
func (s *Service) List(ctx context.Context) ([]Coupon, error) {
	return s.store.List(ctx)
}

// Deactivate switches a coupon off without removing its history.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	return s.store.SetActive(ctx, id, false)
}

// Delete removes a coupon that was never redeemed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func validateDefinition(req CreateRequest) error {
	if NormalizeCode(req.Code) == "" {
		return &ValidationError{Field: "code", Reason: "must not be empty"}
	}
	if !req.DiscountType.Valid() {
		return &ValidationError{Field: "discountType", Reason: fmt.Sprintf("unsupported %q", req.DiscountType)}
	}
	if !req.Value.IsPositive() {
		return &ValidationError{Field: "value", Reason: "must be greater than 0"}
	}
	if req.DiscountType == DiscountPercentage && req.Value.GreaterThan(hundred) {
		return &ValidationError{Field: "value", Reason: "percentage must not exceed 100"}
	}
	if req.MinimumOrderAmount.IsNegative() {
		return &ValidationError{Field: "minimumOrderAmount", Reason: "must not be negative"}
	}
	if req.MaximumDiscountAmount != nil && !req.MaximumDiscountAmount.IsPositive() {
		return &ValidationError{Field: "maximumDiscountAmount", Reason: "must be greater than 0"}
	}
	if req.UsageLimit != nil && *req.UsageLimit <= 0 {
		return &ValidationError{Field: "usageLimit", Reason: "must be greater than 0"}
	}
	if !req.ValidUntil.After(req.ValidFrom) {
		return &ValidationError{Field: "validUntil", Reason: "must be after validFrom"}
	}
	return nil
}
