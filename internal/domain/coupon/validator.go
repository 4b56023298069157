package coupon

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Messages returned in Result for rejected coupons.
const (
	MsgInvalidCode  = "Invalid coupon code"
	MsgInactive     = "Coupon is not active"
	MsgExpired      = "Coupon has expired"
	MsgLimitReached = "Coupon usage limit reached"
	MsgAlreadyUsed  = "You have already used this coupon"
)

// Result is the outcome of validating a coupon against an order amount.
// Business rejections are reported here; the error return of Validate is
// reserved for infrastructure failures.
type Result struct {
	Valid    bool
	Discount decimal.Decimal
	Message  string
	CouponID int64
	Code     string
}

func reject(msg string) Result {
	return Result{Discount: decimal.Zero, Message: msg}
}

// Validator validates a coupon code for an order amount and optional user.
type Validator interface {
	Validate(ctx context.Context, code string, amount decimal.Decimal, userID *int64) (Result, error)
}

// Check runs the validation rules in order, stopping at the first failure:
// existence, active flag, validity window, minimum order amount, global
// usage limit, and per-user single use.
func Check(ctx context.Context, repo Repository, now time.Time, code string, amount decimal.Decimal, userID *int64) (Result, *Coupon, error) {
	c, err := repo.FindByCode(ctx, NormalizeCode(code))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return reject(MsgInvalidCode), nil, nil
		}
		return Result{}, nil, errors.Wrap(err, "lookup coupon")
	}

	switch {
	case !c.IsActive:
		return reject(MsgInactive), c, nil
	case now.Before(c.ValidFrom):
		return reject(fmt.Sprintf("Coupon is valid from %s", c.ValidFrom.Format("02 Jan 2006"))), c, nil
	case now.After(c.ValidUntil):
		return reject(MsgExpired), c, nil
	case amount.LessThan(c.MinimumOrderAmount):
		return reject(fmt.Sprintf("Minimum order amount of %s required", c.MinimumOrderAmount.StringFixed(2))), c, nil
	case c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit:
		return reject(MsgLimitReached), c, nil
	}

	if userID != nil {
		used, err := repo.HasUsage(ctx, c.ID, *userID)
		if err != nil {
			return Result{}, nil, errors.Wrap(err, "check coupon usage")
		}
		if used {
			return reject(MsgAlreadyUsed), c, nil
		}
	}

	return Result{
		Valid:    true,
		Discount: Discount(c, amount),
		CouponID: c.ID,
		Code:     c.Code,
	}, c, nil
}

// Redeem records a usage of couponID by userID for orderID. repo must be
// bound to the transaction that persisted the order.
func Redeem(ctx context.Context, repo Repository, u Usage) error {
	if err := repo.RecordUsage(ctx, u); err != nil {
		return errors.Wrapf(err, "redeem coupon %d", u.CouponID)
	}
	return nil
}
