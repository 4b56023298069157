package coupon

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

var (
	fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	lastWeek = fixedNow.Add(-7 * 24 * time.Hour)
	nextWeek = fixedNow.Add(7 * 24 * time.Hour)
)

func activeCoupon(code string, typ DiscountType, value string) *Coupon {
	return &Coupon{
		Code:               code,
		DiscountType:       typ,
		Value:              dec(value),
		MinimumOrderAmount: decimal.Zero,
		ValidFrom:          lastWeek,
		ValidUntil:         nextWeek,
		IsActive:           true,
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name        string
		coupon      *Coupon
		usages      []Usage
		code        string
		amount      string
		userID      *int64
		wantValid   bool
		wantMessage string
		wantAmount  string
	}{
		{
			name:       "percentage discount",
			coupon:     activeCoupon("SAVE10", DiscountPercentage, "10"),
			code:       "SAVE10",
			amount:     "517",
			wantValid:  true,
			wantAmount: "51.7",
		},
		{
			name:       "lookup is case-insensitive",
			coupon:     activeCoupon("SAVE10", DiscountPercentage, "10"),
			code:       " save10 ",
			amount:     "100",
			wantValid:  true,
			wantAmount: "10",
		},
		{
			name:        "unknown code",
			coupon:      activeCoupon("SAVE10", DiscountPercentage, "10"),
			code:        "BOGUS",
			amount:      "100",
			wantMessage: MsgInvalidCode,
		},
		{
			name: "inactive",
			coupon: func() *Coupon {
				c := activeCoupon("OFF", DiscountFixedAmount, "50")
				c.IsActive = false
				return c
			}(),
			code:        "OFF",
			amount:      "100",
			wantMessage: MsgInactive,
		},
		{
			name: "not yet valid",
			coupon: func() *Coupon {
				c := activeCoupon("SOON", DiscountFixedAmount, "50")
				c.ValidFrom = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
				return c
			}(),
			code:        "SOON",
			amount:      "100",
			wantMessage: "Coupon is valid from 01 Jul 2025",
		},
		{
			name: "expired",
			coupon: func() *Coupon {
				c := activeCoupon("OLD", DiscountFixedAmount, "50")
				c.ValidUntil = fixedNow.Add(-time.Second)
				return c
			}(),
			code:        "OLD",
			amount:      "100",
			wantMessage: MsgExpired,
		},
		{
			name: "below minimum order amount",
			coupon: func() *Coupon {
				c := activeCoupon("BIG", DiscountFixedAmount, "50")
				c.MinimumOrderAmount = dec("1000")
				return c
			}(),
			code:        "BIG",
			amount:      "999.99",
			wantMessage: "Minimum order amount of 1000.00 required",
		},
		{
			name: "minimum order amount is inclusive",
			coupon: func() *Coupon {
				c := activeCoupon("BIG", DiscountFixedAmount, "50")
				c.MinimumOrderAmount = dec("1000")
				return c
			}(),
			code:       "BIG",
			amount:     "1000",
			wantValid:  true,
			wantAmount: "50",
		},
		{
			name: "usage limit reached",
			coupon: func() *Coupon {
				c := activeCoupon("ONCE", DiscountFixedAmount, "50")
				c.UsageLimit = intPtr(1)
				c.UsedCount = 1
				return c
			}(),
			code:        "ONCE",
			amount:      "100",
			wantMessage: MsgLimitReached,
		},
		{
			name:        "already used by user",
			coupon:      activeCoupon("WELCOME", DiscountFixedAmount, "50"),
			usages:      []Usage{{CouponID: 1, UserID: 7, OrderID: 1}},
			code:        "WELCOME",
			amount:      "100",
			userID:      int64Ptr(7),
			wantMessage: MsgAlreadyUsed,
		},
		{
			name:       "used by another user is still valid",
			coupon:     activeCoupon("WELCOME", DiscountFixedAmount, "50"),
			usages:     []Usage{{CouponID: 1, UserID: 7, OrderID: 1}},
			code:       "WELCOME",
			amount:     "100",
			userID:     int64Ptr(8),
			wantValid:  true,
			wantAmount: "50",
		},
		{
			name:       "anonymous validation skips per-user check",
			coupon:     activeCoupon("WELCOME", DiscountFixedAmount, "50"),
			usages:     []Usage{{CouponID: 1, UserID: 7, OrderID: 1}},
			code:       "WELCOME",
			amount:     "100",
			wantValid:  true,
			wantAmount: "50",
		},
		{
			name: "percentage capped by maximum discount",
			coupon: func() *Coupon {
				c := activeCoupon("HALF", DiscountPercentage, "50")
				c.MaximumDiscountAmount = decPtr("100")
				return c
			}(),
			code:       "HALF",
			amount:     "1180",
			wantValid:  true,
			wantAmount: "100",
		},
		{
			name:       "fixed discount capped at order amount",
			coupon:     activeCoupon("FLAT500", DiscountFixedAmount, "500"),
			code:       "FLAT500",
			amount:     "120.50",
			wantValid:  true,
			wantAmount: "120.5",
		},
		{
			name:       "full percentage equals amount",
			coupon:     activeCoupon("FREE", DiscountPercentage, "100"),
			code:       "FREE",
			amount:     "517",
			wantValid:  true,
			wantAmount: "517",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore(tt.coupon)
			store.usages = tt.usages

			res, _, err := Check(context.Background(), store, fixedNow, tt.code, dec(tt.amount), tt.userID)
			require.NoError(t, err)

			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				assert.Equal(t, tt.wantMessage, res.Message)
				assert.True(t, res.Discount.IsZero())
				return
			}
			assert.Empty(t, res.Message)
			assert.True(t, dec(tt.wantAmount).Equal(res.Discount),
				"expected discount %s, got %s", tt.wantAmount, res.Discount)
			assert.Equal(t, tt.coupon.ID, res.CouponID)
		})
	}
}

func TestCheck_RuleOrder(t *testing.T) {
	// Inactive and expired and below minimum: the first failing rule wins.
	c := activeCoupon("MANY", DiscountFixedAmount, "10")
	c.IsActive = false
	c.ValidUntil = lastWeek
	c.MinimumOrderAmount = dec("1000")

	res, _, err := Check(context.Background(), newMockStore(c), fixedNow, "MANY", dec("1"), nil)
	require.NoError(t, err)
	assert.Equal(t, MsgInactive, res.Message)

	c.IsActive = true
	res, _, err = Check(context.Background(), newMockStore(c), fixedNow, "MANY", dec("1"), nil)
	require.NoError(t, err)
	assert.Equal(t, MsgExpired, res.Message)
}

func TestCheck_LookupError(t *testing.T) {
	store := newMockStore()
	store.findErr = errDB

	_, _, err := Check(context.Background(), store, fixedNow, "X", dec("1"), nil)
	require.ErrorIs(t, err, errDB)
	assert.Contains(t, err.Error(), "lookup coupon")
}

func TestCheck_UsageLimitIsGlobalAndPerUserIsIndependent(t *testing.T) {
	c := activeCoupon("ONEUSE", DiscountFixedAmount, "20")
	c.UsageLimit = intPtr(2)
	store := newMockStore(c)
	require.NoError(t, store.RecordUsage(context.Background(), Usage{CouponID: c.ID, UserID: 1, OrderID: 10}))

	res, _, err := Check(context.Background(), store, fixedNow, "ONEUSE", dec("100"), int64Ptr(1))
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, MsgAlreadyUsed, res.Message)

	res, _, err = Check(context.Background(), store, fixedNow, "ONEUSE", dec("100"), int64Ptr(2))
	require.NoError(t, err)
	assert.True(t, res.Valid)

	require.NoError(t, store.RecordUsage(context.Background(), Usage{CouponID: c.ID, UserID: 2, OrderID: 11}))
	res, _, err = Check(context.Background(), store, fixedNow, "ONEUSE", dec("100"), int64Ptr(3))
	require.NoError(t, err)
	assert.Equal(t, MsgLimitReached, res.Message)
}

func TestDiscount_PercentageNeverExceedsCapOrAmount(t *testing.T) {
	c := activeCoupon("P", DiscountPercentage, "30")
	c.MaximumDiscountAmount = decPtr("75")

	for _, amount := range []string{"0", "1", "99.99", "250", "251", "1000", "123456.78"} {
		got := Discount(c, dec(amount))
		assert.True(t, got.LessThanOrEqual(dec("75")), "amount %s: %s", amount, got)
		assert.True(t, got.LessThanOrEqual(dec(amount)), "amount %s: %s", amount, got)
		assert.False(t, got.IsNegative())
	}
}

func TestDiscount_UnknownTypeIsZero(t *testing.T) {
	c := activeCoupon("X", DiscountType("bogo"), "10")
	assert.True(t, Discount(c, dec("100")).IsZero())
}
