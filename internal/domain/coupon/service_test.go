package coupon

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(store *mockStore) *Service {
	s := NewService(store)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestService_Validate(t *testing.T) {
	svc := newTestService(newMockStore(activeCoupon("SAVE10", DiscountPercentage, "10")))

	res, err := svc.Validate(context.Background(), "save10", dec("200"), nil)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.True(t, dec("20").Equal(res.Discount))
	assert.Equal(t, "SAVE10", res.Code)
}

func TestService_Use(t *testing.T) {
	c := activeCoupon("ONCE", DiscountFixedAmount, "50")
	c.UsageLimit = intPtr(1)
	store := newMockStore(c)
	store.orders[100] = 1
	store.orders[101] = 2
	svc := newTestService(store)

	require.NoError(t, svc.Use(context.Background(), c.ID, 1, 100))
	assert.Equal(t, 1, store.byCode["ONCE"].UsedCount)
	require.Len(t, store.usages, 1)
	assert.Equal(t, Usage{CouponID: c.ID, UserID: 1, OrderID: 100, UsedAt: fixedNow}, store.usages[0])

	err := svc.Use(context.Background(), c.ID, 2, 101)
	require.ErrorIs(t, err, ErrUsageLimitReached)
	assert.Equal(t, 1, store.byCode["ONCE"].UsedCount)
}

func TestService_Use_SameUserTwice(t *testing.T) {
	c := activeCoupon("WELCOME", DiscountFixedAmount, "50")
	store := newMockStore(c)
	store.orders[100] = 1
	store.orders[101] = 1
	svc := newTestService(store)

	require.NoError(t, svc.Use(context.Background(), c.ID, 1, 100))
	err := svc.Use(context.Background(), c.ID, 1, 101)
	require.ErrorIs(t, err, ErrAlreadyUsed)
	assert.Equal(t, 1, store.byCode["WELCOME"].UsedCount, "rolled back increment")
}

func TestService_Use_RequiresOwnedOrder(t *testing.T) {
	c := activeCoupon("WELCOME", DiscountFixedAmount, "50")
	store := newMockStore(c)
	store.orders[100] = 1
	svc := newTestService(store)

	require.ErrorIs(t, svc.Use(context.Background(), c.ID, 2, 100), ErrOrderNotFound)
	require.ErrorIs(t, svc.Use(context.Background(), c.ID, 1, 999), ErrOrderNotFound)
	require.ErrorIs(t, svc.Use(context.Background(), 42, 1, 100), ErrNotFound)
	assert.Empty(t, store.usages)
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Code:               "  summer25 ",
		Description:        "Summer sale",
		DiscountType:       DiscountPercentage,
		Value:              dec("25"),
		MinimumOrderAmount: dec("300"),
		ValidFrom:          lastWeek,
		ValidUntil:         nextWeek,
	}
}

func TestService_Create(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)

	c, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "SUMMER25", c.Code)
	assert.True(t, c.IsActive)
	assert.NotZero(t, c.ID)
	assert.Equal(t, fixedNow, c.CreatedAt)

	_, err = svc.Create(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, ErrCodeTaken)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CreateRequest)
		field  string
	}{
		{"empty code", func(r *CreateRequest) { r.Code = "  " }, "code"},
		{"unknown type", func(r *CreateRequest) { r.DiscountType = "bogo" }, "discountType"},
		{"zero value", func(r *CreateRequest) { r.Value = decimal.Zero }, "value"},
		{"percentage over 100", func(r *CreateRequest) { r.Value = dec("100.01") }, "value"},
		{"negative fixed", func(r *CreateRequest) {
			r.DiscountType = DiscountFixedAmount
			r.Value = dec("-1")
		}, "value"},
		{"negative minimum", func(r *CreateRequest) { r.MinimumOrderAmount = dec("-1") }, "minimumOrderAmount"},
		{"zero cap", func(r *CreateRequest) { r.MaximumDiscountAmount = decPtr("0") }, "maximumDiscountAmount"},
		{"zero limit", func(r *CreateRequest) { r.UsageLimit = intPtr(0) }, "usageLimit"},
		{"inverted window", func(r *CreateRequest) { r.ValidUntil = r.ValidFrom }, "validUntil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := newTestService(newMockStore()).Create(context.Background(), req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestService_Create_FullPercentageAllowed(t *testing.T) {
	req := validCreateRequest()
	req.Value = dec("100")
	_, err := newTestService(newMockStore()).Create(context.Background(), req)
	require.NoError(t, err)
}

func TestService_DeleteAndDeactivate(t *testing.T) {
	used := activeCoupon("USED", DiscountFixedAmount, "10")
	unused := activeCoupon("UNUSED", DiscountFixedAmount, "10")
	store := newMockStore(used, unused)
	store.orders[1] = 1
	svc := newTestService(store)
	require.NoError(t, svc.Use(context.Background(), used.ID, 1, 1))

	require.ErrorIs(t, svc.Delete(context.Background(), used.ID), ErrInUse)
	require.NoError(t, svc.Deactivate(context.Background(), used.ID))
	got, err := svc.Get(context.Background(), used.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.NoError(t, svc.Delete(context.Background(), unused.ID))
	_, err = svc.Get(context.Background(), unused.ID)
	require.ErrorIs(t, err, ErrNotFound)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
