package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notify"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func newTestService(t *testing.T, store *mockStore) (*Service, *mockOutbox) {
	t.Helper()
	ob := &mockOutbox{}
	svc, err := NewService(store, ob)
	require.NoError(t, err)
	svc.now = func() time.Time { return testNow }
	suffix := 0
	svc.suffix = func() int { suffix++; return suffix }
	return svc, ob
}

func address(state string) Address {
	return Address{
		FullName:   "Asha Rao",
		Phone:      "9999999999",
		Line1:      "12 MG Road",
		City:       "Bengaluru",
		State:      state,
		PostalCode: "560001",
		Country:    "India",
	}
}

// seed adds products 1 (price 200, stock 10) and 2 (price 100, stock 5).
func seed(store *mockStore) {
	store.state.products[1] = &mockProduct{name: "Mug", price: "200", stock: 10, active: true}
	store.state.products[2] = &mockProduct{name: "Coaster", price: "100", stock: 5, active: true}
}

func save10(limit *int) *coupon.Coupon {
	maxDiscount := dec("100")
	return &coupon.Coupon{
		ID:                    7,
		Code:                  "SAVE10",
		DiscountType:          coupon.DiscountPercentage,
		Value:                 dec("10"),
		MinimumOrderAmount:    dec("500"),
		MaximumDiscountAmount: &maxDiscount,
		UsageLimit:            limit,
		ValidFrom:             testNow.Add(-24 * time.Hour),
		ValidUntil:            testNow.Add(24 * time.Hour),
		IsActive:              true,
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("below free shipping threshold", func(t *testing.T) {
		store := newMockStore()
		seed(store)
		store.state.carts[42] = []mockCartItem{{productID: 1, qty: 2}}
		svc, ob := newTestService(t, store)

		o, err := svc.CreateOrder(ctx, CreateRequest{
			UserID:          42,
			ShippingAddress: address("Delhi"),
			PaymentMethod:   PaymentCOD,
		})
		require.NoError(t, err)

		assertDec(t, "400", o.Subtotal)
		assertDec(t, "72", o.TaxAmount)
		assertDec(t, "45", o.ShippingAmount)
		assertDec(t, "0", o.DiscountAmount)
		assertDec(t, "517", o.TotalAmount)
		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, fmt.Sprintf("ORD%d001", testNow.Unix()), o.Number)
		assert.Equal(t, address("Delhi"), o.BillingAddress)

		require.Len(t, o.History, 1)
		assert.Equal(t, StatusPending, o.History[0].Status)
		assert.Equal(t, "Order placed successfully", o.History[0].Comment)
		assert.Equal(t, "user:42", o.History[0].Actor)

		assert.Equal(t, 8, store.state.products[1].stock)
		assert.Empty(t, store.state.carts[42])
		require.Len(t, store.state.events, 1)
		assert.Equal(t, notify.KindOrderPlaced, store.state.events[0].Kind)
		assert.Equal(t, o.ID, store.state.events[0].OrderID)
		assert.Equal(t, 1, ob.wakes)
	})

	t.Run("free shipping with coupon", func(t *testing.T) {
		store := newMockStore()
		seed(store)
		store.state.carts[42] = []mockCartItem{{productID: 1, qty: 4}, {productID: 2, qty: 2}}
		limit := 5
		store.state.coupons["SAVE10"] = save10(&limit)
		svc, _ := newTestService(t, store)

		o, err := svc.CreateOrder(ctx, CreateRequest{
			UserID:          42,
			ShippingAddress: address("Karnataka"),
			CouponCode:      " save10 ",
			PaymentMethod:   PaymentUPI,
		})
		require.NoError(t, err)

		assertDec(t, "1000", o.Subtotal)
		assertDec(t, "180", o.TaxAmount)
		assertDec(t, "0", o.ShippingAmount)
		// 10% of 1180 is 118, capped at 100.
		assertDec(t, "100", o.DiscountAmount)
		assertDec(t, "1080", o.TotalAmount)
		require.NotNil(t, o.CouponID)
		assert.Equal(t, int64(7), *o.CouponID)
		assert.Equal(t, "SAVE10", o.CouponCode)

		assert.Equal(t, 1, store.state.coupons["SAVE10"].UsedCount)
		require.Len(t, store.state.usages, 1)
		assert.Equal(t, coupon.Usage{CouponID: 7, UserID: 42, OrderID: o.ID, UsedAt: testNow}, store.state.usages[0])
		assert.Equal(t, 6, store.state.products[1].stock)
		assert.Equal(t, 3, store.state.products[2].stock)
	})

	t.Run("order number collision is retried", func(t *testing.T) {
		store := newMockStore()
		seed(store)
		store.state.carts[42] = []mockCartItem{{productID: 1, qty: 1}}
		store.takenNumbers[fmt.Sprintf("ORD%d001", testNow.Unix())] = true
		svc, _ := newTestService(t, store)

		o, err := svc.CreateOrder(ctx, CreateRequest{UserID: 42, ShippingAddress: address("Goa"), PaymentMethod: PaymentCard})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("ORD%d002", testNow.Unix()), o.Number)
		assertDec(t, "60", o.ShippingAmount)
	})
}

// TestCreateOrderFailureLeavesNoTrace checks that every rejected checkout
// leaves orders, stock, cart and coupon state untouched.
func TestCreateOrderFailureLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	valid := CreateRequest{UserID: 42, ShippingAddress: address("Delhi"), PaymentMethod: PaymentCOD}

	tests := []struct {
		name     string
		setup    func(s *mockStore)
		req      func() CreateRequest
		checkErr func(t *testing.T, err error)
	}{
		{
			name:  "empty cart",
			setup: func(s *mockStore) { delete(s.state.carts, 42) },
			req:   func() CreateRequest { return valid },
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyCart)
			},
		},
		{
			name:  "insufficient stock",
			setup: func(s *mockStore) { s.state.carts[42] = []mockCartItem{{productID: 1, qty: 11}} },
			req:   func() CreateRequest { return valid },
			checkErr: func(t *testing.T, err error) {
				var stockErr *InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, int64(1), stockErr.ProductID)
				assert.Equal(t, 11, stockErr.Requested)
				assert.Equal(t, 10, stockErr.Available)
			},
		},
		{
			name: "stock taken concurrently",
			setup: func(s *mockStore) {
				s.state.carts[42] = []mockCartItem{{productID: 1, qty: 1}, {productID: 2, qty: 5}}
				s.stealStock[2] = 1
			},
			req: func() CreateRequest { return valid },
			checkErr: func(t *testing.T, err error) {
				var stockErr *InsufficientStockError
				require.ErrorAs(t, err, &stockErr)
				assert.Equal(t, int64(2), stockErr.ProductID)
			},
		},
		{
			name:  "inactive product",
			setup: func(s *mockStore) { s.state.products[2].active = false },
			req:   func() CreateRequest { return valid },
			checkErr: func(t *testing.T, err error) {
				var unavailable *ProductUnavailableError
				require.ErrorAs(t, err, &unavailable)
				assert.Equal(t, "Coaster", unavailable.ProductName)
			},
		},
		{
			name:  "unknown coupon",
			setup: func(*mockStore) {},
			req: func() CreateRequest {
				r := valid
				r.CouponCode = "NOPE"
				return r
			},
			checkErr: func(t *testing.T, err error) {
				var rejected *CouponRejectedError
				require.ErrorAs(t, err, &rejected)
				assert.Equal(t, coupon.MsgInvalidCode, rejected.Reason)
			},
		},
		{
			name: "coupon below minimum",
			setup: func(s *mockStore) {
				c := save10(nil)
				c.MinimumOrderAmount = dec("1000")
				s.state.coupons["SAVE10"] = c
			},
			req: func() CreateRequest {
				r := valid
				r.CouponCode = "SAVE10"
				return r
			},
			checkErr: func(t *testing.T, err error) {
				var rejected *CouponRejectedError
				require.ErrorAs(t, err, &rejected)
				assert.Equal(t, "Minimum order amount of 1000.00 required", rejected.Reason)
			},
		},
		{
			name:  "invalid payment method",
			setup: func(*mockStore) {},
			req: func() CreateRequest {
				r := valid
				r.PaymentMethod = "barter"
				return r
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
			},
		},
		{
			name:  "missing postal code",
			setup: func(*mockStore) {},
			req: func() CreateRequest {
				r := valid
				r.ShippingAddress.PostalCode = " "
				return r
			},
			checkErr: func(t *testing.T, err error) {
				var addrErr *AddressError
				require.ErrorAs(t, err, &addrErr)
				assert.Equal(t, "shipping", addrErr.Kind)
				assert.Equal(t, "postalCode", addrErr.Field)
			},
		},
		{
			name:  "cart lookup failure",
			setup: func(s *mockStore) { s.cartErr = errDB },
			req:   func() CreateRequest { return valid },
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errDB)
			},
		},
		{
			name: "order numbers exhausted",
			setup: func(s *mockStore) {
				for i := 1; i <= maxNumberAttempts; i++ {
					s.takenNumbers[fmt.Sprintf("ORD%d%03d", testNow.Unix(), i)] = true
				}
			},
			req: func() CreateRequest { return valid },
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrOrderNumberExhausted)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore()
			seed(store)
			store.state.carts[42] = []mockCartItem{{productID: 1, qty: 2}, {productID: 2, qty: 1}}
			tt.setup(store)
			cartBefore := append([]mockCartItem(nil), store.state.carts[42]...)
			svc, ob := newTestService(t, store)

			o, err := svc.CreateOrder(ctx, tt.req())
			require.Error(t, err)
			assert.Nil(t, o)
			tt.checkErr(t, err)

			assert.Empty(t, store.state.orders)
			assert.Empty(t, store.state.events)
			assert.Empty(t, store.state.usages)
			assert.Equal(t, 10, store.state.products[1].stock)
			assert.Equal(t, 5, store.state.products[2].stock)
			assert.Equal(t, cartBefore, store.state.carts[42])
			assert.Zero(t, ob.wakes)
		})
	}
}

func TestCreateOrderCouponSingleUse(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	seed(store)
	store.state.coupons["SAVE10"] = save10(nil)
	svc, _ := newTestService(t, store)

	req := CreateRequest{UserID: 42, ShippingAddress: address("Delhi"), CouponCode: "SAVE10", PaymentMethod: PaymentCOD}

	store.state.carts[42] = []mockCartItem{{productID: 1, qty: 3}}
	_, err := svc.CreateOrder(ctx, req)
	require.NoError(t, err)

	store.state.carts[42] = []mockCartItem{{productID: 1, qty: 3}}
	_, err = svc.CreateOrder(ctx, req)
	var rejected *CouponRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, coupon.MsgAlreadyUsed, rejected.Reason)

	assert.Len(t, store.state.orders, 1)
	assert.Equal(t, 1, store.state.coupons["SAVE10"].UsedCount)
	assert.Equal(t, 7, store.state.products[1].stock)
}

func TestCreateOrderCouponLimitReached(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	seed(store)
	limit := 1
	store.state.coupons["SAVE10"] = save10(&limit)
	svc, _ := newTestService(t, store)

	for _, uid := range []int64{1, 2} {
		store.state.carts[uid] = []mockCartItem{{productID: 1, qty: 3}}
	}

	_, err := svc.CreateOrder(ctx, CreateRequest{UserID: 1, ShippingAddress: address("Delhi"), CouponCode: "SAVE10", PaymentMethod: PaymentCOD})
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, CreateRequest{UserID: 2, ShippingAddress: address("Delhi"), CouponCode: "SAVE10", PaymentMethod: PaymentCOD})
	var rejected *CouponRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, coupon.MsgLimitReached, rejected.Reason)
	assert.Equal(t, 1, store.state.coupons["SAVE10"].UsedCount)
	assert.Len(t, store.state.carts[2], 1)
}

func placeOrder(t *testing.T, svc *Service, store *mockStore, userID int64) *Order {
	t.Helper()
	store.state.carts[userID] = []mockCartItem{{productID: 1, qty: 2}, {productID: 2, qty: 1}}
	o, err := svc.CreateOrder(context.Background(), CreateRequest{
		UserID:          userID,
		ShippingAddress: address("Delhi"),
		PaymentMethod:   PaymentCOD,
	})
	require.NoError(t, err)
	return o
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	seed(store)
	svc, _ := newTestService(t, store)
	o := placeOrder(t, svc, store, 42)

	_, err := svc.UpdateStatus(ctx, UpdateStatusRequest{OrderID: o.ID, Status: StatusProcessing, Actor: "admin"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, UpdateStatusRequest{OrderID: o.ID, Status: StatusShipped, Actor: "admin"})
	require.ErrorIs(t, err, ErrTrackingNumberRequired)

	shipped, err := svc.UpdateStatus(ctx, UpdateStatusRequest{
		OrderID:        o.ID,
		Status:         StatusShipped,
		TrackingNumber: "TRK123",
		Comment:        "Handed to courier",
		Actor:          "admin",
	})
	require.NoError(t, err)
	require.NotNil(t, shipped.TrackingNumber)
	assert.Equal(t, "TRK123", *shipped.TrackingNumber)

	delivered, err := svc.UpdateStatus(ctx, UpdateStatusRequest{OrderID: o.ID, Status: StatusDelivered, Actor: "admin"})
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredAt)
	assert.Equal(t, testNow, *delivered.DeliveredAt)

	stored, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, stored.Status)

	var statuses []Status
	for _, h := range stored.History {
		statuses = append(statuses, h.Status)
	}
	assert.Equal(t, []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered}, statuses)
	assert.Equal(t, "Order status changed to processing", stored.History[1].Comment)
	assert.Equal(t, "Handed to courier", stored.History[2].Comment)

	var kinds []notify.Kind
	for _, e := range store.state.events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []notify.Kind{
		notify.KindOrderPlaced,
		notify.KindStatusChanged,
		notify.KindShipped,
		notify.KindDelivered,
	}, kinds)
	assert.Equal(t, "TRK123", store.state.events[2].TrackingNumber)

	// Stock is untouched by non-cancel transitions.
	assert.Equal(t, 8, store.state.products[1].stock)
}

func TestUpdateStatusRejected(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		path []Status
		to   Status
	}{
		{"pending to shipped", nil, StatusShipped},
		{"pending to delivered", nil, StatusDelivered},
		{"processing to pending", []Status{StatusProcessing}, StatusPending},
		{"cancelled is terminal", []Status{StatusCancelled}, StatusProcessing},
		{"cancelled twice", []Status{StatusCancelled}, StatusCancelled},
		{"shipped cannot be cancelled", []Status{StatusProcessing, StatusShipped}, StatusCancelled},
		{"returned is terminal", []Status{StatusProcessing, StatusShipped, StatusReturned}, StatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore()
			seed(store)
			svc, _ := newTestService(t, store)
			o := placeOrder(t, svc, store, 42)
			for _, st := range tt.path {
				_, err := svc.UpdateStatus(ctx, UpdateStatusRequest{OrderID: o.ID, Status: st, TrackingNumber: "T1"})
				require.NoError(t, err)
			}
			before, err := svc.Get(ctx, o.ID)
			require.NoError(t, err)
			events := len(store.state.events)
			stock := store.state.products[1].stock

			_, err = svc.UpdateStatus(ctx, UpdateStatusRequest{OrderID: o.ID, Status: tt.to, TrackingNumber: "T2"})
			require.ErrorIs(t, err, ErrInvalidTransition)
			var trErr *TransitionError
			require.ErrorAs(t, err, &trErr)
			assert.Equal(t, before.Status, trErr.From)
			assert.Equal(t, tt.to, trErr.To)

			after, err := svc.Get(ctx, o.ID)
			require.NoError(t, err)
			assert.Equal(t, before, after)
			assert.Len(t, store.state.events, events)
			assert.Equal(t, stock, store.state.products[1].stock)
		})
	}
}

func TestUpdateStatusErrors(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc, _ := newTestService(t, store)

	_, err := svc.UpdateStatus(ctx, UpdateStatusRequest{OrderID: 99, Status: "lost"})
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Zero(t, store.txCount)

	_, err = svc.UpdateStatus(ctx, UpdateStatusRequest{OrderID: 99, Status: StatusProcessing})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelRestoresStockOnce(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	seed(store)
	svc, _ := newTestService(t, store)
	o := placeOrder(t, svc, store, 42)
	require.Equal(t, 8, store.state.products[1].stock)
	require.Equal(t, 4, store.state.products[2].stock)

	cancelled, err := svc.Cancel(ctx, o.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, 10, store.state.products[1].stock)
	assert.Equal(t, 5, store.state.products[2].stock)

	last := cancelled.History[len(cancelled.History)-1]
	assert.Equal(t, "Cancelled by customer", last.Comment)
	assert.Equal(t, "user:42", last.Actor)
	assert.Equal(t, notify.KindCancelled, store.state.events[len(store.state.events)-1].Kind)

	_, err = svc.Cancel(ctx, o.ID, 42)
	require.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.UpdateStatus(ctx, UpdateStatusRequest{OrderID: o.ID, Status: StatusCancelled})
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 10, store.state.products[1].stock)
	assert.Equal(t, 5, store.state.products[2].stock)
}

func TestCancelOtherUsersOrder(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	seed(store)
	svc, _ := newTestService(t, store)
	o := placeOrder(t, svc, store, 42)

	_, err := svc.Cancel(ctx, o.ID, 43)
	require.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, 8, store.state.products[1].stock)
}

func TestReads(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	seed(store)
	store.state.products[1].stock = 100
	store.state.products[2].stock = 100
	svc, _ := newTestService(t, store)

	var mine []*Order
	for range 3 {
		mine = append(mine, placeOrder(t, svc, store, 42))
	}
	other := placeOrder(t, svc, store, 7)

	got, err := svc.GetForUser(ctx, mine[0].ID, 42)
	require.NoError(t, err)
	assert.Equal(t, mine[0].Number, got.Number)

	_, err = svc.GetForUser(ctx, other.ID, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.ListForUser(ctx, 42, ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, mine[2].ID, list[0].ID)

	list, err = svc.ListForUser(ctx, 42, ListFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine[1].ID, list[0].ID)

	_, err = svc.Cancel(ctx, mine[1].ID, 42)
	require.NoError(t, err)
	cancelled := StatusCancelled
	list, err = svc.ListForUser(ctx, 42, ListFilter{Status: &cancelled, Limit: 500})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine[1].ID, list[0].ID)
}
