//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notify"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/domain/user"
	"github.com/xenking/storefront/internal/storage/postgres"
)

type nopOutbox struct{}

func (nopOutbox) Wake() {}

var address = order.Address{
	FullName:   "Asha Rao",
	Phone:      "+91 98450 00000",
	Line1:      "12 MG Road",
	City:       "Bengaluru",
	State:      "Karnataka",
	PostalCode: "560001",
	Country:    "IN",
}

// suffix keeps rows created by different tests apart.
func suffix() string {
	return uuid.NewString()[:8]
}

func seedUser(t *testing.T) *user.User {
	t.Helper()
	u := &user.User{Email: "buyer-" + suffix() + "@example.com", Name: "Buyer"}
	require.NoError(t, postgres.NewUserRepository(testPool).Upsert(context.Background(), u))
	return u
}

func seedProduct(t *testing.T, price int64, stock int) *product.Product {
	t.Helper()
	p := &product.Product{
		Name:          "Product " + suffix(),
		Price:         decimal.NewFromInt(price),
		Category:      "Test",
		StockQuantity: stock,
		IsActive:      true,
	}
	require.NoError(t, postgres.NewProductRepository(testPool).Upsert(context.Background(), p))
	return p
}

func addToCart(t *testing.T, userID int64, p *product.Product, qty int) {
	t.Helper()
	require.NoError(t, postgres.NewCartRepository(testPool).Upsert(context.Background(), cart.Item{
		UserID:     userID,
		ProductID:  p.ID,
		Quantity:   qty,
		PriceAtAdd: p.Price,
		AddedAt:    time.Now(),
	}))
}

func stockOf(t *testing.T, id int64) int {
	t.Helper()
	p, err := postgres.NewProductRepository(testPool).GetByID(context.Background(), id)
	require.NoError(t, err)
	return p.StockQuantity
}

func newOrderService(t *testing.T) *order.Service {
	t.Helper()
	svc, err := order.NewService(postgres.NewOrderStore(testPool), nopOutbox{})
	require.NoError(t, err)
	return svc
}

func eventsFor(t *testing.T, orderID int64) []notify.Event {
	t.Helper()
	// A stale-before in the future takes over leases left by earlier tests.
	all, err := postgres.NewOutboxStore(testPool).Claim(context.Background(), 1000, time.Now().Add(time.Hour))
	require.NoError(t, err)
	var out []notify.Event
	for _, e := range all {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out
}

func TestCheckoutLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService(t)
	u := seedUser(t)
	p := seedProduct(t, 400, 10)
	addToCart(t, u.ID, p, 3)

	maxDiscount := decimal.NewFromInt(100)
	c := &coupon.Coupon{
		Code:                  "LIFE" + suffix(),
		DiscountType:          coupon.DiscountPercentage,
		Value:                 decimal.NewFromInt(10),
		MinimumOrderAmount:    decimal.NewFromInt(500),
		MaximumDiscountAmount: &maxDiscount,
		ValidFrom:             time.Now().Add(-time.Hour),
		ValidUntil:            time.Now().Add(time.Hour),
		IsActive:              true,
	}
	c.Code = coupon.NormalizeCode(c.Code)
	coupons := postgres.NewCouponStore(testPool)
	require.NoError(t, coupons.Upsert(ctx, c))

	o, err := svc.CreateOrder(ctx, order.CreateRequest{
		UserID:          u.ID,
		ShippingAddress: address,
		CouponCode:      c.Code,
		PaymentMethod:   order.PaymentCOD,
		Notes:           "leave at the door",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^ORD\d{13}$`, o.Number)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.True(t, o.Subtotal.Equal(decimal.NewFromInt(1200)))
	assert.True(t, o.DiscountAmount.Equal(maxDiscount), "discount capped at maximum")
	assert.True(t, o.TotalAmount.Equal(o.Subtotal.Add(o.TaxAmount).Add(o.ShippingAmount).Sub(o.DiscountAmount)))

	assert.Equal(t, 7, stockOf(t, p.ID))
	items, err := postgres.NewCartRepository(testPool).List(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, items, "cart cleared")

	stored, err := coupons.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UsedCount)
	used, err := coupons.HasUsage(ctx, c.ID, u.ID)
	require.NoError(t, err)
	assert.True(t, used)

	got, err := svc.GetForUser(ctx, o.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Number, got.Number)
	require.Len(t, got.Items, 1)
	assert.Equal(t, p.Name, got.Items[0].ProductName)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.Equal(t, address, got.ShippingAddress)
	assert.Equal(t, address, got.BillingAddress, "billing defaults to shipping")
	assert.Equal(t, c.Code, got.CouponCode)
	assert.Equal(t, "leave at the door", got.Notes)
	require.Len(t, got.History, 1)

	_, err = svc.GetForUser(ctx, o.ID, u.ID+1000)
	assert.ErrorIs(t, err, order.ErrNotFound)

	events := eventsFor(t, o.ID)
	require.Len(t, events, 1)
	assert.Equal(t, notify.KindOrderPlaced, events[0].Kind)
	assert.True(t, events[0].Total.Equal(o.TotalAmount))

	outbox := postgres.NewOutboxStore(testPool)
	oldest, pending, err := outbox.OldestPending(ctx)
	require.NoError(t, err)
	require.True(t, pending, "claimed events stay pending until dispatched")
	assert.False(t, oldest.After(events[0].CreatedAt))

	require.NoError(t, outbox.MarkDispatched(ctx, events[0].ID, ""))
	assert.Empty(t, eventsFor(t, o.ID), "dispatched events are not claimed again")

	_, err = svc.UpdateStatus(ctx, order.UpdateStatusRequest{OrderID: o.ID, Status: order.StatusProcessing, Actor: "admin"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, order.UpdateStatusRequest{OrderID: o.ID, Status: order.StatusShipped, Actor: "admin"})
	assert.ErrorIs(t, err, order.ErrTrackingNumberRequired)
	_, err = svc.UpdateStatus(ctx, order.UpdateStatusRequest{
		OrderID: o.ID, Status: order.StatusShipped, TrackingNumber: "TRK123", Actor: "admin",
	})
	require.NoError(t, err)
	delivered, err := svc.UpdateStatus(ctx, order.UpdateStatusRequest{OrderID: o.ID, Status: order.StatusDelivered, Actor: "admin"})
	require.NoError(t, err)
	require.NotNil(t, delivered.DeliveredAt)

	_, err = svc.Cancel(ctx, o.ID, u.ID)
	var terr *order.TransitionError
	require.ErrorAs(t, err, &terr)

	got, err = svc.GetForUser(ctx, o.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, got.Status)
	require.NotNil(t, got.TrackingNumber)
	assert.Equal(t, "TRK123", *got.TrackingNumber)
	statuses := make([]order.Status, 0, len(got.History))
	for _, h := range got.History {
		statuses = append(statuses, h.Status)
	}
	assert.Equal(t, []order.Status{
		order.StatusPending, order.StatusProcessing, order.StatusShipped, order.StatusDelivered,
	}, statuses)

	kinds := make([]notify.Kind, 0, 3)
	for _, e := range eventsFor(t, o.ID) {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []notify.Kind{notify.KindStatusChanged, notify.KindShipped, notify.KindDelivered}, kinds)

	// The coupon was redeemed by this user already.
	addToCart(t, u.ID, p, 2)
	_, err = svc.CreateOrder(ctx, order.CreateRequest{
		UserID: u.ID, ShippingAddress: address, CouponCode: c.Code, PaymentMethod: order.PaymentCard,
	})
	var rejected *order.CouponRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 7, stockOf(t, p.ID), "rejected checkout rolls back")
}

func TestCancelRestoresStock(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService(t)
	u := seedUser(t)
	p := seedProduct(t, 250, 5)
	addToCart(t, u.ID, p, 2)

	o, err := svc.CreateOrder(ctx, order.CreateRequest{UserID: u.ID, ShippingAddress: address, PaymentMethod: order.PaymentUPI})
	require.NoError(t, err)
	assert.Equal(t, 3, stockOf(t, p.ID))

	_, err = svc.Cancel(ctx, o.ID, u.ID+1000)
	assert.ErrorIs(t, err, order.ErrNotFound)

	cancelled, err := svc.Cancel(ctx, o.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, cancelled.Status)
	assert.Equal(t, 5, stockOf(t, p.ID))

	orders, err := svc.ListForUser(ctx, u.ID, order.ListFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.StatusCancelled, orders[0].Status)

	pending := order.StatusPending
	orders, err = svc.ListForUser(ctx, u.ID, order.ListFilter{Status: &pending})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := newOrderService(t)
	u := seedUser(t)

	_, err := svc.CreateOrder(context.Background(), order.CreateRequest{
		UserID: u.ID, ShippingAddress: address, PaymentMethod: order.PaymentCOD,
	})
	assert.ErrorIs(t, err, order.ErrEmptyCart)
}

func TestConcurrentCheckoutsDoNotOversell(t *testing.T) {
	ctx := context.Background()
	svc := newOrderService(t)
	p := seedProduct(t, 100, 1)

	const buyers = 5
	users := make([]*user.User, buyers)
	for i := range users {
		users[i] = seedUser(t)
		addToCart(t, users[i].ID, p, 1)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		placed   int
		shortage int
	)
	for _, u := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateOrder(ctx, order.CreateRequest{
				UserID: u.ID, ShippingAddress: address, PaymentMethod: order.PaymentCOD,
			})
			mu.Lock()
			defer mu.Unlock()
			var serr *order.InsufficientStockError
			switch {
			case err == nil:
				placed++
			case errors.As(err, &serr):
				shortage++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, placed)
	assert.Equal(t, buyers-1, shortage)
	assert.Equal(t, 0, stockOf(t, p.ID))
}

func TestCouponStore(t *testing.T) {
	ctx := context.Background()
	store := postgres.NewCouponStore(testPool)
	svc := coupon.NewService(store)

	limit := 1
	c := &coupon.Coupon{
		Code:               coupon.NormalizeCode("once" + suffix()),
		Description:        "single use",
		DiscountType:       coupon.DiscountFixedAmount,
		Value:              decimal.NewFromInt(50),
		MinimumOrderAmount: decimal.NewFromInt(100),
		UsageLimit:         &limit,
		ValidFrom:          time.Now().Add(-time.Hour),
		ValidUntil:         time.Now().Add(time.Hour),
		IsActive:           true,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	require.NoError(t, store.Create(ctx, c))

	dup := *c
	assert.ErrorIs(t, store.Create(ctx, &dup), coupon.ErrCodeTaken)

	found, err := store.FindByCode(ctx, c.Code)
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)
	require.NotNil(t, found.UsageLimit)
	assert.Equal(t, 1, *found.UsageLimit)
	assert.Nil(t, found.MaximumDiscountAmount)

	res, err := svc.Validate(ctx, c.Code, decimal.NewFromInt(300), nil)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.True(t, res.Discount.Equal(decimal.NewFromInt(50)))

	// Redeem against a real order of the first buyer.
	first := seedUser(t)
	p := seedProduct(t, 100, 10)
	addToCart(t, first.ID, p, 1)
	o, err := newOrderService(t).CreateOrder(ctx, order.CreateRequest{
		UserID: first.ID, ShippingAddress: address, PaymentMethod: order.PaymentCOD,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Use(ctx, c.ID, first.ID+1000, o.ID), coupon.ErrOrderNotFound)
	require.NoError(t, svc.Use(ctx, c.ID, first.ID, o.ID))

	second := seedUser(t)
	assert.ErrorIs(t, store.RecordUsage(ctx, coupon.Usage{
		CouponID: c.ID, UserID: second.ID, OrderID: o.ID, UsedAt: time.Now(),
	}), coupon.ErrUsageLimitReached)

	res, err = svc.Validate(ctx, c.Code, decimal.NewFromInt(300), nil)
	require.NoError(t, err)
	assert.False(t, res.Valid)

	assert.ErrorIs(t, svc.Delete(ctx, c.ID), coupon.ErrInUse)
	require.NoError(t, svc.Deactivate(ctx, c.ID))
	found, err = store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	// Re-importing the code redefines it but keeps its usage and leaves a
	// deactivated coupon inactive.
	redefined := *c
	redefined.Value = decimal.NewFromInt(75)
	redefined.IsActive = true
	require.NoError(t, store.Upsert(ctx, &redefined))
	assert.Equal(t, c.ID, redefined.ID)
	assert.False(t, redefined.IsActive)
	found, err = store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
	assert.True(t, found.Value.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, 1, found.UsedCount)

	// A raised limit applies; a limit below the used count is clamped to it.
	raised, lowered := 5, 1
	redefined.UsageLimit = &raised
	require.NoError(t, store.Upsert(ctx, &redefined))
	require.NoError(t, store.RecordUsage(ctx, coupon.Usage{
		CouponID: c.ID, UserID: second.ID, OrderID: o.ID, UsedAt: time.Now(),
	}))
	redefined.UsageLimit = &lowered
	require.NoError(t, store.Upsert(ctx, &redefined))
	require.NotNil(t, redefined.UsageLimit)
	assert.Equal(t, 2, *redefined.UsageLimit)
	found, err = store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, found.UsageLimit)
	assert.Equal(t, 2, *found.UsageLimit)
	assert.Equal(t, 2, found.UsedCount)

	redefined.UsageLimit = nil
	require.NoError(t, store.Upsert(ctx, &redefined))
	found, err = store.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, found.UsageLimit)

	unused := &coupon.Coupon{
		Code:         coupon.NormalizeCode("gone" + suffix()),
		DiscountType: coupon.DiscountPercentage,
		Value:        decimal.NewFromInt(5),
		ValidFrom:    time.Now(),
		ValidUntil:   time.Now().Add(time.Hour),
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, store.Create(ctx, unused))
	require.NoError(t, svc.Delete(ctx, unused.ID))
	assert.ErrorIs(t, svc.Delete(ctx, unused.ID), coupon.ErrNotFound)
}

func TestAPIKeyLookup(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewAPIKeyRepository(testPool)
	u := seedUser(t)
	pepper := []byte("pepper")
	id := "key-" + suffix()

	require.NoError(t, repo.Upsert(ctx, auth.APIKeyInfo{
		ID:      id,
		KeyHash: auth.HashKey(pepper, "secret-"+id),
		Name:    "integration",
		UserID:  &u.ID,
		Scopes:  []string{auth.ScopeOrders},
	}))

	authn := auth.NewAuthenticator(repo, pepper)
	p, err := authn.Authenticate(ctx, "secret-"+id)
	require.NoError(t, err)
	assert.Equal(t, id, p.KeyID)
	require.NotNil(t, p.UserID)
	assert.Equal(t, u.ID, *p.UserID)
	assert.True(t, p.Has(auth.ScopeOrders))
	assert.False(t, p.Has(auth.ScopeAdmin))

	_, err = authn.Authenticate(ctx, fmt.Sprintf("wrong-%s", id))
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}
