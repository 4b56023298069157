package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/errors"
	ht "github.com/ogen-go/ogen/http"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/pkg/httpmiddleware"
)

type fixture struct {
	h        *Handler
	products *mockProducts
	cart     *mockCart
	orders   *mockOrders
	coupons  *mockCoupons
}

func newFixture() *fixture {
	f := &fixture{
		products: &mockProducts{products: []product.Product{{
			ID:            1,
			Name:          "Waffle",
			Price:         decimal.RequireFromString("6.5"),
			Category:      "Waffle",
			StockQuantity: 3,
			IsActive:      true,
			Image:         product.Image{Thumbnail: "/waffle-thumb.jpg"},
		}, {
			ID:       2,
			Name:     "Sold out",
			Price:    decimal.NewFromInt(1),
			IsActive: true,
		}}},
		cart:    &mockCart{},
		orders:  &mockOrders{order: testOrder()},
		coupons: &mockCoupons{coupon: testCoupon()},
	}
	f.h = New(Config{ImageBaseURL: "https://cdn.example.com"}, f.products, f.cart, f.orders, f.coupons)
	return f
}

func userCtx() context.Context {
	uid := int64(42)
	return auth.WithPrincipal(context.Background(), auth.Principal{
		KeyID:  "k-user",
		UserID: &uid,
		Scopes: []string{auth.ScopeOrders},
	})
}

func adminCtx() context.Context {
	return auth.WithPrincipal(context.Background(), auth.Principal{
		KeyID:  "k-admin",
		Scopes: []string{auth.ScopeAdmin},
	})
}

// requestCtx returns a context as seen by a handler behind the RequestID
// middleware.
func requestCtx(t *testing.T) context.Context {
	t.Helper()
	var ctx context.Context
	h := httpmiddleware.Wrap(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}), httpmiddleware.RequestID())
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.NotNil(t, ctx)
	return ctx
}

func testOrder() *order.Order {
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return &order.Order{
		ID:             7,
		Number:         "ORD1741608000001",
		UserID:         42,
		Status:         order.StatusPending,
		Items:          []order.Item{{ProductID: 1, ProductName: "Waffle", Quantity: 2, UnitPrice: decimal.NewFromInt(200), LineTotal: decimal.NewFromInt(400)}},
		Subtotal:       decimal.NewFromInt(400),
		TaxAmount:      decimal.NewFromInt(72),
		ShippingAmount: decimal.NewFromInt(50),
		DiscountAmount: decimal.Zero,
		TotalAmount:    decimal.NewFromInt(522),
		PaymentMethod:  order.PaymentCOD,
		ShippingAddress: order.Address{
			FullName: "Asha", Line1: "1 MG Road", City: "Delhi", State: "Delhi", PostalCode: "110001", Country: "India",
		},
		History:   []order.StatusChange{{Status: order.StatusPending, Comment: "Order placed successfully", Actor: "user:42", CreatedAt: created}},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func testCoupon() *coupon.Coupon {
	limit := 10
	return &coupon.Coupon{
		ID:                 3,
		Code:               "SAVE10",
		DiscountType:       coupon.DiscountPercentage,
		Value:              decimal.NewFromInt(10),
		MinimumOrderAmount: decimal.NewFromInt(500),
		UsageLimit:         &limit,
		ValidFrom:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:         time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:           true,
	}
}

func TestProducts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	list, err := f.h.ListProducts(ctx)
	require.NoError(t, err)
	assert.True(t, list.Success)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "Waffle", list.Data[0].Name)
	assert.True(t, list.Data[0].InStock)
	assert.False(t, list.Data[1].InStock)
	assert.Equal(t, "https://cdn.example.com/waffle-thumb.jpg", list.Data[0].Image.Thumbnail)

	got, err := f.h.GetProduct(ctx, oas.GetProductParams{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, 6.5, got.Data.Price)

	_, err = f.h.GetProduct(ctx, oas.GetProductParams{ID: 99})
	require.ErrorIs(t, err, product.ErrNotFound)
}

func TestSecurityHandler(t *testing.T) {
	const (
		userKey  = "user-key"
		adminKey = "admin-key"
	)
	pepper := []byte("pepper")
	uid := int64(42)
	keys := &mockKeys{byHash: map[string]*auth.APIKeyInfo{}}
	for _, info := range []*auth.APIKeyInfo{
		{ID: "k-user", KeyHash: auth.HashKey(pepper, userKey), UserID: &uid, Scopes: []string{auth.ScopeOrders}},
		{ID: "k-admin", KeyHash: auth.HashKey(pepper, adminKey), Scopes: []string{auth.ScopeAdmin}},
	} {
		keys.byHash[info.KeyHash] = info
	}
	s := NewSecurityHandler(auth.NewAuthenticator(keys, pepper))

	tests := []struct {
		name  string
		op    oas.OperationName
		key   string
		err   error
		keyID string
	}{
		{"user reads cart", "GetCart", userKey, nil, "k-user"},
		{"user creates order", "CreateOrder", userKey, nil, "k-user"},
		{"admin updates status", "UpdateOrderStatus", adminKey, nil, "k-admin"},
		{"lower-case operation name", "createCoupon", adminKey, nil, "k-admin"},
		{"missing key", "GetCart", "", auth.ErrUnauthorized, ""},
		{"unknown key", "GetCart", "nope", auth.ErrUnauthorized, ""},
		{"admin key lacks orders scope", "GetCart", adminKey, auth.ErrForbidden, ""},
		{"user key lacks admin scope", "ListCoupons", userKey, auth.ErrForbidden, ""},
		{"status update needs admin", "UpdateOrderStatus", userKey, auth.ErrForbidden, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := s.HandleAPIKey(context.Background(), tt.op, oas.APIKey{APIKey: tt.key})
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				_, ok := auth.PrincipalFrom(ctx)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			p, ok := auth.PrincipalFrom(ctx)
			require.True(t, ok)
			assert.Equal(t, tt.keyID, p.KeyID)
		})
	}
}

func TestCart(t *testing.T) {
	f := newFixture()
	ctx := userCtx()

	item, err := f.h.SetCartItem(ctx, &oas.SetCartItemRequest{ProductId: 1, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(42), f.cart.userID)
	assert.Equal(t, int64(1), f.cart.setProduct)
	assert.Equal(t, 2, f.cart.setQty)
	assert.Equal(t, 200.0, item.Data.PriceAtAdd)

	_, err = f.h.SetCartItem(ctx, &oas.SetCartItemRequest{ProductId: 1, Quantity: 0})
	var qErr *cart.QuantityError
	require.ErrorAs(t, err, &qErr)

	f.cart.items = []cart.Item{{UserID: 42, ProductID: 1, Quantity: 2, PriceAtAdd: decimal.NewFromInt(200)}}
	items, err := f.h.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, items.Data, 1)
	assert.Equal(t, int64(1), items.Data[0].ProductId)

	res, err := f.h.RemoveCartItem(ctx, oas.RemoveCartItemParams{ProductId: 5})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, int64(5), f.cart.removed)

	f.cart.err = cart.ErrItemNotFound
	_, err = f.h.RemoveCartItem(ctx, oas.RemoveCartItemParams{ProductId: 5})
	require.ErrorIs(t, err, cart.ErrItemNotFound)
}

func TestCartNeedsUser(t *testing.T) {
	f := newFixture()

	_, err := f.h.GetCart(context.Background())
	require.ErrorIs(t, err, auth.ErrUnauthorized)

	_, err = f.h.GetCart(adminCtx())
	require.ErrorIs(t, err, errNoUser)
}

func TestCreateOrder(t *testing.T) {
	f := newFixture()

	res, err := f.h.CreateOrder(userCtx(), &oas.CreateOrderRequest{
		ShippingAddress: oas.Address{
			FullName:   "Asha",
			Line1:      "1 MG Road",
			City:       "Delhi",
			State:      "Delhi",
			PostalCode: "110001",
			Country:    oas.NewOptString("India"),
		},
		CouponCode:    oas.NewOptString("save10"),
		PaymentMethod: "cod",
		Notes:         oas.NewOptString("ring twice"),
	})
	require.NoError(t, err)

	req := f.orders.created
	assert.Equal(t, int64(42), req.UserID)
	assert.Equal(t, "Delhi", req.ShippingAddress.State)
	assert.Equal(t, "India", req.ShippingAddress.Country)
	assert.Empty(t, req.ShippingAddress.Line2)
	assert.Nil(t, req.BillingAddress)
	assert.Equal(t, "save10", req.CouponCode)
	assert.Equal(t, order.PaymentCOD, req.PaymentMethod)
	assert.Equal(t, "ring twice", req.Notes)

	data := res.Data
	assert.Equal(t, "ORD1741608000001", data.OrderNumber)
	assert.Equal(t, "pending", data.Status)
	assert.Equal(t, 522.0, data.TotalAmount)
	assert.Equal(t, 0.0, data.DiscountAmount)
	assert.False(t, data.TrackingNumber.IsSet())
	require.Len(t, data.StatusHistory, 1)
	assert.Equal(t, "Order placed successfully", data.StatusHistory[0].Comment)

	_, err = f.h.CreateOrder(userCtx(), &oas.CreateOrderRequest{
		PaymentMethod:  "card",
		BillingAddress: oas.NewOptAddress(oas.Address{FullName: "Ravi", Line1: "2 Park St", City: "Kolkata", State: "WB", PostalCode: "700016"}),
	})
	require.NoError(t, err)
	require.NotNil(t, f.orders.created.BillingAddress)
	assert.Equal(t, "Ravi", f.orders.created.BillingAddress.FullName)
}

func TestNewError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"unauthorized", auth.ErrUnauthorized, http.StatusUnauthorized, "invalid or missing API key"},
		{"key without user", errNoUser, http.StatusForbidden, "api key is not bound to a user"},
		{"empty cart", order.ErrEmptyCart, http.StatusBadRequest, "cart is empty"},
		{"unknown status", errors.Wrap(order.ErrUnknownStatus, `"lost"`), http.StatusBadRequest, "unknown order status"},
		{"quantity", &cart.QuantityError{ProductID: 1, Quantity: 0}, http.StatusBadRequest, "quantity must be greater than 0 for product 1, got 0"},
		{"cart above stock", &cart.StockError{ProductName: "Waffle", Requested: 5, Available: 3}, http.StatusConflict, "only 3 of Waffle in stock, requested 5"},
		{"address", &order.AddressError{Kind: "shipping", Field: "postalCode"}, http.StatusBadRequest, "shipping address: postalCode is required"},
		{"coupon rejected", &order.CouponRejectedError{Code: "SAVE10", Reason: "Coupon has expired"}, http.StatusBadRequest, "Coupon has expired"},
		{"stock", &order.InsufficientStockError{ProductName: "Waffle", Requested: 5, Available: 1}, http.StatusConflict, "insufficient stock for Waffle: requested 5, available 1"},
		{"withdrawn", &order.ProductUnavailableError{ProductName: "Waffle"}, http.StatusConflict, "product Waffle is no longer available"},
		{"transition", &order.TransitionError{From: order.StatusDelivered, To: order.StatusCancelled}, http.StatusConflict, "invalid status transition from delivered to cancelled"},
		{"product", product.ErrNotFound, http.StatusNotFound, "product not found"},
		{"order", order.ErrNotFound, http.StatusNotFound, "order not found"},
		{"coupon in use", coupon.ErrInUse, http.StatusConflict, "coupon has been used, deactivate it instead"},
		{"already used", coupon.ErrAlreadyUsed, http.StatusConflict, "coupon already used by this user"},
		{"numbers exhausted", order.ErrOrderNumberExhausted, http.StatusServiceUnavailable, "order could not be placed, please retry"},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, "internal error"},
	}
	h := newFixture().h
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), errors.Wrap(tt.err, "create order"))
			assert.Equal(t, tt.code, res.StatusCode)
			assert.False(t, res.Response.Success)
			assert.Equal(t, tt.message, res.Response.Message)
			assert.NotContains(t, res.Response.Message, "connection reset")
		})
	}
}

func TestNewErrorRequestID(t *testing.T) {
	h := newFixture().h
	ctx := requestCtx(t)

	res := h.NewError(ctx, errors.New("pool closed"))
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	id, ok := res.Response.RequestId.Get()
	require.True(t, ok)
	assert.Equal(t, httpmiddleware.RequestIDFromContext(ctx), id)

	res = h.NewError(ctx, product.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.False(t, res.Response.RequestId.IsSet())
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"missing key", &ogenerrors.SecurityError{Security: "APIKey", Err: auth.ErrUnauthorized}, http.StatusUnauthorized, "invalid or missing API key"},
		{"scope", &ogenerrors.SecurityError{Security: "APIKey", Err: auth.ErrForbidden}, http.StatusForbidden, "forbidden"},
		{"params", &ogenerrors.DecodeParamsError{Err: errors.New("id: invalid")}, http.StatusBadRequest, "invalid request parameters"},
		{"body", &ogenerrors.DecodeRequestError{Err: errors.New("unexpected EOF")}, http.StatusBadRequest, "malformed request body"},
		{"not implemented", ht.ErrNotImplemented, http.StatusNotImplemented, "not implemented"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil), tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, httptest.NewRequest(http.MethodGet, "/api/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"route not found"}`, rec.Body.String())
}

func TestOrderReads(t *testing.T) {
	f := newFixture()
	ctx := userCtx()

	_, err := f.h.ListOrders(ctx, oas.ListOrdersParams{
		Status: oas.NewOptString("SHIPPED"),
		Limit:  oas.NewOptInt(5),
		Offset: oas.NewOptInt(10),
	})
	require.NoError(t, err)
	require.NotNil(t, f.orders.filter.Status)
	assert.Equal(t, order.StatusShipped, *f.orders.filter.Status)
	assert.Equal(t, 5, f.orders.filter.Limit)
	assert.Equal(t, 10, f.orders.filter.Offset)

	_, err = f.h.ListOrders(ctx, oas.ListOrdersParams{})
	require.NoError(t, err)
	assert.Nil(t, f.orders.filter.Status)
	assert.Zero(t, f.orders.filter.Limit)

	_, err = f.h.ListOrders(ctx, oas.ListOrdersParams{Status: oas.NewOptString("lost")})
	require.ErrorIs(t, err, order.ErrUnknownStatus)

	got, err := f.h.GetOrder(ctx, oas.GetOrderParams{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Data.ID)
	assert.Equal(t, int64(7), f.orders.requested)
	assert.Equal(t, int64(42), f.orders.userID)

	f.orders.err = order.ErrNotFound
	_, err = f.h.GetOrder(ctx, oas.GetOrderParams{ID: 8})
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestCancelOrder(t *testing.T) {
	f := newFixture()
	cancelled := testOrder()
	cancelled.Status = order.StatusCancelled
	f.orders.order = cancelled

	res, err := f.h.CancelOrder(userCtx(), oas.CancelOrderParams{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", res.Data.Status)
	assert.Equal(t, int64(7), f.orders.requested)
	assert.Equal(t, int64(42), f.orders.userID)
}

func TestUpdateOrderStatus(t *testing.T) {
	shipped := testOrder()
	shipped.Status = order.StatusShipped
	tracking := "TRK9"
	shipped.TrackingNumber = &tracking

	tests := []struct {
		name   string
		status string
		want   order.Status
	}{
		{"lower case", "shipped", order.StatusShipped},
		{"title case", "Shipped", order.StatusShipped},
		{"padded upper case", " PROCESSING ", order.StatusProcessing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.orders.order = shipped

			res, err := f.h.UpdateOrderStatus(adminCtx(), &oas.UpdateOrderStatusRequest{
				Status:         tt.status,
				TrackingNumber: oas.NewOptString("TRK9"),
				Comment:        oas.NewOptString("via courier"),
			}, oas.UpdateOrderStatusParams{ID: 7})
			require.NoError(t, err)
			assert.Equal(t, order.UpdateStatusRequest{
				OrderID:        7,
				Status:         tt.want,
				TrackingNumber: "TRK9",
				Comment:        "via courier",
				Actor:          "api_key:k-admin",
			}, f.orders.updated)
			assert.Equal(t, "TRK9", res.Data.TrackingNumber.Or(""))
		})
	}

	f := newFixture()
	_, err := f.h.UpdateOrderStatus(adminCtx(), &oas.UpdateOrderStatusRequest{Status: "lost"}, oas.UpdateOrderStatusParams{ID: 7})
	require.ErrorIs(t, err, order.ErrUnknownStatus)
	assert.Equal(t, http.StatusBadRequest, f.h.NewError(context.Background(), err).StatusCode)
	assert.Zero(t, f.orders.updated.OrderID, "service must not be called")

	f.orders.err = order.ErrTrackingNumberRequired
	_, err = f.h.UpdateOrderStatus(adminCtx(), &oas.UpdateOrderStatusRequest{Status: "shipped"}, oas.UpdateOrderStatusParams{ID: 7})
	require.ErrorIs(t, err, order.ErrTrackingNumberRequired)
}

func TestValidateCoupon(t *testing.T) {
	f := newFixture()
	f.coupons.result = coupon.Result{Valid: true, Discount: decimal.NewFromInt(100), CouponID: 3, Code: "SAVE10"}

	res, err := f.h.ValidateCoupon(userCtx(), &oas.ValidateCouponRequest{Code: "save10", OrderAmount: 1180})
	require.NoError(t, err)
	assert.Equal(t, "save10", f.coupons.code)
	assert.True(t, decimal.NewFromInt(1180).Equal(f.coupons.amount))
	require.NotNil(t, f.coupons.userID)
	assert.Equal(t, int64(42), *f.coupons.userID)
	assert.True(t, res.Data.Valid)
	assert.Equal(t, 100.0, res.Data.Discount)
	assert.Equal(t, "SAVE10", res.Data.Code.Or(""))
	assert.Equal(t, int64(3), res.Data.CouponId.Or(0))

	f.coupons.result = coupon.Result{Discount: decimal.Zero, Message: coupon.MsgExpired}
	res, err = f.h.ValidateCoupon(adminCtx(), &oas.ValidateCouponRequest{Code: "OLD", OrderAmount: 250.5})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("250.5").Equal(f.coupons.amount))
	assert.Nil(t, f.coupons.userID, "keys without a user validate anonymously")
	assert.False(t, res.Data.Valid)
	assert.Equal(t, coupon.MsgExpired, res.Data.Message.Or(""))
	assert.False(t, res.Data.CouponId.IsSet())
}

func TestUseCoupon(t *testing.T) {
	f := newFixture()
	res, err := f.h.UseCoupon(userCtx(), &oas.UseCouponRequest{OrderId: 7}, oas.UseCouponParams{ID: 3})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, [3]int64{3, 42, 7}, f.coupons.used)

	f.coupons.err = coupon.ErrAlreadyUsed
	_, err = f.h.UseCoupon(userCtx(), &oas.UseCouponRequest{OrderId: 7}, oas.UseCouponParams{ID: 3})
	require.ErrorIs(t, err, coupon.ErrAlreadyUsed)
}

func TestCouponAdmin(t *testing.T) {
	f := newFixture()
	ctx := adminCtx()

	created, err := f.h.CreateCoupon(ctx, &oas.CreateCouponRequest{
		Code:               "summer",
		DiscountType:       "percentage",
		DiscountValue:      15,
		MinimumOrderAmount: oas.NewOptFloat64(300),
		UsageLimit:         oas.NewOptInt(50),
		ValidFrom:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:         time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", created.Data.Code)
	req := f.coupons.created
	assert.Equal(t, "summer", req.Code)
	assert.Equal(t, coupon.DiscountPercentage, req.DiscountType)
	assert.True(t, decimal.NewFromInt(15).Equal(req.Value))
	assert.True(t, decimal.NewFromInt(300).Equal(req.MinimumOrderAmount))
	assert.Nil(t, req.MaximumDiscountAmount)
	require.NotNil(t, req.UsageLimit)
	assert.Equal(t, 50, *req.UsageLimit)
	assert.Equal(t, time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC), req.ValidUntil)

	_, err = f.h.CreateCoupon(ctx, &oas.CreateCouponRequest{
		Code:                  "CAP",
		DiscountType:          "percentage",
		DiscountValue:         20,
		MaximumDiscountAmount: oas.NewOptFloat64(99.5),
	})
	require.NoError(t, err)
	require.NotNil(t, f.coupons.created.MaximumDiscountAmount)
	assert.True(t, decimal.RequireFromString("99.5").Equal(*f.coupons.created.MaximumDiscountAmount))
	assert.True(t, f.coupons.created.MinimumOrderAmount.IsZero())

	list, err := f.h.ListCoupons(ctx)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "SAVE10", list.Data[0].Code)
	assert.False(t, list.Data[0].MaximumDiscountAmount.IsSet())
	assert.Equal(t, 10, list.Data[0].UsageLimit.Or(0))

	_, err = f.h.GetCoupon(ctx, oas.GetCouponParams{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.coupons.acted)

	_, err = f.h.DeactivateCoupon(ctx, oas.DeactivateCouponParams{ID: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(4), f.coupons.acted)

	f.coupons.err = coupon.ErrInUse
	_, err = f.h.DeleteCoupon(ctx, oas.DeleteCouponParams{ID: 5})
	require.ErrorIs(t, err, coupon.ErrInUse)
	assert.Equal(t, int64(5), f.coupons.acted)
}
