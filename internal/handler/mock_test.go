package handler

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
)

type mockKeys struct {
	byHash map[string]*auth.APIKeyInfo
}

func (m *mockKeys) FindByHash(_ context.Context, hash string) (*auth.APIKeyInfo, error) {
	info, ok := m.byHash[hash]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return info, nil
}

type mockProducts struct {
	products []product.Product
	err      error
}

func (m *mockProducts) List(context.Context) ([]product.Product, error) {
	return m.products, m.err
}

func (m *mockProducts) GetByID(_ context.Context, id int64) (*product.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, product.ErrNotFound
}

type mockCart struct {
	items  []cart.Item
	err    error
	userID int64

	setProduct int64
	setQty     int
	removed    int64
}

func (m *mockCart) List(_ context.Context, userID int64) ([]cart.Item, error) {
	m.userID = userID
	return m.items, m.err
}

func (m *mockCart) Set(_ context.Context, userID, productID int64, qty int) (*cart.Item, error) {
	m.userID, m.setProduct, m.setQty = userID, productID, qty
	if m.err != nil {
		return nil, m.err
	}
	if qty <= 0 {
		return nil, &cart.QuantityError{ProductID: productID, Quantity: qty}
	}
	return &cart.Item{UserID: userID, ProductID: productID, Quantity: qty, PriceAtAdd: decimal.NewFromInt(200)}, nil
}

func (m *mockCart) Remove(_ context.Context, userID, productID int64) error {
	m.userID, m.removed = userID, productID
	return m.err
}

type mockOrders struct {
	order *order.Order
	err   error

	created   order.CreateRequest
	updated   order.UpdateStatusRequest
	filter    order.ListFilter
	userID    int64
	requested int64
}

func (m *mockOrders) result() (*order.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

func (m *mockOrders) CreateOrder(_ context.Context, req order.CreateRequest) (*order.Order, error) {
	m.created = req
	return m.result()
}

func (m *mockOrders) UpdateStatus(_ context.Context, req order.UpdateStatusRequest) (*order.Order, error) {
	m.updated = req
	return m.result()
}

func (m *mockOrders) Cancel(_ context.Context, orderID, userID int64) (*order.Order, error) {
	m.requested, m.userID = orderID, userID
	return m.result()
}

func (m *mockOrders) GetForUser(_ context.Context, id, userID int64) (*order.Order, error) {
	m.requested, m.userID = id, userID
	return m.result()
}

func (m *mockOrders) ListForUser(_ context.Context, userID int64, f order.ListFilter) ([]order.Order, error) {
	m.userID, m.filter = userID, f
	if m.err != nil {
		return nil, m.err
	}
	return []order.Order{*m.order}, nil
}

type mockCoupons struct {
	result  coupon.Result
	coupon  *coupon.Coupon
	err     error
	created coupon.CreateRequest

	code   string
	amount decimal.Decimal
	userID *int64
	used   [3]int64
	acted  int64
}

func (m *mockCoupons) Validate(_ context.Context, code string, amount decimal.Decimal, userID *int64) (coupon.Result, error) {
	m.code, m.amount, m.userID = code, amount, userID
	return m.result, m.err
}

func (m *mockCoupons) Use(_ context.Context, couponID, userID, orderID int64) error {
	m.used = [3]int64{couponID, userID, orderID}
	return m.err
}

func (m *mockCoupons) Create(_ context.Context, req coupon.CreateRequest) (*coupon.Coupon, error) {
	m.created = req
	if m.err != nil {
		return nil, m.err
	}
	return m.coupon, nil
}

func (m *mockCoupons) Get(_ context.Context, id int64) (*coupon.Coupon, error) {
	m.acted = id
	if m.err != nil {
		return nil, m.err
	}
	return m.coupon, nil
}

func (m *mockCoupons) List(context.Context) ([]coupon.Coupon, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []coupon.Coupon{*m.coupon}, nil
}

func (m *mockCoupons) Deactivate(_ context.Context, id int64) error {
	m.acted = id
	return m.err
}

func (m *mockCoupons) Delete(_ context.Context, id int64) error {
	m.acted = id
	return m.err
}
