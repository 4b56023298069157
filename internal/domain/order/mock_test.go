package order

import (
	"context"
	"sort"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notify"
)

type mockProduct struct {
	name   string
	price  string
	stock  int
	active bool
}

type mockCartItem struct {
	productID int64
	qty       int
}

// mockStore is an in-memory Store. InTx works on a copy of the state and
// only publishes it when fn succeeds.
type mockStore struct {
	state *mockState

	// takenNumbers makes InsertOrder report a collision for these numbers.
	takenNumbers map[string]bool
	// stealStock is subtracted from stock right before DecrementStock runs,
	// simulating a concurrent checkout.
	stealStock map[int64]int
	cartErr    error
	txCount    int
}

type mockState struct {
	products map[int64]*mockProduct
	carts    map[int64][]mockCartItem
	orders   map[int64]*Order
	events   []notify.Event
	coupons  map[string]*coupon.Coupon
	usages   []coupon.Usage
	nextID   int64
}

func newMockStore() *mockStore {
	return &mockStore{
		state: &mockState{
			products: make(map[int64]*mockProduct),
			carts:    make(map[int64][]mockCartItem),
			orders:   make(map[int64]*Order),
			coupons:  make(map[string]*coupon.Coupon),
		},
		takenNumbers: make(map[string]bool),
		stealStock:   make(map[int64]int),
	}
}

func (s *mockState) clone() *mockState {
	c := &mockState{
		products: make(map[int64]*mockProduct, len(s.products)),
		carts:    make(map[int64][]mockCartItem, len(s.carts)),
		orders:   make(map[int64]*Order, len(s.orders)),
		events:   append([]notify.Event(nil), s.events...),
		coupons:  make(map[string]*coupon.Coupon, len(s.coupons)),
		usages:   append([]coupon.Usage(nil), s.usages...),
		nextID:   s.nextID,
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for uid, items := range s.carts {
		c.carts[uid] = append([]mockCartItem(nil), items...)
	}
	for id, o := range s.orders {
		c.orders[id] = cloneOrder(o)
	}
	for code, cp := range s.coupons {
		v := *cp
		c.coupons[code] = &v
	}
	return c
}

func cloneOrder(o *Order) *Order {
	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	cp.History = append([]StatusChange(nil), o.History...)
	return &cp
}

func (m *mockStore) InTx(_ context.Context, fn func(tx Tx) error) error {
	m.txCount++
	tx := &mockTx{store: m, state: m.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	m.state = tx.state
	return nil
}

func (m *mockStore) Get(_ context.Context, id int64) (*Order, error) {
	o, ok := m.state.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneOrder(o), nil
}

func (m *mockStore) ListByUser(_ context.Context, userID int64, f ListFilter) ([]Order, error) {
	var out []Order
	for _, o := range m.state.orders {
		if o.UserID != userID {
			continue
		}
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		out = append(out, *cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if f.Offset >= len(out) {
		return nil, nil
	}
	out = out[f.Offset:]
	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

type mockTx struct {
	store *mockStore
	state *mockState
}

func (t *mockTx) CartLines(_ context.Context, userID int64) ([]CartLine, error) {
	if t.store.cartErr != nil {
		return nil, t.store.cartErr
	}
	var lines []CartLine
	for _, it := range t.state.carts[userID] {
		p := t.state.products[it.productID]
		lines = append(lines, CartLine{
			ProductID:     it.productID,
			ProductName:   p.name,
			Quantity:      it.qty,
			UnitPrice:     dec(p.price),
			StockQuantity: p.stock,
			IsActive:      p.active,
		})
	}
	return lines, nil
}

func (t *mockTx) ClearCart(_ context.Context, userID int64) error {
	delete(t.state.carts, userID)
	return nil
}

func (t *mockTx) DecrementStock(_ context.Context, productID int64, qty int) (bool, error) {
	p, ok := t.state.products[productID]
	if !ok {
		return false, nil
	}
	p.stock -= t.store.stealStock[productID]
	t.store.stealStock[productID] = 0
	if p.stock < qty {
		return false, nil
	}
	p.stock -= qty
	return true, nil
}

func (t *mockTx) RestoreStock(_ context.Context, productID int64, qty int) error {
	p, ok := t.state.products[productID]
	if !ok {
		return errors.Errorf("product %d missing", productID)
	}
	p.stock += qty
	return nil
}

func (t *mockTx) InsertOrder(_ context.Context, o *Order) (bool, error) {
	if t.store.takenNumbers[o.Number] {
		return false, nil
	}
	for _, prev := range t.state.orders {
		if prev.Number == o.Number {
			return false, nil
		}
	}
	t.state.nextID++
	o.ID = t.state.nextID
	t.state.orders[o.ID] = cloneOrder(o)
	return true, nil
}

func (t *mockTx) LockOrder(_ context.Context, id int64) (*Order, error) {
	o, ok := t.state.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneOrder(o), nil
}

func (t *mockTx) UpdateOrder(_ context.Context, o *Order) error {
	cur, ok := t.state.orders[o.ID]
	if !ok {
		return ErrNotFound
	}
	cur.Status = o.Status
	cur.TrackingNumber = o.TrackingNumber
	cur.DeliveredAt = o.DeliveredAt
	cur.UpdatedAt = o.UpdatedAt
	return nil
}

func (t *mockTx) AppendHistory(_ context.Context, orderID int64, ch StatusChange) error {
	cur, ok := t.state.orders[orderID]
	if !ok {
		return ErrNotFound
	}
	cur.History = append(cur.History, ch)
	return nil
}

func (t *mockTx) Enqueue(_ context.Context, e notify.Event) error {
	t.state.events = append(t.state.events, e)
	return nil
}

func (t *mockTx) Coupons() coupon.Repository { return mockCoupons{t.state} }

type mockCoupons struct{ state *mockState }

func (c mockCoupons) FindByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	cp, ok := c.state.coupons[code]
	if !ok {
		return nil, coupon.ErrNotFound
	}
	v := *cp
	return &v, nil
}

func (c mockCoupons) HasUsage(_ context.Context, couponID, userID int64) (bool, error) {
	for _, u := range c.state.usages {
		if u.CouponID == couponID && u.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (c mockCoupons) RecordUsage(ctx context.Context, u coupon.Usage) error {
	for _, cp := range c.state.coupons {
		if cp.ID != u.CouponID {
			continue
		}
		if cp.UsageLimit != nil && cp.UsedCount >= *cp.UsageLimit {
			return coupon.ErrUsageLimitReached
		}
		if used, _ := c.HasUsage(ctx, u.CouponID, u.UserID); used {
			return coupon.ErrAlreadyUsed
		}
		cp.UsedCount++
		c.state.usages = append(c.state.usages, u)
		return nil
	}
	return coupon.ErrNotFound
}

type mockOutbox struct{ wakes int }

func (o *mockOutbox) Wake() { o.wakes++ }

var errDB = errors.New("db error")
