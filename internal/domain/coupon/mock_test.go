package coupon

import (
	"context"

	"github.com/go-faster/errors"
)

type mockStore struct {
	byCode  map[string]*Coupon
	usages  []Usage
	orders  map[int64]int64 // order id -> owner
	findErr error
	nextID  int64
}

func newMockStore(coupons ...*Coupon) *mockStore {
	m := &mockStore{
		byCode: make(map[string]*Coupon),
		orders: make(map[int64]int64),
	}
	for _, c := range coupons {
		m.nextID++
		if c.ID == 0 {
			c.ID = m.nextID
		}
		m.byCode[c.Code] = c
	}
	return m
}

func (m *mockStore) FindByCode(_ context.Context, code string) (*Coupon, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	c, ok := m.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockStore) HasUsage(_ context.Context, couponID, userID int64) (bool, error) {
	for _, u := range m.usages {
		if u.CouponID == couponID && u.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStore) RecordUsage(_ context.Context, u Usage) error {
	c, err := m.byID(u.CouponID)
	if err != nil {
		return err
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return ErrUsageLimitReached
	}
	for _, prev := range m.usages {
		if prev.CouponID == u.CouponID && prev.UserID == u.UserID {
			return ErrAlreadyUsed
		}
	}
	c.UsedCount++
	m.usages = append(m.usages, u)
	return nil
}

func (m *mockStore) byID(id int64) (*Coupon, error) {
	for _, c := range m.byCode {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockStore) FindByID(_ context.Context, id int64) (*Coupon, error) {
	c, err := m.byID(id)
	if err != nil {
		return nil, err
	}
	cp := *c
	return &cp, nil
}

func (m *mockStore) List(_ context.Context) ([]Coupon, error) {
	out := make([]Coupon, 0, len(m.byCode))
	for _, c := range m.byCode {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockStore) Create(_ context.Context, c *Coupon) error {
	if _, ok := m.byCode[c.Code]; ok {
		return ErrCodeTaken
	}
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.byCode[c.Code] = &cp
	return nil
}

func (m *mockStore) SetActive(_ context.Context, id int64, active bool) error {
	c, err := m.byID(id)
	if err != nil {
		return err
	}
	c.IsActive = active
	return nil
}

func (m *mockStore) Delete(_ context.Context, id int64) error {
	c, err := m.byID(id)
	if err != nil {
		return err
	}
	for _, u := range m.usages {
		if u.CouponID == id {
			return ErrInUse
		}
	}
	delete(m.byCode, c.Code)
	return nil
}

func (m *mockStore) OrderOwnedBy(_ context.Context, orderID, userID int64) (bool, error) {
	owner, ok := m.orders[orderID]
	return ok && owner == userID, nil
}

// InTx snapshots the mutable state and restores it when fn fails.
func (m *mockStore) InTx(_ context.Context, fn func(repo Repository) error) error {
	counts := make(map[string]int, len(m.byCode))
	for code, c := range m.byCode {
		counts[code] = c.UsedCount
	}
	usages := append([]Usage(nil), m.usages...)

	if err := fn(m); err != nil {
		for code, n := range counts {
			m.byCode[code].UsedCount = n
		}
		m.usages = usages
		return err
	}
	return nil
}

var errDB = errors.New("db error")
