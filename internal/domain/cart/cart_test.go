package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/product"
)

type mockItems struct {
	items map[int64]Item
}

func (m *mockItems) List(_ context.Context, userID int64) ([]Item, error) {
	var out []Item
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockItems) Upsert(_ context.Context, item Item) error {
	m.items[item.ProductID] = item
	return nil
}

func (m *mockItems) Remove(_ context.Context, _, productID int64) error {
	if _, ok := m.items[productID]; !ok {
		return ErrItemNotFound
	}
	delete(m.items, productID)
	return nil
}

type mockProducts struct {
	byID map[int64]product.Product
}

func (m *mockProducts) List(_ context.Context) ([]product.Product, error) { return nil, nil }

func (m *mockProducts) GetByID(_ context.Context, id int64) (*product.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func newTestService() (*Service, *mockItems) {
	items := &mockItems{items: make(map[int64]Item)}
	products := &mockProducts{byID: map[int64]product.Product{
		1: {ID: 1, Name: "Kurta", Price: decimal.NewFromInt(799), StockQuantity: 3, IsActive: true},
		2: {ID: 2, Name: "Retired", Price: decimal.NewFromInt(10), IsActive: false},
	}}
	s := NewService(items, products)
	s.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return s, items
}

func TestService_Set(t *testing.T) {
	s, items := newTestService()

	item, err := s.Set(context.Background(), 7, 1, 2)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(799).Equal(item.PriceAtAdd))
	assert.Equal(t, 2, items.items[1].Quantity)

	_, err = s.Set(context.Background(), 7, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, items.items[1].Quantity)
}

func TestService_Set_AboveStock(t *testing.T) {
	s, items := newTestService()

	_, err := s.Set(context.Background(), 7, 1, 4)
	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Kurta", stockErr.ProductName)
	assert.Equal(t, 4, stockErr.Requested)
	assert.Equal(t, 3, stockErr.Available)
	assert.Empty(t, items.items)
}

func TestService_Set_Errors(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Set(context.Background(), 7, 1, 0)
	var qErr *QuantityError
	require.ErrorAs(t, err, &qErr)

	_, err = s.Set(context.Background(), 7, 99, 1)
	require.ErrorIs(t, err, product.ErrNotFound)

	_, err = s.Set(context.Background(), 7, 2, 1)
	require.ErrorIs(t, err, product.ErrNotFound)
}

func TestService_Remove(t *testing.T) {
	s, _ := newTestService()
	_, err := s.Set(context.Background(), 7, 1, 1)
	require.NoError(t, err)

	require.NoError(t, s.Remove(context.Background(), 7, 1))
	require.ErrorIs(t, s.Remove(context.Background(), 7, 1), ErrItemNotFound)

	lines, err := s.List(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
