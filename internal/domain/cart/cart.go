// Package cart holds the per-user shopping cart consumed by checkout.
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/product"
)

// ErrItemNotFound is returned when removing a product that is not in the cart.
var ErrItemNotFound = errors.New("cart item not found")

// Item is one product line in a user's cart. PriceAtAdd is informational;
// checkout re-prices at the current product price.
type Item struct {
	UserID     int64
	ProductID  int64
	Quantity   int
	PriceAtAdd decimal.Decimal
	AddedAt    time.Time
}

// QuantityError reports a non-positive quantity.
type QuantityError struct {
	ProductID int64
	Quantity  int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0 for product %d, got %d", e.ProductID, e.Quantity)
}

// StockError reports a quantity above the product's current stock.
type StockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("only %d of %s in stock, requested %d", e.Available, e.ProductName, e.Requested)
}

// Repository persists cart items.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Item, error)
	// Upsert inserts the item or replaces the quantity of an existing line.
	Upsert(ctx context.Context, item Item) error
	Remove(ctx context.Context, userID, productID int64) error
}

// Service manages a user's cart.
type Service struct {
	items    Repository
	products product.Repository
	now      func() time.Time
}

// NewService creates a cart Service.
func NewService(items Repository, products product.Repository) *Service {
	return &Service{items: items, products: products, now: time.Now}
}

// List returns the user's cart lines.
func (s *Service) List(ctx context.Context, userID int64) ([]Item, error) {
	return s.items.List(ctx, userID)
}

// Set puts qty units of productID in the cart, recording the current price.
// Quantities above current stock are refused; stock is checked again at
// checkout.
func (s *Service) Set(ctx context.Context, userID, productID int64, qty int) (*Item, error) {
	if qty <= 0 {
		return nil, &QuantityError{ProductID: productID, Quantity: qty}
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, product.ErrNotFound
	}
	if !p.InStock(qty) {
		return nil, &StockError{ProductName: p.Name, Requested: qty, Available: p.StockQuantity}
	}

	item := Item{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   qty,
		PriceAtAdd: p.Price,
		AddedAt:    s.now(),
	}
	if err := s.items.Upsert(ctx, item); err != nil {
		return nil, errors.Wrap(err, "upsert cart item")
	}
	return &item, nil
}

// Remove deletes a product line from the cart.
func (s *Service) Remove(ctx context.Context, userID, productID int64) error {
	return s.items.Remove(ctx, userID, productID)
}
