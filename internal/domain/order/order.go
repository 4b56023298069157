package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notify"
)

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	PaymentCOD      PaymentMethod = "cod"
	PaymentRazorpay PaymentMethod = "razorpay"
	PaymentCard     PaymentMethod = "card"
	PaymentUPI      PaymentMethod = "upi"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentRazorpay, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

// Address is a postal address copied onto the order at checkout.
type Address struct {
	FullName   string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Item is an order line. Name and price are snapshots taken at checkout.
type Item struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// StatusChange is one entry of the append-only status history.
type StatusChange struct {
	Status    Status
	Comment   string
	Actor     string
	CreatedAt time.Time
}

// Order is the order aggregate: the order row, its items, address
// snapshots and status history.
type Order struct {
	ID              int64
	Number          string
	UserID          int64
	Status          Status
	Items           []Item
	Subtotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	ShippingAmount  decimal.Decimal
	DiscountAmount  decimal.Decimal
	TotalAmount     decimal.Decimal
	CouponID        *int64
	CouponCode      string
	PaymentMethod   PaymentMethod
	ShippingAddress Address
	BillingAddress  Address
	TrackingNumber  *string
	DeliveredAt     *time.Time
	Notes           string
	History         []StatusChange
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserActor is the history actor recorded for changes made by a customer.
func UserActor(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// CartLine is a cart item joined with the product's current state.
type CartLine struct {
	ProductID     int64
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
	StockQuantity int
	IsActive      bool
}

// ListFilter narrows and pages order listings.
type ListFilter struct {
	Status *Status
	Limit  int
	Offset int
}

// Tx is the set of operations performed inside one checkout or status
// change transaction.
type Tx interface {
	// CartLines returns the user's cart joined with current product data.
	CartLines(ctx context.Context, userID int64) ([]CartLine, error)
	ClearCart(ctx context.Context, userID int64) error
	// DecrementStock takes qty units from the product only if at least qty
	// are available, reporting whether it did.
	DecrementStock(ctx context.Context, productID int64, qty int) (bool, error)
	RestoreStock(ctx context.Context, productID int64, qty int) error
	// InsertOrder persists the order with its items, addresses and history
	// and assigns o.ID. It reports false without writing anything when
	// o.Number is already taken.
	InsertOrder(ctx context.Context, o *Order) (bool, error)
	// LockOrder loads the order and holds a row lock until the transaction
	// ends. Returns ErrNotFound when absent.
	LockOrder(ctx context.Context, id int64) (*Order, error)
	// UpdateOrder writes status, tracking number, delivered-at and
	// updated-at.
	UpdateOrder(ctx context.Context, o *Order) error
	AppendHistory(ctx context.Context, orderID int64, ch StatusChange) error
	// Enqueue writes an event to the outbox.
	Enqueue(ctx context.Context, e notify.Event) error
	// Coupons returns the coupon repository bound to this transaction.
	Coupons() coupon.Repository
}

// Store provides transactions and reads for orders.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
	Get(ctx context.Context, id int64) (*Order, error)
	ListByUser(ctx context.Context, userID int64, f ListFilter) ([]Order, error)
}

// Outbox is poked after a transaction that enqueued events commits.
type Outbox interface {
	Wake()
}
