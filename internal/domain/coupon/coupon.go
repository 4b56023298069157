package coupon

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// DiscountType enumerates the supported coupon discount strategies.
type DiscountType string

const (
	// DiscountPercentage takes a percentage of the order amount, optionally
	// capped by MaximumDiscountAmount.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixedAmount takes a flat amount off the order.
	DiscountFixedAmount DiscountType = "fixed_amount"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixedAmount
}

var (
	// ErrNotFound is returned when no coupon matches the requested code or id.
	ErrNotFound = errors.New("coupon not found")
	// ErrCodeTaken is returned when creating a coupon whose code already exists.
	ErrCodeTaken = errors.New("coupon code already exists")
	// ErrInUse is returned when deleting a coupon that has been redeemed.
	ErrInUse = errors.New("coupon has been used, deactivate it instead")
	// ErrUsageLimitReached is returned by redemption when the global limit is hit.
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
	// ErrAlreadyUsed is returned by redemption when the user already used the coupon.
	ErrAlreadyUsed = errors.New("coupon already used by this user")
	// ErrOrderNotFound is returned when redeeming against an unknown order.
	ErrOrderNotFound = errors.New("order not found for user")
)

// Coupon is a discount code together with its eligibility rules.
type Coupon struct {
	ID                    int64
	Code                  string
	Description           string
	DiscountType          DiscountType
	Value                 decimal.Decimal
	MinimumOrderAmount    decimal.Decimal
	MaximumDiscountAmount *decimal.Decimal
	UsageLimit            *int
	UsedCount             int
	ValidFrom             time.Time
	ValidUntil            time.Time
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Usage records a single redemption of a coupon by a user for an order.
type Usage struct {
	CouponID int64
	UserID   int64
	OrderID  int64
	UsedAt   time.Time
}

// NormalizeCode returns the canonical, upper-cased form of a coupon code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Repository is the coupon data needed by validation and redemption. It is
// implemented both on the connection pool and inside a transaction.
type Repository interface {
	// FindByCode returns the coupon with the given normalized code or ErrNotFound.
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	// HasUsage reports whether userID has already redeemed couponID.
	HasUsage(ctx context.Context, couponID, userID int64) (bool, error)
	// RecordUsage increments the used count, refusing to pass the usage
	// limit (ErrUsageLimitReached), and inserts the usage row, refusing a
	// second row for the same user (ErrAlreadyUsed). It must run inside a
	// transaction so that a refusal rolls the increment back.
	RecordUsage(ctx context.Context, u Usage) error
}

// Store extends Repository with the administrative operations and a
// transaction boundary.
type Store interface {
	Repository

	FindByID(ctx context.Context, id int64) (*Coupon, error)
	List(ctx context.Context) ([]Coupon, error)
	Create(ctx context.Context, c *Coupon) error
	SetActive(ctx context.Context, id int64, active bool) error
	// Delete removes a coupon without usages; ErrInUse otherwise.
	Delete(ctx context.Context, id int64) error
	// OrderOwnedBy reports whether orderID exists and belongs to userID.
	OrderOwnedBy(ctx context.Context, orderID, userID int64) (bool, error)
	// InTx runs fn with a Repository bound to a single transaction.
	InTx(ctx context.Context, fn func(repo Repository) error) error
}
