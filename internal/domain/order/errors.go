package order

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrNotFound is returned when an order does not exist or is not
	// visible to the caller.
	ErrNotFound = errors.New("order not found")
	// ErrEmptyCart is returned when checking out an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidPaymentMethod is returned for unsupported payment methods.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrTrackingNumberRequired is returned when shipping without a tracking number.
	ErrTrackingNumberRequired = errors.New("tracking number is required to ship an order")
	// ErrOrderNumberExhausted is returned when no free order number was found.
	ErrOrderNumberExhausted = errors.New("could not allocate a unique order number")
)

// InsufficientStockError reports a cart line that exceeds available stock.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// ProductUnavailableError reports a cart line whose product was withdrawn.
type ProductUnavailableError struct {
	ProductID   int64
	ProductName string
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("product %s is no longer available", e.ProductName)
}

// CouponRejectedError reports a coupon that failed validation at checkout.
type CouponRejectedError struct {
	Code   string
	Reason string
}

func (e *CouponRejectedError) Error() string {
	return fmt.Sprintf("coupon %s rejected: %s", e.Code, e.Reason)
}

// AddressError reports a missing address field.
type AddressError struct {
	Kind  string
	Field string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%s address: %s is required", e.Kind, e.Field)
}
