// Package handler implements the generated storefront API on top of the
// domain services.
package handler

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// APIKeyHeader carries the caller's API key.
const APIKeyHeader = "api_key"

// Cart manages the authenticated user's cart.
type Cart interface {
	List(ctx context.Context, userID int64) ([]cart.Item, error)
	Set(ctx context.Context, userID, productID int64, qty int) (*cart.Item, error)
	Remove(ctx context.Context, userID, productID int64) error
}

// Orders is the order lifecycle service.
type Orders interface {
	CreateOrder(ctx context.Context, req order.CreateRequest) (*order.Order, error)
	UpdateStatus(ctx context.Context, req order.UpdateStatusRequest) (*order.Order, error)
	Cancel(ctx context.Context, orderID, userID int64) (*order.Order, error)
	GetForUser(ctx context.Context, id, userID int64) (*order.Order, error)
	ListForUser(ctx context.Context, userID int64, f order.ListFilter) ([]order.Order, error)
}

// Coupons validates and administers coupons.
type Coupons interface {
	coupon.Validator
	Use(ctx context.Context, couponID, userID, orderID int64) error
	Create(ctx context.Context, req coupon.CreateRequest) (*coupon.Coupon, error)
	Get(ctx context.Context, id int64) (*coupon.Coupon, error)
	List(ctx context.Context) ([]coupon.Coupon, error)
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Config holds non-dependency configuration for the Handler.
type Config struct {
	// ImageBaseURL is prepended to relative image paths in product responses.
	ImageBaseURL string
}

// Handler implements the ogen-generated Handler interface, delegating to the
// catalog, cart, order and coupon services.
type Handler struct {
	oas.UnimplementedHandler

	products product.Repository
	cart     Cart
	orders   Orders
	coupons  Coupons

	imageBaseURL string
}

// New constructs a Handler.
func New(
	cfg Config,
	products product.Repository,
	cart Cart,
	orders Orders,
	coupons Coupons,
) *Handler {
	return &Handler{
		products:     products,
		cart:         cart,
		orders:       orders,
		coupons:      coupons,
		imageBaseURL: cfg.ImageBaseURL,
	}
}

var errNoUser = errors.New("api key is not bound to a user")

// userID returns the user the authenticated key acts for.
func userID(ctx context.Context) (int64, error) {
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return 0, auth.ErrUnauthorized
	}
	if p.UserID == nil {
		return 0, errNoUser
	}
	return *p.UserID, nil
}

func actor(ctx context.Context) string {
	p, _ := auth.PrincipalFrom(ctx)
	if p.UserID != nil {
		return order.UserActor(*p.UserID)
	}
	return "api_key:" + p.KeyID
}

func success() *oas.SuccessResponse {
	return &oas.SuccessResponse{Success: true}
}
