// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// CancelOrder implements cancelOrder operation.
	//
	// POST /orders/{id}/cancel
	CancelOrder(ctx context.Context, params CancelOrderParams) (*OrderResponse, error)
	// CreateCoupon implements createCoupon operation.
	//
	// POST /coupons
	CreateCoupon(ctx context.Context, req *CreateCouponRequest) (*CouponResponse, error)
	// CreateOrder implements createOrder operation.
	//
	// POST /orders
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error)
	// DeactivateCoupon implements deactivateCoupon operation.
	//
	// POST /coupons/{id}/deactivate
	DeactivateCoupon(ctx context.Context, params DeactivateCouponParams) (*SuccessResponse, error)
	// DeleteCoupon implements deleteCoupon operation.
	//
	// DELETE /coupons/{id}
	DeleteCoupon(ctx context.Context, params DeleteCouponParams) (*SuccessResponse, error)
	// GetCart implements getCart operation.
	//
	// GET /cart
	GetCart(ctx context.Context) (*CartResponse, error)
	// GetCoupon implements getCoupon operation.
	//
	// GET /coupons/{id}
	GetCoupon(ctx context.Context, params GetCouponParams) (*CouponResponse, error)
	// GetOrder implements getOrder operation.
	//
	// GET /orders/{id}
	GetOrder(ctx context.Context, params GetOrderParams) (*OrderResponse, error)
	// GetProduct implements getProduct operation.
	//
	// GET /products/{id}
	GetProduct(ctx context.Context, params GetProductParams) (*ProductResponse, error)
	// ListCoupons implements listCoupons operation.
	//
	// GET /coupons
	ListCoupons(ctx context.Context) (*CouponListResponse, error)
	// ListOrders implements listOrders operation.
	//
	// GET /orders
	ListOrders(ctx context.Context, params ListOrdersParams) (*OrderListResponse, error)
	// ListProducts implements listProducts operation.
	//
	// GET /products
	ListProducts(ctx context.Context) (*ProductListResponse, error)
	// RemoveCartItem implements removeCartItem operation.
	//
	// DELETE /cart/items/{productId}
	RemoveCartItem(ctx context.Context, params RemoveCartItemParams) (*SuccessResponse, error)
	// SetCartItem implements setCartItem operation.
	//
	// POST /cart/items
	SetCartItem(ctx context.Context, req *SetCartItemRequest) (*CartItemResponse, error)
	// UpdateOrderStatus implements updateOrderStatus operation.
	//
	// PUT /orders/{id}/status
	UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusRequest, params UpdateOrderStatusParams) (*OrderResponse, error)
	// UseCoupon implements useCoupon operation.
	//
	// POST /coupons/{id}/use
	UseCoupon(ctx context.Context, req *UseCouponRequest, params UseCouponParams) (*SuccessResponse, error)
	// ValidateCoupon implements validateCoupon operation.
	//
	// POST /coupons/validate
	ValidateCoupon(ctx context.Context, req *ValidateCouponRequest) (*CouponValidationResponse, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
