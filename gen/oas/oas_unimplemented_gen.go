// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// CancelOrder implements cancelOrder operation.
//
// POST /orders/{id}/cancel
func (UnimplementedHandler) CancelOrder(ctx context.Context, params CancelOrderParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateCoupon implements createCoupon operation.
//
// POST /coupons
func (UnimplementedHandler) CreateCoupon(ctx context.Context, req *CreateCouponRequest) (r *CouponResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateOrder implements createOrder operation.
//
// POST /orders
func (UnimplementedHandler) CreateOrder(ctx context.Context, req *CreateOrderRequest) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// DeactivateCoupon implements deactivateCoupon operation.
//
// POST /coupons/{id}/deactivate
func (UnimplementedHandler) DeactivateCoupon(ctx context.Context, params DeactivateCouponParams) (r *SuccessResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// DeleteCoupon implements deleteCoupon operation.
//
// DELETE /coupons/{id}
func (UnimplementedHandler) DeleteCoupon(ctx context.Context, params DeleteCouponParams) (r *SuccessResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetCart implements getCart operation.
//
// GET /cart
func (UnimplementedHandler) GetCart(ctx context.Context) (r *CartResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetCoupon implements getCoupon operation.
//
// GET /coupons/{id}
func (UnimplementedHandler) GetCoupon(ctx context.Context, params GetCouponParams) (r *CouponResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// GET /orders/{id}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// GetProduct implements getProduct operation.
//
// GET /products/{id}
func (UnimplementedHandler) GetProduct(ctx context.Context, params GetProductParams) (r *ProductResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ListCoupons implements listCoupons operation.
//
// GET /coupons
func (UnimplementedHandler) ListCoupons(ctx context.Context) (r *CouponListResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ListOrders implements listOrders operation.
//
// GET /orders
func (UnimplementedHandler) ListOrders(ctx context.Context, params ListOrdersParams) (r *OrderListResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ListProducts implements listProducts operation.
//
// GET /products
func (UnimplementedHandler) ListProducts(ctx context.Context) (r *ProductListResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// RemoveCartItem implements removeCartItem operation.
//
// DELETE /cart/items/{productId}
func (UnimplementedHandler) RemoveCartItem(ctx context.Context, params RemoveCartItemParams) (r *SuccessResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// SetCartItem implements setCartItem operation.
//
// POST /cart/items
func (UnimplementedHandler) SetCartItem(ctx context.Context, req *SetCartItemRequest) (r *CartItemResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateOrderStatus implements updateOrderStatus operation.
//
// PUT /orders/{id}/status
func (UnimplementedHandler) UpdateOrderStatus(ctx context.Context, req *UpdateOrderStatusRequest, params UpdateOrderStatusParams) (r *OrderResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// UseCoupon implements useCoupon operation.
//
// POST /coupons/{id}/use
func (UnimplementedHandler) UseCoupon(ctx context.Context, req *UseCouponRequest, params UseCouponParams) (r *SuccessResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// ValidateCoupon implements validateCoupon operation.
//
// POST /coupons/validate
func (UnimplementedHandler) ValidateCoupon(ctx context.Context, req *ValidateCouponRequest) (r *CouponValidationResponse, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
