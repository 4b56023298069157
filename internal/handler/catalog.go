package handler

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/gen/oas"
)

func (h *Handler) ListProducts(ctx context.Context) (*oas.ProductListResponse, error) {
	products, err := h.products.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	data := make([]oas.Product, len(products))
	for i, p := range products {
		data[i] = h.toProduct(p)
	}
	return &oas.ProductListResponse{Success: true, Data: data}, nil
}

func (h *Handler) GetProduct(ctx context.Context, params oas.GetProductParams) (*oas.ProductResponse, error) {
	p, err := h.products.GetByID(ctx, params.ID)
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	return &oas.ProductResponse{Success: true, Data: h.toProduct(*p)}, nil
}

func (h *Handler) GetCart(ctx context.Context) (*oas.CartResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	items, err := h.cart.List(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "list cart")
	}
	data := make([]oas.CartItem, len(items))
	for i, it := range items {
		data[i] = toCartItem(it)
	}
	return &oas.CartResponse{Success: true, Data: data}, nil
}

func (h *Handler) SetCartItem(ctx context.Context, req *oas.SetCartItemRequest) (*oas.CartItemResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	item, err := h.cart.Set(ctx, uid, req.ProductId, req.Quantity)
	if err != nil {
		return nil, errors.Wrap(err, "set cart item")
	}
	return &oas.CartItemResponse{Success: true, Data: toCartItem(*item)}, nil
}

func (h *Handler) RemoveCartItem(ctx context.Context, params oas.RemoveCartItemParams) (*oas.SuccessResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.cart.Remove(ctx, uid, params.ProductId); err != nil {
		return nil, errors.Wrap(err, "remove cart item")
	}
	return success(), nil
}
