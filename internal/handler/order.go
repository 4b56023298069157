package handler

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/domain/order"
)

func (h *Handler) CreateOrder(ctx context.Context, req *oas.CreateOrderRequest) (*oas.OrderResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	create := order.CreateRequest{
		UserID:          uid,
		ShippingAddress: fromAddress(req.ShippingAddress),
		CouponCode:      req.CouponCode.Or(""),
		PaymentMethod:   order.PaymentMethod(req.PaymentMethod),
		Notes:           req.Notes.Or(""),
	}
	if billing, ok := req.BillingAddress.Get(); ok {
		a := fromAddress(billing)
		create.BillingAddress = &a
	}

	o, err := h.orders.CreateOrder(ctx, create)
	if err != nil {
		return nil, errors.Wrap(err, "create order")
	}
	return &oas.OrderResponse{Success: true, Data: toOrder(o)}, nil
}

func (h *Handler) ListOrders(ctx context.Context, params oas.ListOrdersParams) (*oas.OrderListResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	f := order.ListFilter{
		Limit:  params.Limit.Or(0),
		Offset: params.Offset.Or(0),
	}
	if s, ok := params.Status.Get(); ok && s != "" {
		st, err := order.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		f.Status = &st
	}

	orders, err := h.orders.ListForUser(ctx, uid, f)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	data := make([]oas.Order, len(orders))
	for i := range orders {
		data[i] = toOrder(&orders[i])
	}
	return &oas.OrderListResponse{Success: true, Data: data}, nil
}

func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.OrderResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.orders.GetForUser(ctx, params.ID, uid)
	if err != nil {
		return nil, errors.Wrap(err, "get order")
	}
	return &oas.OrderResponse{Success: true, Data: toOrder(o)}, nil
}

func (h *Handler) CancelOrder(ctx context.Context, params oas.CancelOrderParams) (*oas.OrderResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	o, err := h.orders.Cancel(ctx, params.ID, uid)
	if err != nil {
		return nil, errors.Wrap(err, "cancel order")
	}
	return &oas.OrderResponse{Success: true, Data: toOrder(o)}, nil
}

func (h *Handler) UpdateOrderStatus(ctx context.Context, req *oas.UpdateOrderStatusRequest, params oas.UpdateOrderStatusParams) (*oas.OrderResponse, error) {
	st, err := order.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	o, err := h.orders.UpdateStatus(ctx, order.UpdateStatusRequest{
		OrderID:        params.ID,
		Status:         st,
		TrackingNumber: req.TrackingNumber.Or(""),
		Comment:        req.Comment.Or(""),
		Actor:          actor(ctx),
	})
	if err != nil {
		return nil, errors.Wrap(err, "update order status")
	}
	return &oas.OrderResponse{Success: true, Data: toOrder(o)}, nil
}
