package order

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/xenking/storefront/internal/domain/order"

type metrics struct {
	created     metric.Int64Counter
	failed      metric.Int64Counter
	transitions metric.Int64Counter
}

func newMetrics(mp metric.MeterProvider) (*metrics, error) {
	meter := mp.Meter(instrumentationName)

	created, err := meter.Int64Counter("storefront.orders.created",
		metric.WithDescription("Orders placed successfully"))
	if err != nil {
		return nil, errors.Wrap(err, "orders created counter")
	}
	failed, err := meter.Int64Counter("storefront.orders.checkout_failed",
		metric.WithDescription("Checkouts rejected or failed, by reason"))
	if err != nil {
		return nil, errors.Wrap(err, "checkout failed counter")
	}
	transitions, err := meter.Int64Counter("storefront.orders.transitions",
		metric.WithDescription("Order status transitions, by target status"))
	if err != nil {
		return nil, errors.Wrap(err, "transitions counter")
	}

	return &metrics{created: created, failed: failed, transitions: transitions}, nil
}

func (m *metrics) checkoutFailed(ctx context.Context, err error) {
	m.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", failureReason(err))))
}

func (m *metrics) transitioned(ctx context.Context, to Status) {
	m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(to))))
}

// failureReason maps checkout errors to a low-cardinality label.
func failureReason(err error) string {
	var (
		stockErr  *InsufficientStockError
		couponErr *CouponRejectedError
		addrErr   *AddressError
		availErr  *ProductUnavailableError
	)
	switch {
	case errors.Is(err, ErrEmptyCart):
		return "empty_cart"
	case errors.As(err, &stockErr):
		return "insufficient_stock"
	case errors.As(err, &couponErr):
		return "coupon_rejected"
	case errors.As(err, &addrErr), errors.Is(err, ErrInvalidPaymentMethod):
		return "invalid_request"
	case errors.As(err, &availErr):
		return "product_unavailable"
	default:
		return "internal"
	}
}
