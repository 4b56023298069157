package order

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/pricing"
)

// maxNumberAttempts bounds order number regeneration on collision.
const maxNumberAttempts = 5

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CreateRequest holds the checkout input.
type CreateRequest struct {
	UserID          int64
	ShippingAddress Address
	// BillingAddress defaults to ShippingAddress when nil.
	BillingAddress *Address
	CouponCode     string
	PaymentMethod  PaymentMethod
	Notes          string
}

// UpdateStatusRequest holds an administrative status change.
type UpdateStatusRequest struct {
	OrderID        int64
	Status         Status
	TrackingNumber string
	Comment        string
	Actor          string
}

// Option configures a Service.
type Option func(*Service)

// WithTracerProvider sets the tracer provider used for service spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) { s.tracer = tp.Tracer(instrumentationName) }
}

// WithMeterProvider sets the meter provider used for service metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Service) { s.meterProvider = mp }
}

// Service implements checkout and the order status state machine.
type Service struct {
	store  Store
	outbox Outbox

	now    func() time.Time
	suffix func() int

	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	metrics       *metrics
}

// NewService creates an order Service.
func NewService(store Store, outbox Outbox, opts ...Option) (*Service, error) {
	s := &Service{
		store:         store,
		outbox:        outbox,
		now:           time.Now,
		suffix:        func() int { return rand.IntN(1000) },
		tracer:        tracenoop.NewTracerProvider().Tracer(instrumentationName),
		meterProvider: metricnoop.NewMeterProvider(),
	}
	for _, o := range opts {
		o(s)
	}

	m, err := newMetrics(s.meterProvider)
	if err != nil {
		return nil, err
	}
	s.metrics = m
	return s, nil
}

// CreateOrder turns the user's cart into an order. Stock decrement, coupon
// redemption, cart clearing, the order rows and its outbox event commit
// together or not at all.
func (s *Service) CreateOrder(ctx context.Context, req CreateRequest) (_ *Order, rerr error) {
	ctx, span := s.tracer.Start(ctx, "order.CreateOrder",
		trace.WithAttributes(attribute.Int64("user.id", req.UserID)))
	defer func() {
		if rerr != nil {
			s.metrics.checkoutFailed(ctx, rerr)
			span.RecordError(rerr)
			span.SetStatus(codes.Error, rerr.Error())
		}
		span.End()
	}()

	if err := validateCreate(req); err != nil {
		return nil, err
	}
	billing := req.ShippingAddress
	if req.BillingAddress != nil {
		billing = *req.BillingAddress
	}

	now := s.now()
	var o *Order
	err := s.store.InTx(ctx, func(tx Tx) error {
		lines, err := tx.CartLines(ctx, req.UserID)
		if err != nil {
			return errors.Wrap(err, "load cart")
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		items, subtotal, err := priceLines(lines)
		if err != nil {
			return err
		}
		totals := pricing.Quote(subtotal, req.ShippingAddress.State)

		var applied *coupon.Result
		if code := strings.TrimSpace(req.CouponCode); code != "" {
			res, _, err := coupon.Check(ctx, tx.Coupons(), now, code, totals.Gross(), &req.UserID)
			if err != nil {
				return errors.Wrap(err, "validate coupon")
			}
			if !res.Valid {
				return &CouponRejectedError{Code: coupon.NormalizeCode(code), Reason: res.Message}
			}
			totals = totals.WithDiscount(res.Discount)
			applied = &res
		}

		o = &Order{
			UserID:          req.UserID,
			Status:          StatusPending,
			Items:           items,
			Subtotal:        totals.Subtotal,
			TaxAmount:       totals.Tax,
			ShippingAmount:  totals.Shipping,
			DiscountAmount:  totals.Discount,
			TotalAmount:     totals.Total,
			PaymentMethod:   req.PaymentMethod,
			ShippingAddress: req.ShippingAddress,
			BillingAddress:  billing,
			Notes:           req.Notes,
			History: []StatusChange{{
				Status:    StatusPending,
				Comment:   "Order placed successfully",
				Actor:     UserActor(req.UserID),
				CreatedAt: now,
			}},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if applied != nil {
			id := applied.CouponID
			o.CouponID = &id
			o.CouponCode = applied.Code
		}

		if err := s.insertOrder(ctx, tx, o, now); err != nil {
			return err
		}

		for _, it := range o.Items {
			ok, err := tx.DecrementStock(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return errors.Wrapf(err, "decrement stock for product %d", it.ProductID)
			}
			if !ok {
				// Another checkout took the stock after the cart was read.
				return &InsufficientStockError{
					ProductID:   it.ProductID,
					ProductName: it.ProductName,
					Requested:   it.Quantity,
				}
			}
		}

		if applied != nil {
			err := coupon.Redeem(ctx, tx.Coupons(), coupon.Usage{
				CouponID: applied.CouponID,
				UserID:   req.UserID,
				OrderID:  o.ID,
				UsedAt:   now,
			})
			switch {
			case errors.Is(err, coupon.ErrUsageLimitReached):
				return &CouponRejectedError{Code: applied.Code, Reason: coupon.MsgLimitReached}
			case errors.Is(err, coupon.ErrAlreadyUsed):
				return &CouponRejectedError{Code: applied.Code, Reason: coupon.MsgAlreadyUsed}
			case err != nil:
				return err
			}
		}

		if err := tx.ClearCart(ctx, req.UserID); err != nil {
			return errors.Wrap(err, "clear cart")
		}
		if err := tx.Enqueue(ctx, placedEvent(o)); err != nil {
			return errors.Wrap(err, "enqueue order placed event")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.created.Add(ctx, 1)
	span.SetAttributes(attribute.Int64("order.id", o.ID), attribute.String("order.number", o.Number))
	s.outbox.Wake()
	return o, nil
}

// UpdateStatus moves an order to req.Status if the state machine allows it
// and applies the transition's side effects.
func (s *Service) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (_ *Order, rerr error) {
	ctx, span := s.tracer.Start(ctx, "order.UpdateStatus", trace.WithAttributes(
		attribute.Int64("order.id", req.OrderID),
		attribute.String("order.status", string(req.Status)),
	))
	defer func() {
		if rerr != nil {
			span.RecordError(rerr)
			span.SetStatus(codes.Error, rerr.Error())
		}
		span.End()
	}()

	if !req.Status.Valid() {
		return nil, errors.Wrapf(ErrUnknownStatus, "%q", req.Status)
	}

	now := s.now()
	var o *Order
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		if o, err = tx.LockOrder(ctx, req.OrderID); err != nil {
			return err
		}
		return s.transition(ctx, tx, o, req.Status, req.TrackingNumber, req.Comment, req.Actor, now)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.transitioned(ctx, req.Status)
	s.outbox.Wake()
	return o, nil
}

// Cancel cancels the user's own order. Only pending and processing orders
// can be cancelled; shipped orders go through returns.
func (s *Service) Cancel(ctx context.Context, orderID, userID int64) (_ *Order, rerr error) {
	ctx, span := s.tracer.Start(ctx, "order.Cancel", trace.WithAttributes(
		attribute.Int64("order.id", orderID),
		attribute.Int64("user.id", userID),
	))
	defer func() {
		if rerr != nil {
			span.RecordError(rerr)
			span.SetStatus(codes.Error, rerr.Error())
		}
		span.End()
	}()

	now := s.now()
	var o *Order
	err := s.store.InTx(ctx, func(tx Tx) error {
		var err error
		if o, err = tx.LockOrder(ctx, orderID); err != nil {
			return err
		}
		if o.UserID != userID {
			return ErrNotFound
		}
		return s.transition(ctx, tx, o, StatusCancelled, "", "Cancelled by customer", UserActor(userID), now)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.transitioned(ctx, StatusCancelled)
	s.outbox.Wake()
	return o, nil
}

// Get returns an order by id.
func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.store.Get(ctx, id)
}

// GetForUser returns the order only when it belongs to userID.
func (s *Service) GetForUser(ctx context.Context, id, userID int64) (*Order, error) {
	o, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrNotFound
	}
	return o, nil
}

// ListForUser returns the user's orders, newest first.
func (s *Service) ListForUser(ctx context.Context, userID int64, f ListFilter) ([]Order, error) {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.store.ListByUser(ctx, userID, f)
}

// transition applies a single state machine step to a locked order.
func (s *Service) transition(
	ctx context.Context,
	tx Tx,
	o *Order,
	to Status,
	tracking, comment, actor string,
	now time.Time,
) error {
	if !o.Status.CanTransitionTo(to) {
		return &TransitionError{From: o.Status, To: to}
	}

	switch to {
	case StatusShipped:
		tracking = strings.TrimSpace(tracking)
		if tracking == "" {
			return ErrTrackingNumberRequired
		}
		o.TrackingNumber = &tracking
	case StatusDelivered:
		o.DeliveredAt = &now
	case StatusCancelled:
		for _, it := range o.Items {
			if err := tx.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
				return errors.Wrapf(err, "restore stock for product %d", it.ProductID)
			}
		}
	}

	o.Status = to
	o.UpdatedAt = now
	if err := tx.UpdateOrder(ctx, o); err != nil {
		return errors.Wrap(err, "update order")
	}

	if comment == "" {
		comment = fmt.Sprintf("Order status changed to %s", to)
	}
	ch := StatusChange{Status: to, Comment: comment, Actor: actor, CreatedAt: now}
	if err := tx.AppendHistory(ctx, o.ID, ch); err != nil {
		return errors.Wrap(err, "append status history")
	}
	o.History = append(o.History, ch)

	if err := tx.Enqueue(ctx, statusEvent(o, now)); err != nil {
		return errors.Wrap(err, "enqueue status event")
	}
	return nil
}

// insertOrder allocates an order number and persists the order, drawing a
// new random suffix when the number is taken.
func (s *Service) insertOrder(ctx context.Context, tx Tx, o *Order, now time.Time) error {
	for range maxNumberAttempts {
		o.Number = fmt.Sprintf("ORD%d%03d", now.Unix(), s.suffix())
		ok, err := tx.InsertOrder(ctx, o)
		if err != nil {
			return errors.Wrap(err, "insert order")
		}
		if ok {
			return nil
		}
	}
	return ErrOrderNumberExhausted
}

// priceLines checks stock and snapshots current prices. The first line
// that can't be fulfilled aborts checkout.
func priceLines(lines []CartLine) ([]Item, decimal.Decimal, error) {
	items := make([]Item, 0, len(lines))
	subtotal := decimal.Zero
	for _, l := range lines {
		if !l.IsActive {
			return nil, decimal.Zero, &ProductUnavailableError{ProductID: l.ProductID, ProductName: l.ProductName}
		}
		if l.Quantity <= 0 || l.StockQuantity < l.Quantity {
			return nil, decimal.Zero, &InsufficientStockError{
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				Requested:   l.Quantity,
				Available:   l.StockQuantity,
			}
		}

		line := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		items = append(items, Item{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   line,
		})
		subtotal = subtotal.Add(line)
	}
	return items, subtotal, nil
}

func validateCreate(req CreateRequest) error {
	if !req.PaymentMethod.Valid() {
		return errors.Wrapf(ErrInvalidPaymentMethod, "%q", req.PaymentMethod)
	}
	if err := validateAddress("shipping", req.ShippingAddress); err != nil {
		return err
	}
	if req.BillingAddress != nil {
		if err := validateAddress("billing", *req.BillingAddress); err != nil {
			return err
		}
	}
	return nil
}

func validateAddress(kind string, a Address) error {
	required := []struct {
		field string
		value string
	}{
		{"fullName", a.FullName},
		{"line1", a.Line1},
		{"city", a.City},
		{"state", a.State},
		{"postalCode", a.PostalCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &AddressError{Kind: kind, Field: r.field}
		}
	}
	return nil
}
