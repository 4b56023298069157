// Package outbox delivers order events written by the order service to
// customers once the writing transaction has committed.
package outbox

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/storefront/internal/domain/notify"
	"github.com/xenking/storefront/internal/domain/user"
)

// Store leases and acknowledges outbox events.
type Store interface {
	// Claim leases up to limit undelivered events, oldest first. Events
	// leased before staleBefore and never acknowledged are leased again.
	Claim(ctx context.Context, limit int, staleBefore time.Time) ([]notify.Event, error)
	// MarkDispatched acknowledges an event. lastErr is empty on success.
	MarkDispatched(ctx context.Context, id uuid.UUID, lastErr string) error
}

// Config tunes the dispatcher loop.
type Config struct {
	PollInterval time.Duration
	BatchSize    int
	// ClaimTimeout is how long a lease is honoured before another
	// dispatcher may take the event over.
	ClaimTimeout time.Duration
}

func (c *Config) setDefaults() {
	if c.PollInterval <= 0 {
		c.PollInterval = 5 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
	if c.ClaimTimeout <= 0 {
		c.ClaimTimeout = time.Minute
	}
}

// Dispatcher polls the outbox and fans each event out to the notifier and
// the mailer. Delivery is attempted once; failures are logged and recorded
// on the event, never retried.
type Dispatcher struct {
	store    Store
	users    user.Repository
	notifier notify.Notifier
	mailer   notify.Mailer
	cfg      Config
	lg       *zap.Logger

	wake chan struct{}
	now  func() time.Time
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(
	store Store,
	users user.Repository,
	notifier notify.Notifier,
	mailer notify.Mailer,
	cfg Config,
	lg *zap.Logger,
) *Dispatcher {
	cfg.setDefaults()
	return &Dispatcher{
		store:    store,
		users:    users,
		notifier: notifier,
		mailer:   mailer,
		cfg:      cfg,
		lg:       lg,
		wake:     make(chan struct{}, 1),
		now:      time.Now,
	}
}

// Wake asks the dispatcher to poll now. It never blocks.
func (d *Dispatcher) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Run dispatches events until ctx is done.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	d.lg.Info("Outbox dispatcher started",
		zap.Duration("poll_interval", d.cfg.PollInterval),
		zap.Int("batch_size", d.cfg.BatchSize),
	)
	for {
		if err := d.Drain(ctx); err != nil && ctx.Err() == nil {
			d.lg.Error("Outbox drain failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			d.lg.Info("Outbox dispatcher stopped")
			return nil
		case <-ticker.C:
		case <-d.wake:
		}
	}
}

// Drain dispatches claimed batches until the outbox is empty.
func (d *Dispatcher) Drain(ctx context.Context) error {
	for {
		events, err := d.store.Claim(ctx, d.cfg.BatchSize, d.now().Add(-d.cfg.ClaimTimeout))
		if err != nil {
			return errors.Wrap(err, "claim")
		}
		for _, e := range events {
			if err := d.dispatch(ctx, e); err != nil {
				return err
			}
		}
		if len(events) < d.cfg.BatchSize {
			return nil
		}
	}
}

// dispatch delivers e and acknowledges it. Only a failed acknowledgement is
// returned; delivery failures end up in the event's last_error.
func (d *Dispatcher) dispatch(ctx context.Context, e notify.Event) error {
	lg := d.lg.With(
		zap.Stringer("event_id", e.ID),
		zap.String("kind", string(e.Kind)),
		zap.Int64("order_id", e.OrderID),
	)

	var (
		g       errgroup.Group
		errs    [2]error
		started = d.now()
	)
	g.Go(func() error {
		errs[0] = d.notify(ctx, e)
		return nil
	})
	g.Go(func() error {
		errs[1] = d.mail(ctx, e)
		return nil
	})
	_ = g.Wait()

	var failures []string
	for _, err := range errs {
		if err != nil {
			failures = append(failures, err.Error())
			lg.Warn("Order event delivery failed", zap.Error(err))
		}
	}

	if err := d.store.MarkDispatched(ctx, e.ID, strings.Join(failures, "; ")); err != nil {
		return errors.Wrapf(err, "ack event %s", e.ID)
	}
	lg.Debug("Order event dispatched",
		zap.Duration("duration", d.now().Sub(started)),
		zap.Int("failures", len(failures)),
	)
	return nil
}

func (d *Dispatcher) notify(ctx context.Context, e notify.Event) error {
	if err := d.notifier.SendOrderStatusNotification(ctx, e.UserID, e.OrderID, e.Status, e.Message); err != nil {
		return errors.Wrap(err, "notification")
	}
	return nil
}

func (d *Dispatcher) mail(ctx context.Context, e notify.Event) error {
	switch e.Kind {
	case notify.KindOrderPlaced, notify.KindShipped, notify.KindDelivered:
	default:
		return nil
	}

	u, err := d.users.GetByID(ctx, e.UserID)
	if err != nil {
		return errors.Wrapf(err, "email: lookup user %d", e.UserID)
	}

	switch e.Kind {
	case notify.KindOrderPlaced:
		err = d.mailer.SendOrderConfirmation(ctx, u.Email, u.Name, e.OrderNumber, e.Total)
	case notify.KindShipped:
		err = d.mailer.SendOrderShipped(ctx, u.Email, u.Name, e.OrderNumber, e.TrackingNumber)
	case notify.KindDelivered:
		err = d.mailer.SendOrderDelivered(ctx, u.Email, u.Name, e.OrderNumber)
	}
	if err != nil {
		return errors.Wrap(err, "email")
	}
	return nil
}
