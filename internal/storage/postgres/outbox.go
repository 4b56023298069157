package postgres

import (
	"context"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/notify"
	"github.com/xenking/storefront/internal/outbox"
)

const (
	insertEventSQL = `INSERT INTO order_events (id, kind, order_id, user_id, order_number, status,
		message, tracking, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	// claimEventsSQL leases a batch of undelivered events. Rows locked by
	// another dispatcher are skipped; leases older than $2 are taken over.
	claimEventsSQL = `UPDATE order_events SET claimed_at = NOW()
		WHERE id IN (
			SELECT id FROM order_events
			WHERE dispatched_at IS NULL AND (claimed_at IS NULL OR claimed_at < $2)
			ORDER BY created_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, kind, order_id, user_id, order_number, status, message, tracking, total, created_at`

	markDispatchedSQL = `UPDATE order_events SET dispatched_at = NOW(), last_error = NULLIF($2, '')
		WHERE id = $1`

	oldestPendingSQL = `SELECT MIN(created_at) FROM order_events WHERE dispatched_at IS NULL`
)

func insertEvent(ctx context.Context, q querier, e notify.Event) error {
	_, err := q.Exec(ctx, insertEventSQL,
		e.ID, string(e.Kind), e.OrderID, e.UserID, e.OrderNumber, e.Status,
		e.Message, e.TrackingNumber, e.Total, e.CreatedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "insert %s event for order %d", e.Kind, e.OrderID)
	}
	return nil
}

var _ outbox.Store = (*OutboxStore)(nil)

// OutboxStore implements outbox.Store on the order_events table.
type OutboxStore struct {
	pool *pgxpool.Pool
}

// NewOutboxStore returns an OutboxStore that uses the given pool.
func NewOutboxStore(pool *pgxpool.Pool) *OutboxStore {
	return &OutboxStore{pool: pool}
}

func (s *OutboxStore) Claim(ctx context.Context, limit int, staleBefore time.Time) ([]notify.Event, error) {
	rows, err := s.pool.Query(ctx, claimEventsSQL, limit, staleBefore)
	if err != nil {
		return nil, errors.Wrap(err, "claim events")
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (notify.Event, error) {
		var (
			e    notify.Event
			kind string
		)
		err := row.Scan(&e.ID, &kind, &e.OrderID, &e.UserID, &e.OrderNumber, &e.Status,
			&e.Message, &e.TrackingNumber, &e.Total, &e.CreatedAt)
		e.Kind = notify.Kind(kind)
		return e, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "claim events")
	}
	// RETURNING order is unspecified.
	slices.SortFunc(events, func(a, b notify.Event) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return events, nil
}

func (s *OutboxStore) MarkDispatched(ctx context.Context, id uuid.UUID, lastErr string) error {
	if _, err := s.pool.Exec(ctx, markDispatchedSQL, id, lastErr); err != nil {
		return errors.Wrapf(err, "mark event %s dispatched", id)
	}
	return nil
}

// OldestPending returns when the oldest undispatched event was created.
func (s *OutboxStore) OldestPending(ctx context.Context) (time.Time, bool, error) {
	var at *time.Time
	if err := s.pool.QueryRow(ctx, oldestPendingSQL).Scan(&at); err != nil {
		return time.Time{}, false, errors.Wrap(err, "oldest pending event")
	}
	if at == nil {
		return time.Time{}, false, nil
	}
	return *at, true, nil
}
