package outbox

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xenking/storefront/internal/domain/notify"
	"github.com/xenking/storefront/internal/domain/user"
)

type mockStore struct {
	mu      sync.Mutex
	pending []notify.Event
	acked   map[uuid.UUID]string
	claims  int
}

func newMockStore(events ...notify.Event) *mockStore {
	return &mockStore{pending: events, acked: make(map[uuid.UUID]string)}
}

func (s *mockStore) Claim(_ context.Context, limit int, _ time.Time) ([]notify.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims++
	n := min(limit, len(s.pending))
	out := append([]notify.Event(nil), s.pending[:n]...)
	s.pending = s.pending[n:]
	return out, nil
}

func (s *mockStore) MarkDispatched(_ context.Context, id uuid.UUID, lastErr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acked[id] = lastErr
	return nil
}

type mockUsers map[int64]*user.User

func (m mockUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := m[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

type sent struct {
	kind    string
	email   string
	number  string
	extra   string
	userID  int64
	orderID int64
	status  string
	message string
}

type recorder struct {
	mu       sync.Mutex
	sent     []sent
	notifErr error
	mailErr  error
}

func (r *recorder) record(s sent, err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		return err
	}
	r.sent = append(r.sent, s)
	return nil
}

func (r *recorder) SendOrderStatusNotification(_ context.Context, userID, orderID int64, status, message string) error {
	return r.record(sent{kind: "notification", userID: userID, orderID: orderID, status: status, message: message}, r.notifErr)
}

func (r *recorder) SendOrderConfirmation(_ context.Context, email, _, number string, total decimal.Decimal) error {
	return r.record(sent{kind: "confirmation", email: email, number: number, extra: total.StringFixed(2)}, r.mailErr)
}

func (r *recorder) SendOrderShipped(_ context.Context, email, _, number, tracking string) error {
	return r.record(sent{kind: "shipped", email: email, number: number, extra: tracking}, r.mailErr)
}

func (r *recorder) SendOrderDelivered(_ context.Context, email, _, number string) error {
	return r.record(sent{kind: "delivered", email: email, number: number}, r.mailErr)
}

func (r *recorder) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, s := range r.sent {
		out = append(out, s.kind)
	}
	return out
}

func event(kind notify.Kind, userID int64) notify.Event {
	return notify.Event{
		ID:             uuid.New(),
		Kind:           kind,
		OrderID:        10,
		UserID:         userID,
		OrderNumber:    "ORD1700000000001",
		Status:         "pending",
		Message:        "Your order ORD1700000000001 has been placed successfully",
		TrackingNumber: "TRK1",
		Total:          decimal.RequireFromString("517"),
		CreatedAt:      time.Now(),
	}
}

var users = mockUsers{42: {ID: 42, Email: "asha@example.com", Name: "Asha"}}

func TestDrain(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		kind  notify.Kind
		sends []string
	}{
		{notify.KindOrderPlaced, []string{"confirmation", "notification"}},
		{notify.KindShipped, []string{"notification", "shipped"}},
		{notify.KindDelivered, []string{"delivered", "notification"}},
		{notify.KindCancelled, []string{"notification"}},
		{notify.KindStatusChanged, []string{"notification"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			e := event(tt.kind, 42)
			store := newMockStore(e)
			rec := &recorder{}
			d := NewDispatcher(store, users, rec, rec, Config{}, zaptest.NewLogger(t))

			require.NoError(t, d.Drain(ctx))
			assert.ElementsMatch(t, tt.sends, rec.kinds())
			assert.Equal(t, map[uuid.UUID]string{e.ID: ""}, store.acked)
		})
	}
}

func TestDrainRecordsFailures(t *testing.T) {
	ctx := context.Background()
	e := event(notify.KindOrderPlaced, 42)
	store := newMockStore(e)
	rec := &recorder{mailErr: errors.New("smtp down")}
	d := NewDispatcher(store, users, rec, rec, Config{}, zaptest.NewLogger(t))

	require.NoError(t, d.Drain(ctx))
	assert.Equal(t, []string{"notification"}, rec.kinds())
	assert.Contains(t, store.acked[e.ID], "smtp down")
}

func TestDrainUnknownUser(t *testing.T) {
	ctx := context.Background()
	e := event(notify.KindShipped, 7)
	store := newMockStore(e)
	rec := &recorder{}
	d := NewDispatcher(store, users, rec, rec, Config{}, zaptest.NewLogger(t))

	require.NoError(t, d.Drain(ctx))
	assert.Equal(t, []string{"notification"}, rec.kinds())
	assert.Contains(t, store.acked[e.ID], "user not found")
}

func TestDrainBatches(t *testing.T) {
	ctx := context.Background()
	var events []notify.Event
	for range 5 {
		events = append(events, event(notify.KindCancelled, 42))
	}
	store := newMockStore(events...)
	rec := &recorder{}
	d := NewDispatcher(store, users, rec, rec, Config{BatchSize: 2}, zaptest.NewLogger(t))

	require.NoError(t, d.Drain(ctx))
	assert.Len(t, store.acked, 5)
	assert.Equal(t, 3, store.claims)
}

func TestRunWake(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := newMockStore()
	rec := &recorder{}
	d := NewDispatcher(store, users, rec, rec, Config{PollInterval: time.Hour}, zaptest.NewLogger(t))

	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	e := event(notify.KindCancelled, 42)
	store.mu.Lock()
	store.pending = append(store.pending, e)
	store.mu.Unlock()
	d.Wake()

	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		_, ok := store.acked[e.ID]
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not stop")
	}
}

func TestWakeDoesNotBlock(t *testing.T) {
	d := NewDispatcher(newMockStore(), users, &recorder{}, &recorder{}, Config{}, zaptest.NewLogger(t))
	for range 10 {
		d.Wake()
	}
	assert.Len(t, d.wake, 1)
}
