package delivery

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type mockWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *mockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *mockWriter) Close() error { return nil }

func TestKafkaNotifier(t *testing.T) {
	w := &mockWriter{}
	n := &KafkaNotifier{writer: w, now: func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	}}

	err := n.SendOrderStatusNotification(context.Background(), 42, 7, "shipped", `Order "ORD1" shipped`)
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "42", string(w.msgs[0].Key))

	got := map[string]string{}
	d := jx.DecodeBytes(w.msgs[0].Value)
	require.NoError(t, d.Obj(func(d *jx.Decoder, key string) error {
		switch d.Next() {
		case jx.String:
			v, err := d.Str()
			got[key] = v
			return err
		default:
			v, err := d.Num()
			got[key] = v.String()
			return err
		}
	}))
	assert.Equal(t, map[string]string{
		"type":    "order_update",
		"userId":  "42",
		"orderId": "7",
		"status":  "shipped",
		"message": `Order "ORD1" shipped`,
		"sentAt":  "2025-03-10T12:00:00Z",
	}, got)
}

func TestKafkaNotifierError(t *testing.T) {
	n := &KafkaNotifier{writer: &mockWriter{err: errors.New("broker down")}, now: time.Now}
	err := n.SendOrderStatusNotification(context.Background(), 1, 2, "pending", "m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestSMTPMailer(t *testing.T) {
	var sent []*gomail.Message
	m, err := newSMTPMailer("shop@example.com", func(msgs ...*gomail.Message) error {
		sent = append(sent, msgs...)
		return nil
	})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, m.SendOrderConfirmation(ctx, "asha@example.com", "Asha", "ORD1", decimal.RequireFromString("517")))
	require.NoError(t, m.SendOrderShipped(ctx, "asha@example.com", "Asha", "ORD1", "TRK9"))
	require.NoError(t, m.SendOrderDelivered(ctx, "asha@example.com", "Asha", "ORD1"))
	require.Len(t, sent, 3)

	assert.Equal(t, []string{"shop@example.com"}, sent[0].GetHeader("From"))
	assert.Equal(t, []string{"asha@example.com"}, sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Order Confirmation - ORD1"}, sent[0].GetHeader("Subject"))
	assert.Equal(t, []string{"Your order has shipped - ORD1"}, sent[1].GetHeader("Subject"))
	assert.Equal(t, []string{"Your order has been delivered - ORD1"}, sent[2].GetHeader("Subject"))
}

func TestSMTPMailerRender(t *testing.T) {
	m, err := newSMTPMailer("shop@example.com", func(...*gomail.Message) error { return nil })
	require.NoError(t, err)

	tests := []struct {
		tmpl string
		data mailData
		want []string
	}{
		{tmplConfirmation, mailData{Name: "Asha", OrderNumber: "ORD1", Total: "517.00"}, []string{"Asha", "ORD1", "517.00"}},
		{tmplShipped, mailData{Name: "Asha", OrderNumber: "ORD1", TrackingNumber: "TRK9"}, []string{"ORD1", "TRK9"}},
		{tmplDelivered, mailData{Name: "Asha", OrderNumber: "ORD1"}, []string{"Asha", "ORD1"}},
	}
	for _, tt := range tests {
		t.Run(tt.tmpl, func(t *testing.T) {
			html, plain, err := m.render(tt.tmpl, tt.data)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, html, w)
				assert.Contains(t, plain, w)
			}
		})
	}

	html, _, err := m.render(tmplShipped, mailData{Name: "<script>", OrderNumber: "ORD1"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestSMTPMailerErrors(t *testing.T) {
	m, err := newSMTPMailer("shop@example.com", func(...*gomail.Message) error {
		return errors.New("connection refused")
	})
	require.NoError(t, err)

	err = m.SendOrderDelivered(context.Background(), "asha@example.com", "Asha", "ORD1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = m.SendOrderDelivered(ctx, "asha@example.com", "Asha", "ORD1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogChannels(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, LogNotifier{}.SendOrderStatusNotification(ctx, 1, 2, "pending", "placed"))
	assert.NoError(t, LogMailer{}.SendOrderConfirmation(ctx, "a@example.com", "A", "ORD1", decimal.NewFromInt(1)))
	assert.NoError(t, LogMailer{}.SendOrderShipped(ctx, "a@example.com", "A", "ORD1", "T"))
	assert.NoError(t, LogMailer{}.SendOrderDelivered(ctx, "a@example.com", "A", "ORD1"))
}
