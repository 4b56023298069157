// Package delivery implements the notification and email channels used by
// the outbox dispatcher.
package delivery

import (
	"context"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/segmentio/kafka-go"

	"github.com/xenking/storefront/internal/domain/notify"
)

const writeTimeout = 5 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ notify.Notifier = (*KafkaNotifier)(nil)

// KafkaNotifier publishes in-app order notifications to a Kafka topic,
// keyed by user id so a user's notifications stay ordered.
type KafkaNotifier struct {
	writer messageWriter
	now    func() time.Time
}

// NewKafkaNotifier returns a notifier writing to topic on brokers.
func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		now: time.Now,
	}
}

func (n *KafkaNotifier) SendOrderStatusNotification(ctx context.Context, userID, orderID int64, status, message string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("type")
	e.Str("order_update")
	e.FieldStart("userId")
	e.Int64(userID)
	e.FieldStart("orderId")
	e.Int64(orderID)
	e.FieldStart("status")
	e.Str(status)
	e.FieldStart("message")
	e.Str(message)
	e.FieldStart("sentAt")
	e.Str(n.now().UTC().Format(time.RFC3339))
	e.ObjEnd()

	err := n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: e.Bytes(),
	})
	if err != nil {
		return errors.Wrapf(err, "publish notification for order %d", orderID)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
