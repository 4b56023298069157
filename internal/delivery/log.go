package delivery

import (
	"context"

	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/notify"
)

var (
	_ notify.Notifier = LogNotifier{}
	_ notify.Mailer   = LogMailer{}
)

// LogNotifier writes notifications to the context logger. It is used when
// no Kafka brokers are configured.
type LogNotifier struct{}

func (LogNotifier) SendOrderStatusNotification(ctx context.Context, userID, orderID int64, status, message string) error {
	zctx.From(ctx).Info("Order notification",
		zap.Int64("user_id", userID),
		zap.Int64("order_id", orderID),
		zap.String("status", status),
		zap.String("message", message),
	)
	return nil
}

// LogMailer writes emails to the context logger. It is used when no SMTP
// host is configured.
type LogMailer struct{}

func (LogMailer) SendOrderConfirmation(ctx context.Context, email, _, orderNumber string, total decimal.Decimal) error {
	zctx.From(ctx).Info("Order confirmation email",
		zap.String("to", email),
		zap.String("order_number", orderNumber),
		zap.String("total", total.StringFixed(2)),
	)
	return nil
}

func (LogMailer) SendOrderShipped(ctx context.Context, email, _, orderNumber, trackingNumber string) error {
	zctx.From(ctx).Info("Order shipped email",
		zap.String("to", email),
		zap.String("order_number", orderNumber),
		zap.String("tracking_number", trackingNumber),
	)
	return nil
}

func (LogMailer) SendOrderDelivered(ctx context.Context, email, _, orderNumber string) error {
	zctx.From(ctx).Info("Order delivered email",
		zap.String("to", email),
		zap.String("order_number", orderNumber),
	)
	return nil
}
