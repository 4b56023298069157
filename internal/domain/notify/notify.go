// Package notify defines order lifecycle events and the collaborators that
// deliver them to customers.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies what happened to an order.
type Kind string

const (
	KindOrderPlaced   Kind = "order_placed"
	KindStatusChanged Kind = "order_status_changed"
	KindShipped       Kind = "order_shipped"
	KindDelivered     Kind = "order_delivered"
	KindCancelled     Kind = "order_cancelled"
)

// Event is an order lifecycle event written to the outbox in the same
// transaction as the change it describes.
type Event struct {
	ID             uuid.UUID
	Kind           Kind
	OrderID        int64
	UserID         int64
	OrderNumber    string
	Status         string
	Message        string
	TrackingNumber string
	Total          decimal.Decimal
	CreatedAt      time.Time
}

// Notifier delivers in-app order status notifications.
type Notifier interface {
	SendOrderStatusNotification(ctx context.Context, userID, orderID int64, status, message string) error
}

// Mailer sends transactional order emails.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, email, name, orderNumber string, total decimal.Decimal) error
	SendOrderShipped(ctx context.Context, email, name, orderNumber, trackingNumber string) error
	SendOrderDelivered(ctx context.Context, email, name, orderNumber string) error
}
