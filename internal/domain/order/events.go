package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xenking/storefront/internal/domain/notify"
)

func placedEvent(o *Order) notify.Event {
	return newEvent(o, notify.KindOrderPlaced, o.CreatedAt,
		fmt.Sprintf("Your order %s has been placed successfully", o.Number))
}

// statusEvent describes the transition o has just gone through.
func statusEvent(o *Order, at time.Time) notify.Event {
	switch o.Status {
	case StatusShipped:
		e := newEvent(o, notify.KindShipped, at,
			fmt.Sprintf("Your order %s has been shipped. Tracking number: %s", o.Number, deref(o.TrackingNumber)))
		e.TrackingNumber = deref(o.TrackingNumber)
		return e
	case StatusDelivered:
		return newEvent(o, notify.KindDelivered, at,
			fmt.Sprintf("Your order %s has been delivered. Tell us what you think with a review!", o.Number))
	case StatusCancelled:
		return newEvent(o, notify.KindCancelled, at,
			fmt.Sprintf("Your order %s has been cancelled", o.Number))
	case StatusProcessing:
		return newEvent(o, notify.KindStatusChanged, at,
			fmt.Sprintf("Your order %s is being processed", o.Number))
	default:
		return newEvent(o, notify.KindStatusChanged, at,
			fmt.Sprintf("Your order %s is now %s", o.Number, o.Status))
	}
}

func newEvent(o *Order, kind notify.Kind, at time.Time, msg string) notify.Event {
	return notify.Event{
		ID:          uuid.New(),
		Kind:        kind,
		OrderID:     o.ID,
		UserID:      o.UserID,
		OrderNumber: o.Number,
		Status:      string(o.Status),
		Message:     msg,
		Total:       o.TotalAmount,
		CreatedAt:   at,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
