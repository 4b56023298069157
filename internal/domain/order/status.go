package order

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusReturned   Status = "returned"
)

// transitions lists the statuses reachable from each status. Statuses
// without an entry are terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusReturned},
	StatusDelivered:  {StatusReturned},
	StatusCancelled:  nil,
	StatusReturned:   nil,
}

// ErrUnknownStatus is returned when parsing an unrecognised status.
var ErrUnknownStatus = errors.New("unknown order status")

// ParseStatus converts s into a Status, ignoring case and surrounding space.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", errors.Wrapf(ErrUnknownStatus, "%q", s)
	}
	return st, nil
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Next returns the statuses reachable from s.
func (s Status) Next() []Status {
	return append([]Status(nil), transitions[s]...)
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s Status) CanTransitionTo(next Status) bool {
	for _, st := range transitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

// TransitionError reports a status change the state machine forbids.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Is makes errors.Is(err, ErrInvalidTransition) match any TransitionError.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// ErrInvalidTransition matches every TransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")
