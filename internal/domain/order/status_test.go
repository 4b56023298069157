package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "pending", want: StatusPending},
		{in: " Shipped ", want: StatusShipped},
		{in: "RETURNED", want: StatusReturned},
		{in: "refunded", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	all := []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusProcessing}:   true,
		{StatusPending, StatusCancelled}:    true,
		{StatusProcessing, StatusShipped}:   true,
		{StatusProcessing, StatusCancelled}: true,
		{StatusShipped, StatusDelivered}:    true,
		{StatusShipped, StatusReturned}:     true,
		{StatusDelivered, StatusReturned}:   true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]Status{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusReturned.Terminal())
	assert.False(t, StatusDelivered.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.Empty(t, StatusCancelled.Next())
	assert.Equal(t, []Status{StatusDelivered, StatusReturned}, StatusShipped.Next())
}

func TestTransitionErrorIs(t *testing.T) {
	var err error = &TransitionError{From: StatusCancelled, To: StatusPending}
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.EqualError(t, err, "invalid status transition from cancelled to pending")
}
