package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateTax(t *testing.T) {
	tests := []struct {
		subtotal string
		want     string
	}{
		{"0", "0"},
		{"400", "72"},
		{"1000", "180"},
		{"99.99", "18"},
		{"123.45", "22.22"},
		{"0.05", "0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			got := CalculateTax(d(tt.subtotal))
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCalculateShipping(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		state    string
		want     string
	}{
		{"maharashtra", "100", "Maharashtra", "40"},
		{"karnataka", "499.99", "Karnataka", "40"},
		{"tamil nadu", "10", "Tamil Nadu", "50"},
		{"delhi", "400", "Delhi", "45"},
		{"gujarat", "400", "gujarat", "45"},
		{"upper case", "400", "DELHI", "45"},
		{"padded", "400", "  Delhi ", "45"},
		{"unknown state", "400", "Kerala", "60"},
		{"empty state", "400", "", "60"},
		{"threshold is free", "500", "Kerala", "0"},
		{"above threshold", "1000", "Karnataka", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateShipping(d(tt.subtotal), tt.state)
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCalculateShipping_FreeAboveThresholdForAnyState(t *testing.T) {
	states := []string{"Maharashtra", "Karnataka", "Tamil Nadu", "Delhi", "Gujarat", "Goa", ""}
	for _, sub := range []string{"500", "500.01", "750", "100000"} {
		for _, st := range states {
			assert.True(t, CalculateShipping(d(sub), st).IsZero(), "subtotal %s state %q", sub, st)
		}
	}
}

func TestQuote(t *testing.T) {
	b := Quote(d("400"), "Delhi")
	assert.True(t, d("45").Equal(b.Shipping))
	assert.True(t, d("72").Equal(b.Tax))
	assert.True(t, d("517").Equal(b.Total))

	b = Quote(d("1000"), "Karnataka")
	assert.True(t, b.Shipping.IsZero())
	assert.True(t, d("180").Equal(b.Tax))
	assert.True(t, d("1180").Equal(b.Total))
}

func TestBreakdown_WithDiscount(t *testing.T) {
	b := Quote(d("400"), "Delhi").WithDiscount(d("17"))
	assert.True(t, d("500").Equal(b.Total))
	assert.True(t, d("17").Equal(b.Discount))
	assert.True(t, b.Total.Equal(b.Subtotal.Add(b.Tax).Add(b.Shipping).Sub(b.Discount)))

	capped := Quote(d("400"), "Delhi").WithDiscount(d("9999"))
	assert.True(t, d("517").Equal(capped.Discount))
	assert.True(t, capped.Total.IsZero())

	negative := Quote(d("400"), "Delhi").WithDiscount(d("-5"))
	assert.True(t, negative.Discount.IsZero())
	assert.True(t, d("517").Equal(negative.Total))
}
