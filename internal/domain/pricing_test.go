package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePricing(t *testing.T) {
	percent10 := &Promo{Code: "ADNAN10", Type: PromoTypePercent, Amount: 10}
	flat100 := &Promo{Code: "ADNAN100", Type: PromoTypeFlat, Amount: 100}
	hugeFlat := &Promo{Code: "FREE", Type: PromoTypeFlat, Amount: 100000}

	tests := []struct {
		name     string
		price    float64
		quantity int
		promo    *Promo
		want     Pricing
	}{
		{
			name:     "no promo",
			price:    1200,
			quantity: 2,
			want:     Pricing{Subtotal: 2400, Taxes: 120, Discount: 0, Total: 2520},
		},
		{
			name:     "percent promo",
			price:    1200,
			quantity: 2,
			promo:    percent10,
			want:     Pricing{Subtotal: 2400, Taxes: 120, Discount: 240, Total: 2280},
		},
		{
			name:     "flat promo",
			price:    1500,
			quantity: 1,
			promo:    flat100,
			want:     Pricing{Subtotal: 1500, Taxes: 75, Discount: 100, Total: 1475},
		},
		{
			name:     "discount never drives total negative",
			price:    1000,
			quantity: 1,
			promo:    hugeFlat,
			want:     Pricing{Subtotal: 1000, Taxes: 50, Discount: 100000, Total: 0},
		},
		{
			name:     "taxes round half up",
			price:    10,
			quantity: 1,
			want:     Pricing{Subtotal: 10, Taxes: 1, Discount: 0, Total: 11},
		},
		{
			name:     "percent discount rounds",
			price:    2225,
			quantity: 1,
			promo:    percent10,
			want:     Pricing{Subtotal: 2225, Taxes: 111, Discount: 223, Total: 2113},
		},
		{
			name:     "zero quantity",
			price:    1200,
			quantity: 0,
			want:     Pricing{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePricing(tt.price, tt.quantity, tt.promo)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Total, 0.0)
		})
	}
}

func TestComputePricing_TaxesProperty(t *testing.T) {
	for subtotal := 0; subtotal <= 5000; subtotal += 7 {
		got := ComputePricing(float64(subtotal), 1, nil)
		assert.Equal(t, RoundHalfUp(float64(subtotal)*TaxRate), got.Taxes, "subtotal=%d", subtotal)
		assert.Equal(t, got.Subtotal+got.Taxes, got.Total)
	}
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, RoundHalfUp(2.5))
	assert.Equal(t, 2.0, RoundHalfUp(2.49))
	assert.Equal(t, -2.0, RoundHalfUp(-2.5))
	assert.Equal(t, 0.0, RoundHalfUp(0))
}

func TestBooking_ApplyPricing(t *testing.T) {
	var b Booking
	b.ApplyPricing(Pricing{Subtotal: 2400, Taxes: 120, Discount: 240, Total: 2280})

	assert.Equal(t, 2400.0, b.Subtotal)
	assert.Equal(t, 120.0, b.Taxes)
	assert.Equal(t, 240.0, b.Discount)
	assert.Equal(t, 2280.0, b.Total)
}
