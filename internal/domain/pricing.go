package domain

import "math"

// Pricing derived money fields of a booking
type Pricing struct {
	Subtotal float64
	Taxes    float64
	Discount float64
	Total    float64
}

// ComputePricing считает стоимость бронирования.
// promo может быть nil - тогда скидка 0.
//
//	subtotal = price * quantity
//	taxes    = round(subtotal * TaxRate)
//	total    = max(0, subtotal + taxes - discount)
func ComputePricing(price float64, quantity int, promo *Promo) Pricing {
	subtotal := price * float64(quantity)
	taxes := RoundHalfUp(subtotal * TaxRate)

	var discount float64
	if promo != nil {
		discount = promo.Discount(price, quantity)
	}

	return Pricing{
		Subtotal: subtotal,
		Taxes:    taxes,
		Discount: discount,
		Total:    math.Max(0, subtotal+taxes-discount),
	}
}

// RoundHalfUp rounds to the nearest integer, halves go up (2.5 -> 3, -2.5 -> -2)
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
