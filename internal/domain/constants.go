package domain

import "math"

// Pricing constants
const (
	TaxRate = 0.05 // 5% от subtotal, округляется до целой денежной единицы

	MaxPercentDiscount = 100

	// Ограничения колонки promos.amount NUMERIC(12, 2)
	PromoAmountDecimals = 2
	MaxPromoAmount      = 9_999_999_999.99
)

// Business validation constants
const (
	MaxCustomerNameLength  = 200
	MaxCustomerEmailLength = 320
	MaxPromoCodeLength     = 64
	MaxIdempotencyKeyLen   = 128

	// MaxBookingQuantity верхняя граница quantity: booked и capacity хранятся в INTEGER
	MaxBookingQuantity = math.MaxInt32
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
