package domain

import "time"

// Customer contact data of the person booking
type Customer struct {
	Name  string
	Email string
}

// Booking represents a confirmed purchase against a slot.
// Created only by a successful booking transaction and never updated afterwards.
type Booking struct {
	ID           string
	ExperienceID string
	Date         time.Time
	Time         string
	Quantity     int
	Customer     Customer
	PromoCode    *string // Применённый промокод (nil, если скидки нет)

	// Денормализованные суммы, считаются один раз при создании
	Subtotal float64
	Taxes    float64
	Discount float64
	Total    float64

	IdempotencyKey *string

	CreatedAt time.Time
}

// ApplyPricing копирует рассчитанные суммы в бронирование
func (b *Booking) ApplyPricing(p Pricing) {
	b.Subtotal = p.Subtotal
	b.Taxes = p.Taxes
	b.Discount = p.Discount
	b.Total = p.Total
}
