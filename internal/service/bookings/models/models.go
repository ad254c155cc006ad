package models

import (
	"time"

	"github.com/m04kA/experience-booking/internal/domain"
)

// BookingResponse бронирование в формате API
type BookingResponse struct {
	ID            string    `json:"id"`
	ExperienceID  string    `json:"experienceId"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Time          string    `json:"time"`
	Quantity      int       `json:"quantity"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	PromoCode     *string   `json:"promoCode,omitempty"`
	Subtotal      float64   `json:"subtotal"`
	Taxes         float64   `json:"taxes"`
	Discount      float64   `json:"discount"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		ExperienceID:  b.ExperienceID,
		Date:          b.Date.Format(domain.DateFormat),
		Time:          b.Time,
		Quantity:      b.Quantity,
		CustomerName:  b.Customer.Name,
		CustomerEmail: b.Customer.Email,
		PromoCode:     b.PromoCode,
		Subtotal:      b.Subtotal,
		Taxes:         b.Taxes,
		Discount:      b.Discount,
		Total:         b.Total,
		CreatedAt:     b.CreatedAt,
	}
}
