package create_booking

import (
	"strings"

	"github.com/m04kA/experience-booking/internal/domain"
	createBooking "github.com/m04kA/experience-booking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ExperienceID string          `json:"experienceId" validate:"required"`
	Date         string          `json:"date" validate:"required"` // "2025-10-29"
	Time         string          `json:"time" validate:"required"` // "10:00 AM"
	Quantity     int             `json:"quantity" validate:"gt=0,max=2147483647"`
	Customer     CustomerRequest `json:"customer"`
	PromoCode    string          `json:"promoCode,omitempty" validate:"max=64"`
}

// CustomerRequest контактные данные покупателя
type CustomerRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email,max=320"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(idempotencyKey string) (*createBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ExperienceID:   r.ExperienceID,
		Date:           date,
		Time:           r.Time,
		Quantity:       r.Quantity,
		CustomerName:   r.Customer.Name,
		CustomerEmail:  r.Customer.Email,
		PromoCode:      r.PromoCode,
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
	}, nil
}
