package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/experience-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Длины считаются в символах, как и в тегах validate на HTTP слое.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ExperienceID) == "" {
		return fmt.Errorf("%w: experienceId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Time) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if req.Quantity > domain.MaxBookingQuantity {
		return fmt.Errorf("%w: quantity must be at most %d", ErrInvalidInput, domain.MaxBookingQuantity)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid customer email is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(email) > domain.MaxCustomerEmailLength {
		return fmt.Errorf("%w: customer email must be at most %d characters", ErrInvalidInput, domain.MaxCustomerEmailLength)
	}

	if utf8.RuneCountInString(req.PromoCode) > domain.MaxPromoCodeLength {
		return fmt.Errorf("%w: promo code must be at most %d characters", ErrInvalidInput, domain.MaxPromoCodeLength)
	}

	if utf8.RuneCountInString(req.IdempotencyKey) > domain.MaxIdempotencyKeyLen {
		return fmt.Errorf("%w: idempotency key must be at most %d characters", ErrInvalidInput, domain.MaxIdempotencyKeyLen)
	}

	return nil
}
