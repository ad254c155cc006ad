package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// PromoType represents the kind of discount a promo gives
type PromoType string

const (
	PromoTypePercent PromoType = "percent"
	PromoTypeFlat    PromoType = "flat"
)

// Promo represents a discount code
type Promo struct {
	Code      string // Всегда в верхнем регистре
	Type      PromoType
	Amount    float64 // percent: 0-100, flat: денежная сумма
	CreatedAt time.Time
}

// NormalizePromoCode приводит код к виду, в котором он хранится
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParsePromoType конвертирует строку в PromoType
func ParsePromoType(value string) (PromoType, error) {
	switch PromoType(strings.ToLower(strings.TrimSpace(value))) {
	case PromoTypePercent:
		return PromoTypePercent, nil
	case PromoTypeFlat:
		return PromoTypeFlat, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPromoType, value)
	}
}

// Discount computes the discount for price * quantity.
// Percent: round(price * quantity * amount / 100), flat: amount as is.
func (p *Promo) Discount(price float64, quantity int) float64 {
	switch p.Type {
	case PromoTypePercent:
		return RoundHalfUp(price * float64(quantity) * (p.Amount / 100))
	case PromoTypeFlat:
		return p.Amount
	default:
		return 0
	}
}

// Message returns the human readable description shown on validation
func (p *Promo) Message() string {
	amount := strconv.FormatFloat(p.Amount, 'f', -1, 64)
	if p.Type == PromoTypePercent {
		return amount + "% discount applied!"
	}
	return "₹" + amount + " off applied!"
}

// Validate проверяет промокод при создании:
// percent - в диапазоне (0, 100], flat - строго положительная сумма
func (p *Promo) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidPromo)
	}
	if utf8.RuneCountInString(p.Code) > MaxPromoCodeLength {
		return fmt.Errorf("%w: code is longer than %d characters", ErrInvalidPromo, MaxPromoCodeLength)
	}
	if p.Code != NormalizePromoCode(p.Code) {
		return fmt.Errorf("%w: code must be upper case without surrounding spaces", ErrInvalidPromo)
	}

	switch p.Type {
	case PromoTypePercent:
		if p.Amount <= 0 || p.Amount > MaxPercentDiscount {
			return fmt.Errorf("%w: percent amount must be in (0, %d]", ErrInvalidPromo, MaxPercentDiscount)
		}
	case PromoTypeFlat:
		if p.Amount <= 0 {
			return fmt.Errorf("%w: flat amount must be positive", ErrInvalidPromo)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPromoType, p.Type)
	}

	// amount хранится как NUMERIC(12, 2): лишние знаки молча округлились бы
	if p.Amount > MaxPromoAmount {
		return fmt.Errorf("%w: amount must be at most %.2f", ErrInvalidPromo, MaxPromoAmount)
	}
	if !hasAtMostDecimals(p.Amount, PromoAmountDecimals) {
		return fmt.Errorf("%w: amount must have at most %d decimal places", ErrInvalidPromo, PromoAmountDecimals)
	}

	return nil
}

// hasAtMostDecimals проверяет, что x представимо с digits знаками после запятой.
// Допуск покрывает погрешность float64 (0.1 * 100 = 10.000000000000002).
func hasAtMostDecimals(x float64, digits int) bool {
	scaled := x * math.Pow10(digits)
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}
