package domain

import "errors"

var (
	// ErrInvalidPromo возвращается, когда промокод не проходит валидацию при создании
	ErrInvalidPromo = errors.New("domain: invalid promo")

	// ErrInvalidPromoType возвращается для неизвестного типа скидки
	ErrInvalidPromoType = errors.New("domain: unknown promo type")

	// ErrInvalidExperience возвращается, когда впечатление не проходит валидацию при создании
	ErrInvalidExperience = errors.New("domain: invalid experience")
)
