package validate_promo

import "errors"

var (
	// ErrEmptyCode возвращается, когда промокод не передан или состоит из пробелов
	ErrEmptyCode = errors.New("validate_promo: promo code required")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_promo: internal error")
)
