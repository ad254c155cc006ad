package promos

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных промокода
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
