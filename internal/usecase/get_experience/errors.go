package get_experience

import "errors"

var (
	// ErrNotFound возвращается, когда впечатление не найдено
	ErrNotFound = errors.New("get_experience: experience not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_experience: internal error")
)
