package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrNotFound возвращается, когда впечатление не найдено
	ErrNotFound = errors.New("create_booking: experience not found")

	// ErrSlotNotFound возвращается, когда у впечатления нет слота с такими датой и временем
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrCapacityExceeded возвращается, когда в слоте не хватает мест
	ErrCapacityExceeded = errors.New("create_booking: slot sold out or insufficient capacity")

	// ErrIdempotencyKeyReused возвращается, когда ключ идемпотентности уже использован
	// для бронирования другого слота или другого количества мест
	ErrIdempotencyKeyReused = errors.New("create_booking: idempotency key already used with a different request")

	// ErrPersistence возвращается при ошибках хранилища
	ErrPersistence = errors.New("create_booking: persistence error")
)
