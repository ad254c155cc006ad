package experience

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда впечатление не найдено (в том числе при некорректном ID)
	ErrExperienceNotFound = errors.New("experience.repository: experience not found")

	// ErrSlotNotFound возвращается, когда у впечатления нет слота с такой датой и временем
	ErrSlotNotFound = errors.New("experience.repository: slot not found")

	// ErrCapacityExceeded возвращается, когда booked + quantity превышает capacity
	ErrCapacityExceeded = errors.New("experience.repository: slot capacity exceeded")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("experience.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("experience.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("experience.repository: failed to scan row")
)
