package seed

import "errors"

var (
	// ErrInvalidCatalog возвращается, когда демо-данные не проходят доменную валидацию
	ErrInvalidCatalog = errors.New("seed: invalid catalog data")

	// ErrSeed возвращается при ошибке записи в хранилище
	ErrSeed = errors.New("seed: failed to seed data")
)
