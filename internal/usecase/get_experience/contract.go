package get_experience

import (
	"context"

	"github.com/m04kA/experience-booking/internal/domain"
)

// ExperienceRepository интерфейс репозитория впечатлений
type ExperienceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	// DoReadOnly читает впечатление и его слоты из одного снимка
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
