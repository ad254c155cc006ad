package list_experiences

import (
	"context"

	"github.com/m04kA/experience-booking/internal/domain"
)

// ExperienceRepository интерфейс репозитория впечатлений
type ExperienceRepository interface {
	List(ctx context.Context) ([]*domain.Experience, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
