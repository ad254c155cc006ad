package seed

import (
	"context"

	"github.com/m04kA/experience-booking/internal/domain"
)

// ExperienceRepository интерфейс репозитория впечатлений
type ExperienceRepository interface {
	Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	Upsert(ctx context.Context, promo *domain.Promo) (*domain.Promo, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
