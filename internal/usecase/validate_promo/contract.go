package validate_promo

import (
	"context"

	"github.com/m04kA/experience-booking/internal/domain"
)

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
