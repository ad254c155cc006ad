package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/experience-booking/internal/domain"
)

// ExperienceRepository интерфейс репозитория впечатлений
type ExperienceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	ReserveSeats(ctx context.Context, experienceID string, date time.Time, slotTime string, quantity int) (int, error)
}

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promo, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учитывает исходы бронирований
type MetricsRecorder interface {
	IncBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
