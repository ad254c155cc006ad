package create_booking

import (
	"time"

	"github.com/m04kA/experience-booking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	ExperienceID   string
	Date           time.Time // Дата слота (без времени)
	Time           string    // Метка времени слота, например "10:00 AM"
	Quantity       int
	CustomerName   string
	CustomerEmail  string
	PromoCode      string // Опционально, регистр не важен
	IdempotencyKey string // Опционально, из заголовка Idempotency-Key
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking

	// Replayed true, если бронирование с этим ключом идемпотентности уже существовало
	Replayed bool
}
