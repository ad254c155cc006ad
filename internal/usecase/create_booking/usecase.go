package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/experience-booking/internal/domain"
	bookingRepo "github.com/m04kA/experience-booking/internal/infra/storage/booking"
	experienceRepo "github.com/m04kA/experience-booking/internal/infra/storage/experience"
	"github.com/m04kA/experience-booking/pkg/metrics"
)

// UseCase use case для создания бронирования
type UseCase struct {
	experienceRepo ExperienceRepository
	promoRepo      PromoRepository
	bookingRepo    BookingRepository
	txManager      TransactionManager
	metrics        MetricsRecorder
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	experienceRepo ExperienceRepository,
	promoRepo PromoRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		experienceRepo: experienceRepo,
		promoRepo:      promoRepo,
		bookingRepo:    bookingRepo,
		txManager:      txManager,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Резервирование мест и вставка бронирования выполняются в одной транзакции:
// либо слот увеличен и бронирование создано, либо ничего не изменилось.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: experience=%s, date=%s, time=%s, quantity=%d",
		req.ExperienceID, req.Date.Format(domain.DateFormat), req.Time, req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBooking(metrics.OutcomeInvalid)
		return nil, err
	}

	// 2. Повтор запроса с тем же ключом идемпотентности возвращает уже созданное бронирование
	if req.IdempotencyKey != "" {
		existing, err := uc.findByIdempotencyKey(ctx, req.IdempotencyKey)
		if err != nil {
			uc.metrics.IncBooking(metrics.OutcomeFailed)
			return nil, err
		}
		if existing != nil {
			return uc.replay(existing, req)
		}
	}

	// 3. Получаем впечатление
	experience, err := uc.experienceRepo.GetByID(ctx, req.ExperienceID)
	if err != nil {
		if errors.Is(err, experienceRepo.ErrExperienceNotFound) {
			uc.logger.Warn("CreateBooking: experience id=%s not found", req.ExperienceID)
			uc.metrics.IncBooking(metrics.OutcomeNotFound)
			return nil, ErrNotFound
		}
		uc.logger.Error("CreateBooking: failed to get experience id=%s: %v", req.ExperienceID, err)
		uc.metrics.IncBooking(metrics.OutcomeFailed)
		return nil, fmt.Errorf("%w: failed to get experience: %v", ErrPersistence, err)
	}

	// 4. Ищем слот по точному совпадению даты и времени
	slot, ok := experience.FindSlot(req.Date, req.Time)
	if !ok {
		uc.logger.Warn("CreateBooking: slot not found for %s %s", req.Date.Format(domain.DateFormat), req.Time)
		uc.metrics.IncBooking(metrics.OutcomeNotFound)
		return nil, ErrSlotNotFound
	}

	// Быстрый отказ по снимку; окончательно проверяет условный UPDATE в транзакции
	if !slot.CanAdmit(req.Quantity) {
		uc.logger.Warn("CreateBooking: slot sold out, %d/%d booked, requested %d",
			slot.Booked, slot.Capacity, req.Quantity)
		uc.metrics.IncBooking(metrics.OutcomeCapacityExceeded)
		return nil, ErrCapacityExceeded
	}

	// 5. Считаем стоимость
	promo := uc.lookupPromo(ctx, req.PromoCode)
	pricing := domain.ComputePricing(experience.Price, req.Quantity, promo)

	booking := &domain.Booking{
		ExperienceID: experience.ID,
		Date:         slot.Date,
		Time:         slot.Time,
		Quantity:     req.Quantity,
		Customer: domain.Customer{
			Name:  strings.TrimSpace(req.CustomerName),
			Email: strings.TrimSpace(req.CustomerEmail),
		},
	}
	booking.ApplyPricing(pricing)
	if promo != nil {
		code := promo.Code
		booking.PromoCode = &code
	}
	if req.IdempotencyKey != "" {
		key := req.IdempotencyKey
		booking.IdempotencyKey = &key
	}

	// 6. Резервируем места и сохраняем бронирование в одной транзакции
	var result *domain.Booking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booked, err := uc.experienceRepo.ReserveSeats(txCtx, experience.ID, slot.Date, slot.Time, req.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, experienceRepo.ErrCapacityExceeded):
				return ErrCapacityExceeded
			case errors.Is(err, experienceRepo.ErrSlotNotFound), errors.Is(err, experienceRepo.ErrExperienceNotFound):
				return ErrSlotNotFound
			default:
				return fmt.Errorf("%w: failed to reserve seats: %v", ErrPersistence, err)
			}
		}

		uc.logger.Info("CreateBooking: reserved %d seats, slot now %d/%d booked",
			req.Quantity, booked, slot.Capacity)

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateIdempotencyKey) {
				return bookingRepo.ErrDuplicateIdempotencyKey
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrPersistence, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return uc.handleTxError(ctx, req, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%.2f", result.ID, result.Total)
	uc.metrics.IncBooking(metrics.OutcomeConfirmed)

	return &Response{Booking: result}, nil
}

// handleTxError переводит ошибку транзакции в ошибку use case.
// Проигравший гонку дубль по ключу идемпотентности откатывается и получает бронирование победителя.
func (uc *UseCase) handleTxError(ctx context.Context, req *Request, err error) (*Response, error) {
	switch {
	case errors.Is(err, bookingRepo.ErrDuplicateIdempotencyKey):
		existing, findErr := uc.findByIdempotencyKey(ctx, req.IdempotencyKey)
		if findErr != nil || existing == nil {
			uc.logger.Error("CreateBooking: duplicate idempotency key but booking not readable: %v", findErr)
			uc.metrics.IncBooking(metrics.OutcomeFailed)
			return nil, fmt.Errorf("%w: idempotency key conflict", ErrPersistence)
		}
		uc.logger.Info("CreateBooking: concurrent duplicate resolved to booking id=%s", existing.ID)
		return uc.replay(existing, req)
	case errors.Is(err, ErrCapacityExceeded):
		uc.logger.Warn("CreateBooking: slot capacity exceeded for %s %s", req.Date.Format(domain.DateFormat), req.Time)
		uc.metrics.IncBooking(metrics.OutcomeCapacityExceeded)
		return nil, err
	case errors.Is(err, ErrSlotNotFound):
		uc.logger.Warn("CreateBooking: slot disappeared for %s %s", req.Date.Format(domain.DateFormat), req.Time)
		uc.metrics.IncBooking(metrics.OutcomeNotFound)
		return nil, err
	case errors.Is(err, ErrPersistence):
		uc.logger.Error("CreateBooking: %v", err)
		uc.metrics.IncBooking(metrics.OutcomeFailed)
		return nil, err
	default:
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		uc.metrics.IncBooking(metrics.OutcomeFailed)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}

// replay возвращает ранее созданное бронирование, если повтор описывает тот же заказ:
// то же впечатление, тот же слот и то же количество мест
func (uc *UseCase) replay(existing *domain.Booking, req *Request) (*Response, error) {
	if !sameOrder(existing, req) {
		uc.logger.Warn("CreateBooking: idempotency key of booking id=%s reused for experience=%s, %s %s, quantity=%d",
			existing.ID, req.ExperienceID, req.Date.Format(domain.DateFormat), req.Time, req.Quantity)
		uc.metrics.IncBooking(metrics.OutcomeIdempotencyConflict)
		return nil, ErrIdempotencyKeyReused
	}

	uc.logger.Info("CreateBooking: replaying booking id=%s for idempotency key", existing.ID)
	uc.metrics.IncBooking(metrics.OutcomeReplayed)
	return &Response{Booking: existing, Replayed: true}, nil
}

func sameOrder(b *domain.Booking, req *Request) bool {
	return strings.EqualFold(b.ExperienceID, strings.TrimSpace(req.ExperienceID)) &&
		b.Date.Format(domain.DateFormat) == req.Date.Format(domain.DateFormat) &&
		b.Time == req.Time &&
		b.Quantity == req.Quantity
}

func (uc *UseCase) findByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	existing, err := uc.bookingRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, nil
		}
		uc.logger.Error("CreateBooking: failed to check idempotency key: %v", err)
		return nil, fmt.Errorf("%w: failed to check idempotency key: %v", ErrPersistence, err)
	}
	return existing, nil
}

// lookupPromo ищет промокод. Неизвестный код и ошибка поиска дают nil (скидка 0),
// бронирование из-за промокода не отклоняется.
func (uc *UseCase) lookupPromo(ctx context.Context, rawCode string) *domain.Promo {
	code := domain.NormalizePromoCode(rawCode)
	if code == "" {
		return nil
	}

	promo, err := uc.promoRepo.GetByCode(ctx, code)
	if err != nil {
		uc.logger.Warn("CreateBooking: promo code %q ignored: %v", code, err)
		return nil
	}

	return promo
}
