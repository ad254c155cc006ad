package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/experience-booking/internal/domain"
	"github.com/m04kA/experience-booking/pkg/dbmetrics"
	"github.com/m04kA/experience-booking/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении UNIQUE ограничения
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"experience_id",
	"booking_date",
	"booking_time",
	"quantity",
	"customer_name",
	"customer_email",
	"promo_code",
	"subtotal",
	"taxes",
	"discount",
	"total",
	"idempotency_key",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её: при бронировании
// вставка выполняется в одной транзакции с резервированием мест слота.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	booking.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"experience_id",
			"booking_date",
			"booking_time",
			"quantity",
			"customer_name",
			"customer_email",
			"promo_code",
			"subtotal",
			"taxes",
			"discount",
			"total",
			"idempotency_key",
		).
		Values(
			booking.ID,
			booking.ExperienceID,
			booking.Date.Format(domain.DateFormat),
			booking.Time,
			booking.Quantity,
			booking.Customer.Name,
			booking.Customer.Email,
			booking.PromoCode,
			booking.Subtotal,
			booking.Taxes,
			booking.Discount,
			booking.Total,
			booking.IdempotencyKey,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateIdempotencyKey
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID.
// Некорректный (не UUID) идентификатор считается отсутствующим.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBookingNotFound
	}

	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByIdempotencyKey получает бронирование, созданное с указанным ключом идемпотентности
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"idempotency_key": key}, "GetByIdempotencyKey")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var booking domain.Booking
	var promoCode, idempotencyKey sql.NullString

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ExperienceID,
		&booking.Date,
		&booking.Time,
		&booking.Quantity,
		&booking.Customer.Name,
		&booking.Customer.Email,
		&promoCode,
		&booking.Subtotal,
		&booking.Taxes,
		&booking.Discount,
		&booking.Total,
		&idempotencyKey,
		&booking.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	booking.Date = booking.Date.UTC()
	if promoCode.Valid {
		booking.PromoCode = &promoCode.String
	}
	if idempotencyKey.Valid {
		booking.IdempotencyKey = &idempotencyKey.String
	}

	return &booking, nil
}
