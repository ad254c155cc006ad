package experience

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/experience-booking/internal/domain"
	"github.com/m04kA/experience-booking/pkg/dbmetrics"
	"github.com/m04kA/experience-booking/pkg/psqlbuilder"
)

var experienceColumns = []string{
	"id",
	"title",
	"description",
	"price",
	"images",
	"created_at",
}

var slotColumns = []string{
	"experience_id",
	"slot_date",
	"slot_time",
	"capacity",
	"booked",
}

// Repository репозиторий впечатлений и их слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория впечатлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает впечатление вместе со слотами.
// ID генерируется репозиторием. Должен вызываться внутри транзакции (txmanager.Do),
// иначе при ошибке вставки слотов останется впечатление без слотов.
func (r *Repository) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	exp.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("experiences").
		Columns("id", "title", "description", "price", "images").
		Values(exp.ID, exp.Title, exp.Description, exp.Price, pq.Array(exp.Images)).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exp.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if len(exp.Slots) == 0 {
		return exp, nil
	}

	slotsInsert := psqlbuilder.Insert("experience_slots").
		Columns("experience_id", "position", "slot_date", "slot_time", "capacity", "booked")
	for i, s := range exp.Slots {
		slotsInsert = slotsInsert.Values(exp.ID, i, s.DateKey(), s.Time, s.Capacity, s.Booked)
	}

	query, args, err = slotsInsert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build slots insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute slots insert: %v", ErrExecQuery, err)
	}

	return exp, nil
}

// List возвращает все впечатления со слотами в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(experienceColumns...).
		From("experiences").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	experiences := make([]*domain.Experience, 0)
	byID := make(map[string]*domain.Experience)
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan experience: %v", ErrScanRow, err)
		}
		experiences = append(experiences, exp)
		byID[exp.ID] = exp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if len(experiences) == 0 {
		return experiences, nil
	}

	slots, err := r.selectSlots(ctx, executor, nil)
	if err != nil {
		return nil, err
	}
	for _, s := range slots {
		if exp, ok := byID[s.experienceID]; ok {
			exp.Slots = append(exp.Slots, s.slot)
		}
	}

	return experiences, nil
}

// GetByID получает впечатление со слотами.
// Некорректный (не UUID) идентификатор считается отсутствующим.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrExperienceNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(experienceColumns...).
		From("experiences").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	exp, err := scanExperience(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan experience: %v", ErrScanRow, err)
	}

	slots, err := r.selectSlots(ctx, executor, &id)
	if err != nil {
		return nil, err
	}
	for _, s := range slots {
		exp.Slots = append(exp.Slots, s.slot)
	}

	return exp, nil
}

// ReserveSeats атомарно увеличивает booked слота на quantity, только если
// quantity <= capacity - booked. Проверка и запись выполняются одним UPDATE:
// PostgreSQL блокирует строку и перепроверяет условие на последней версии,
// поэтому конкурентные бронирования одного слота не могут его переполнить.
// Возвращает новое значение booked.
func (r *Repository) ReserveSeats(ctx context.Context, experienceID string, date time.Time, slotTime string, quantity int) (int, error) {
	if _, err := uuid.Parse(experienceID); err != nil {
		return 0, ErrExperienceNotFound
	}
	// Больше MaxBookingQuantity не поместится ни в один слот (и в INTEGER)
	if quantity <= 0 || quantity > domain.MaxBookingQuantity {
		return 0, fmt.Errorf("%w: ReserveSeats - quantity %d out of range", ErrCapacityExceeded, quantity)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	// capacity - booked не переполняется, в отличие от booked + quantity
	query, args, err := psqlbuilder.Update("experience_slots").
		Set("booked", squirrel.Expr("booked + ?", quantity)).
		Where(squirrel.Eq{
			"experience_id": experienceID,
			"slot_date":     date.Format(domain.DateFormat),
			"slot_time":     slotTime,
		}).
		Where("capacity - booked >= ?", quantity).
		Suffix("RETURNING booked").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReserveSeats - build update query: %v", ErrBuildQuery, err)
	}

	var booked int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booked)
	if err == nil {
		return booked, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: ReserveSeats - execute update: %v", ErrExecQuery, err)
	}

	// Ни одна строка не обновлена: либо слота нет, либо не хватает мест
	exists, err := r.slotExists(ctx, executor, experienceID, date, slotTime)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrSlotNotFound
	}
	return 0, ErrCapacityExceeded
}

// DeleteAll удаляет все впечатления (слоты удаляются каскадно).
// Используется командой seed --reset.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("experiences").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// Count возвращает количество впечатлений
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("experiences").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) slotExists(ctx context.Context, executor DBExecutor, experienceID string, date time.Time, slotTime string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("experience_slots").
		Where(squirrel.Eq{
			"experience_id": experienceID,
			"slot_date":     date.Format(domain.DateFormat),
			"slot_time":     slotTime,
		}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: slotExists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: slotExists - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

type slotRow struct {
	experienceID string
	slot         domain.Slot
}

// selectSlots получает слоты одного впечатления (experienceID != nil) или всех
func (r *Repository) selectSlots(ctx context.Context, executor DBExecutor, experienceID *string) ([]slotRow, error) {
	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("experience_slots").
		OrderBy("experience_id ASC", "position ASC")

	if experienceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"experience_id": *experienceID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: selectSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selectSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]slotRow, 0)
	for rows.Next() {
		var row slotRow
		if err := rows.Scan(
			&row.experienceID,
			&row.slot.Date,
			&row.slot.Time,
			&row.slot.Capacity,
			&row.slot.Booked,
		); err != nil {
			return nil, fmt.Errorf("%w: selectSlots - scan slot: %v", ErrScanRow, err)
		}
		row.slot.Date = row.slot.Date.UTC()
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: selectSlots - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExperience(row rowScanner) (*domain.Experience, error) {
	var exp domain.Experience
	var images []string

	err := row.Scan(
		&exp.ID,
		&exp.Title,
		&exp.Description,
		&exp.Price,
		pq.Array(&images),
		&exp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	exp.Images = images
	if exp.Images == nil {
		exp.Images = []string{}
	}

	return &exp, nil
}
