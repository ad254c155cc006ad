package promo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/experience-booking/internal/domain"
	"github.com/m04kA/experience-booking/pkg/dbmetrics"
	"github.com/m04kA/experience-booking/pkg/psqlbuilder"
)

// Repository репозиторий промокодов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает промокод по коду. Код должен быть уже нормализован (domain.NormalizePromoCode).
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Promo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "type", "amount", "created_at").
		From("promos").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var promo domain.Promo
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&promo.Code,
		&promo.Type,
		&promo.Amount,
		&promo.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan promo: %v", ErrScanRow, err)
	}

	return &promo, nil
}

// Upsert создает промокод или обновляет тип и размер скидки существующего
func (r *Repository) Upsert(ctx context.Context, promo *domain.Promo) (*domain.Promo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promos").
		Columns("code", "type", "amount").
		Values(promo.Code, string(promo.Type), promo.Amount).
		Suffix("ON CONFLICT (code) DO UPDATE SET type = EXCLUDED.type, amount = EXCLUDED.amount RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&promo.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return promo, nil
}

// DeleteAll удаляет все промокоды. Используется командой seed --reset.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("promos").ToSql()
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
