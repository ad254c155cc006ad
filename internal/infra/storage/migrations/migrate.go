// Package migrations применяет встроенные SQL миграции схемы
package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/experience-booking/pkg/dbmetrics"
)

//go:embed *.sql
var files embed.FS

// ErrMigration возвращается при ошибке применения миграции
var ErrMigration = errors.New("migrations: failed to apply migration")

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Up применяет все ещё не применённые миграции в лексикографическом порядке.
// Каждый файл выполняется в своей транзакции вместе с записью в schema_migrations.
func Up(ctx context.Context, db dbmetrics.DBExecutor, txManager TransactionManager, log Logger) (int, error) {
	names, err := List()
	if err != nil {
		return 0, err
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return 0, fmt.Errorf("%w: create schema_migrations: %v", ErrMigration, err)
	}

	applied := 0
	for _, name := range names {
		err := txManager.Do(ctx, func(txCtx context.Context) error {
			executor := dbmetrics.GetExecutor(txCtx, db)

			var exists bool
			if err := executor.QueryRowContext(txCtx,
				`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&exists); err != nil {
				return err
			}
			if exists {
				return nil
			}

			body, err := files.ReadFile(name)
			if err != nil {
				return err
			}
			if _, err := executor.ExecContext(txCtx, string(body)); err != nil {
				return err
			}
			if _, err := executor.ExecContext(txCtx,
				`INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
				return err
			}

			applied++
			log.Info("Applied migration %s", name)
			return nil
		})
		if err != nil {
			return applied, fmt.Errorf("%w: %s: %v", ErrMigration, name, err)
		}
	}

	return applied, nil
}

// List возвращает имена встроенных миграций в порядке применения
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}
