//go:build integration

// Package pgtest поднимает PostgreSQL в контейнере для интеграционных тестов.
// Если задана POSTGRES_URL, контейнер не запускается.
package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/m04kA/experience-booking/internal/infra/storage/migrations"
	"github.com/m04kA/experience-booking/pkg/dbmetrics"
	"github.com/m04kA/experience-booking/pkg/logger"
	"github.com/m04kA/experience-booking/pkg/txmanager"
)

// Env подключение к тестовой БД
type Env struct {
	SQL *sql.DB
	DB  *dbmetrics.DB

	container testcontainers.Container
}

// Setup запускает контейнер (или использует POSTGRES_URL) и применяет миграции
func Setup(ctx context.Context) (*Env, error) {
	env := &Env{}

	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		container, connStr, err := startPostgresContainer(ctx)
		if err != nil {
			return nil, err
		}
		env.container = container
		dsn = connStr
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		env.Teardown(ctx)
		return nil, fmt.Errorf("pgtest: open: %w", err)
	}
	db.SetMaxOpenConns(50)
	env.SQL = db
	env.DB = dbmetrics.Wrap(db, nil)

	if err := db.PingContext(ctx); err != nil {
		env.Teardown(ctx)
		return nil, fmt.Errorf("pgtest: ping: %w", err)
	}

	if _, err := migrations.Up(ctx, env.DB, txmanager.NewTransactionManager(env.DB), logger.NewNop()); err != nil {
		env.Teardown(ctx)
		return nil, err
	}

	return env, nil
}

// Reset очищает все таблицы
func (e *Env) Reset(ctx context.Context) error {
	_, err := e.SQL.ExecContext(ctx, `TRUNCATE bookings, experience_slots, experiences, promos`)
	return err
}

// Teardown закрывает соединение и останавливает контейнер
func (e *Env) Teardown(ctx context.Context) {
	if e.SQL != nil {
		_ = e.SQL.Close()
	}
	if e.container != nil {
		if err := e.container.Terminate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "pgtest: terminate container: %v\n", err)
		}
	}
}

func startPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:15.2-alpine"),
		postgres.WithDatabase("experiences"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, "", fmt.Errorf("pgtest: start container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", fmt.Errorf("pgtest: connection string: %w", err)
	}

	return container, connStr, nil
}
