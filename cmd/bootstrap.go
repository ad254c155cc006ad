package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/experience-booking/internal/app"
	"github.com/m04kA/experience-booking/internal/config"
	"github.com/m04kA/experience-booking/pkg/dbmetrics"
	"github.com/m04kA/experience-booking/pkg/logger"
	"github.com/m04kA/experience-booking/pkg/metrics"
)

// deps общие зависимости команд
type deps struct {
	cfg    *config.Config
	log    *logger.Logger
	sqlDB  *sql.DB
	app    *app.App
	stopCh chan struct{}
}

// bootstrap загружает конфигурацию, поднимает логгер и подключение к БД.
// collectPoolStats включает фоновый сбор статистики пула (нужен только серверу).
func bootstrap(ctx context.Context, configPath string, collectPoolStats bool) (*deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		_ = log.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	rt := &deps{
		cfg:    cfg,
		log:    log,
		sqlDB:  db,
		stopCh: make(chan struct{}),
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		wrappedDB        *dbmetrics.DB
	)
	switch {
	case cfg.Metrics.Enabled && collectPoolStats:
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, rt.stopCh)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	case cfg.Metrics.Enabled:
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB = dbmetrics.Wrap(db, metricsCollector)
	default:
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	rt.app = app.New(cfg, wrappedDB, metricsCollector, log)
	return rt, nil
}

// Close останавливает сбор метрик и закрывает ресурсы
func (d *deps) Close() {
	close(d.stopCh)
	if err := d.sqlDB.Close(); err != nil {
		d.log.Error("Failed to close database: %v", err)
	}
	_ = d.log.Close()
}
