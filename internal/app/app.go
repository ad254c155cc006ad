// Package app собирает зависимости сервиса и управляет жизненным циклом HTTP сервера
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	createBookingHandler "github.com/m04kA/experience-booking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/experience-booking/internal/api/handlers/get_booking"
	getExperienceHandler "github.com/m04kA/experience-booking/internal/api/handlers/get_experience"
	listExperiencesHandler "github.com/m04kA/experience-booking/internal/api/handlers/list_experiences"
	validatePromoHandler "github.com/m04kA/experience-booking/internal/api/handlers/validate_promo"
	"github.com/m04kA/experience-booking/internal/api/middleware"
	"github.com/m04kA/experience-booking/internal/config"
	bookingRepo "github.com/m04kA/experience-booking/internal/infra/storage/booking"
	experienceRepo "github.com/m04kA/experience-booking/internal/infra/storage/experience"
	"github.com/m04kA/experience-booking/internal/infra/storage/migrations"
	promoRepo "github.com/m04kA/experience-booking/internal/infra/storage/promo"
	"github.com/m04kA/experience-booking/internal/seed"
	bookingsService "github.com/m04kA/experience-booking/internal/service/bookings"
	promosService "github.com/m04kA/experience-booking/internal/service/promos"
	createBookingUC "github.com/m04kA/experience-booking/internal/usecase/create_booking"
	getExperienceUC "github.com/m04kA/experience-booking/internal/usecase/get_experience"
	listExperiencesUC "github.com/m04kA/experience-booking/internal/usecase/list_experiences"
	validatePromoUC "github.com/m04kA/experience-booking/internal/usecase/validate_promo"
	"github.com/m04kA/experience-booking/pkg/dbmetrics"
	"github.com/m04kA/experience-booking/pkg/logger"
	"github.com/m04kA/experience-booking/pkg/metrics"
	"github.com/m04kA/experience-booking/pkg/txmanager"
)

// APIPrefix префикс всех маршрутов API
const APIPrefix = "/api/v1"

// App собранный сервис: репозитории, use cases и HTTP роутер
type App struct {
	cfg     *config.Config
	db      *dbmetrics.DB
	metrics *metrics.Metrics // nil, если метрики выключены
	log     *logger.Logger

	txManager      *txmanager.TransactionManager
	experienceRepo *experienceRepo.Repository
	promoRepo      *promoRepo.Repository
	bookingRepo    *bookingRepo.Repository

	router http.Handler
}

// New собирает сервис поверх подключения к БД
func New(cfg *config.Config, db *dbmetrics.DB, m *metrics.Metrics, log *logger.Logger) *App {
	a := &App{
		cfg:            cfg,
		db:             db,
		metrics:        m,
		log:            log,
		txManager:      txmanager.NewTransactionManager(db),
		experienceRepo: experienceRepo.NewRepository(db),
		promoRepo:      promoRepo.NewRepository(db),
		bookingRepo:    bookingRepo.NewRepository(db),
	}
	a.router = a.buildRouter()
	return a
}

// Handler HTTP обработчик со всеми маршрутами и middleware
func (a *App) Handler() http.Handler {
	return a.router
}

// Migrate применяет миграции схемы
func (a *App) Migrate(ctx context.Context) (int, error) {
	return migrations.Up(ctx, a.db, a.txManager, a.log)
}

// Seeder загрузчик демо-каталога
func (a *App) Seeder() *seed.Seeder {
	return seed.NewSeeder(a.experienceRepo, a.promoRepo, a.txManager, a.log)
}

// Promos сервис администрирования промокодов
func (a *App) Promos() *promosService.Service {
	return promosService.NewService(a.promoRepo, a.log)
}

func (a *App) buildRouter() http.Handler {
	var bookingMetrics createBookingUC.MetricsRecorder = noopBookingMetrics{}
	if a.metrics != nil {
		bookingMetrics = a.metrics
	}

	// Инициализируем use cases и сервисы
	createBookingUseCase := createBookingUC.NewUseCase(
		a.experienceRepo,
		a.promoRepo,
		a.bookingRepo,
		a.txManager,
		bookingMetrics,
		a.log,
	)
	getExperienceUseCase := getExperienceUC.NewUseCase(a.experienceRepo, a.txManager, a.log)
	listExperiencesUseCase := listExperiencesUC.NewUseCase(a.experienceRepo, a.txManager, a.log)
	validatePromoUseCase := validatePromoUC.NewUseCase(a.promoRepo, a.log)
	bookingSvc := bookingsService.NewService(a.bookingRepo, a.log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, a.log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, a.log)
	getExperience := getExperienceHandler.NewHandler(getExperienceUseCase, a.log)
	listExperiences := listExperiencesHandler.NewHandler(listExperiencesUseCase, a.log)
	validatePromo := validatePromoHandler.NewHandler(validatePromoUseCase, a.log)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(a.log))
	r.Use(middleware.Logging(a.log))

	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(a.cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		a.log.Info("Prometheus metrics endpoint exposed at %s", a.cfg.Metrics.Path)
	}

	r.HandleFunc("/health", a.health).Methods(http.MethodGet)

	api := r.PathPrefix(APIPrefix).Subrouter()

	// Каталог
	api.HandleFunc("/experiences", listExperiences.Handle).Methods(http.MethodGet)
	api.HandleFunc("/experiences/{id}", getExperience.Handle).Methods(http.MethodGet)

	// Промокоды
	api.HandleFunc("/promo/validate", validatePromo.Handle).Methods(http.MethodPost)

	// Бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// CORS оборачивает роутер целиком: preflight не совпадает ни с одним маршрутом по методу
	return middleware.CORS(a.cfg.CORS.AllowedOrigins)(r)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := a.db.PingContext(ctx); err != nil {
		a.log.Error("health: database ping failed: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Run запускает HTTP сервер и останавливает его при отмене ctx
func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", a.cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.router,
		ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.cfg.Server.IdleTimeout) * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(a.cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		a.log.Info("Server stopped gracefully")
		return nil
	})

	return g.Wait()
}

type noopBookingMetrics struct{}

func (noopBookingMetrics) IncBooking(string) {}
