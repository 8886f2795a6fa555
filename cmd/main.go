package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/get_booking"
	getExperienceHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/get_experience"
	getExperiencesHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/get_experiences"
	validatePromoHandler "github.com/m04kA/SMC-ExperienceService/internal/api/handlers/validate_promo"
	"github.com/m04kA/SMC-ExperienceService/internal/api/middleware"
	"github.com/m04kA/SMC-ExperienceService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/booking"
	experienceRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
	promoRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/promocode"
	slotRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/slot"
	bookingsService "github.com/m04kA/SMC-ExperienceService/internal/service/bookings"
	cancelBookingUC "github.com/m04kA/SMC-ExperienceService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-ExperienceService/internal/usecase/create_booking"
	getExperienceUC "github.com/m04kA/SMC-ExperienceService/internal/usecase/get_experience"
	getExperiencesUC "github.com/m04kA/SMC-ExperienceService/internal/usecase/get_experiences"
	validatePromoUC "github.com/m04kA/SMC-ExperienceService/internal/usecase/validate_promo"
	"github.com/m04kA/SMC-ExperienceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExperienceService/pkg/logger"
	"github.com/m04kA/SMC-ExperienceService/pkg/metrics"
	"github.com/m04kA/SMC-ExperienceService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ExperienceService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ExperienceService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		experienceRepository *experienceRepo.Repository
		slotRepository       *slotRepo.Repository
		promoRepository      *promoRepo.Repository
		bookingRepository    *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		experienceRepository = experienceRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		promoRepository = promoRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		experienceRepository = experienceRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		promoRepository = promoRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getExperiencesUseCase := getExperiencesUC.NewUseCase(experienceRepository, log)
	getExperienceUseCase := getExperienceUC.NewUseCase(experienceRepository, slotRepository, log)
	validatePromoUseCase := validatePromoUC.NewUseCase(promoRepository, cfg.Booking.ClampFlatDiscount, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		experienceRepository,
		promoRepository,
		bookingRepository,
		txMgr,
		cfg.Booking.ClampFlatDiscount,
		cfg.Booking.ReferenceMaxAttempts,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getExperiences := getExperiencesHandler.NewHandler(getExperiencesUseCase, log)
	getExperience := getExperienceHandler.NewHandler(getExperienceUseCase, log)
	validatePromo := validatePromoHandler.NewHandler(validatePromoUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// CORS для браузерных клиентов (каталог публичный)
	r.Use(middleware.CORS)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	// Список активных experiences
	api.HandleFunc("/experiences", getExperiences.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Карточка experience со слотами
	api.HandleFunc("/experiences/{experienceId}", getExperience.Handle).
		Methods(http.MethodGet, http.MethodOptions)

	// --- Промокоды ---
	// Проверка промокода без применения
	api.HandleFunc("/promos/validate", validatePromo.Handle).
		Methods(http.MethodPost, http.MethodOptions)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Получение бронирования по публичному коду
	api.HandleFunc("/bookings/{reference}", getBooking.Handle).
		Methods(http.MethodGet, http.MethodOptions)

	// Отмена бронирования
	api.HandleFunc("/bookings/{reference}/cancel", cancelBooking.Handle).
		Methods(http.MethodPatch, http.MethodOptions)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
