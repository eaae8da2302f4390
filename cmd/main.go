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

	cancelAppointmentHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/get_available_slots"
	getAvailableVetsHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/get_available_vets"
	getClientAppointmentsHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/get_client_appointments"
	getClinicAppointmentsHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/get_clinic_appointments"
	listAvailabilityHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/list_availability"
	listServicesHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/list_services"
	rescheduleAppointmentHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/reschedule_appointment"
	updateAppointmentStatusHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/update_appointment_status"
	upsertAvailabilityHandler "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/handlers/upsert_availability"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/api/middleware"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/internal/config"
	appointmentRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/availability"
	serviceRepo "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/infra/storage/service"
	petRegistryClient "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/integrations/petregistry"
	appointmentsService "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/appointments"
	availabilityService "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/availability"
	catalogService "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/service/services"
	createAppointmentUC "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/usecase/get_available_slots"
	getAvailableVetsUC "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/usecase/get_available_vets"
	rescheduleAppointmentUC "github.com/Tsukuyomi2005/FURSURE-BookingService/internal/usecase/reschedule_appointment"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/dbmetrics"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/logger"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/metrics"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/simpletxmanager"
	"github.com/Tsukuyomi2005/FURSURE-BookingService/pkg/txmanager"
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

	log.Info("Starting FURSURE-BookingService...")
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

	// Инициализируем клиент реестра питомцев
	petClient := petRegistryClient.NewClient(
		cfg.PetService.URL,
		time.Duration(cfg.PetService.Timeout)*time.Second,
		log,
	)
	log.Info("Pet registry client initialized (PetService=%s timeout=%ds)",
		cfg.PetService.URL, cfg.PetService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		serviceRepository      *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		availabilityRepository,
		log,
	)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		serviceRepository,
		log,
	)

	getAvailableVetsUseCase := getAvailableVetsUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		serviceRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		serviceRepository,
		petClient,
		txMgr,
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableVets := getAvailableVetsHandler.NewHandler(getAvailableVetsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getClinicAppointments := getClinicAppointmentsHandler.NewHandler(appointmentsSvc, log)
	upsertAvailability := upsertAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	listAvailability := listAvailabilityHandler.NewHandler(availabilitySvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату для услуги
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Свободные ветеринары для конкретного слота
	api.HandleFunc("/available-vets", getAvailableVets.Handle).Methods(http.MethodGet)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Ростер клиники
	api.HandleFunc("/availability", listAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vets/{vetId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на приём ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей клиники (для сотрудников)
	protected.HandleFunc("/appointments", getClinicAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Подтверждение/отклонение записи (для сотрудников)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Перенос записи на другой слот
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPost)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Расписания ветеринаров ---
	// Создание/обновление расписания
	protected.HandleFunc("/vets/{vetId}/availability", upsertAvailability.Handle).Methods(http.MethodPut)

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
