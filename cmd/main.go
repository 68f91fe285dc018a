package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers/cancel_reservation"
	confirmReservationHandler "github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers/confirm_reservation"
	createRequestHandler "github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers/create_reservation_request"
	finalizeReservationHandler "github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers/finalize_reservation"
	getAvailableSlotsHandler "github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers/get_available_slots"
	getNextAvailableDateHandler "github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers/get_next_available_date"
	getNonWorkingDaysHandler "github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers/get_non_working_days"
	getReservationHandler "github.com/Pawel-Truszkowski/SalonManager/internal/api/handlers/get_reservation"
	"github.com/Pawel-Truszkowski/SalonManager/internal/api/middleware"
	"github.com/Pawel-Truszkowski/SalonManager/internal/config"
	catalogRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/catalog"
	requestRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/request"
	reservationRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/reservation"
	workdayRepo "github.com/Pawel-Truszkowski/SalonManager/internal/infra/storage/workday"
	notifierClient "github.com/Pawel-Truszkowski/SalonManager/internal/integrations/notifier"
	"github.com/Pawel-Truszkowski/SalonManager/internal/notify"
	maintenanceService "github.com/Pawel-Truszkowski/SalonManager/internal/service/maintenance"
	reservationsService "github.com/Pawel-Truszkowski/SalonManager/internal/service/reservations"
	createRequestUC "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/create_reservation_request"
	finalizeReservationUC "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/finalize_reservation"
	getAvailableSlotsUC "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_available_slots"
	getNextAvailableDateUC "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_next_available_date"
	getNonWorkingDaysUC "github.com/Pawel-Truszkowski/SalonManager/internal/usecase/get_non_working_days"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/dbmetrics"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/logger"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/metrics"
	"github.com/Pawel-Truszkowski/SalonManager/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SalonManager...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.MigrationsPath != "" {
		if err := runMigrations(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)
	}

	notifyClient := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	dispatcher := notify.NewDispatcher(notifyClient, cfg.Notifier.QueueSize, log)
	defer dispatcher.Close()
	log.Info("Notification dispatcher started (url=%s, queue=%d)", cfg.Notifier.URL, cfg.Notifier.QueueSize)

	var (
		workDayRepository     *workdayRepo.Repository
		catalogRepository     *catalogRepo.Repository
		requestRepository     *requestRepo.Repository
		reservationRepository *reservationRepo.Repository
		txMgr                 *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		workDayRepository = workdayRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		requestRepository = requestRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		workDayRepository = workdayRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		requestRepository = requestRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(dbmetrics.NewBeginner(db))
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		workDayRepository,
		catalogRepository,
		requestRepository,
		log,
	)
	getNextAvailableDateUseCase := getNextAvailableDateUC.NewUseCase(
		workDayRepository,
		getAvailableSlotsUseCase,
		log,
	)
	getNonWorkingDaysUseCase := getNonWorkingDaysUC.NewUseCase(
		workDayRepository,
		catalogRepository,
		log,
	)
	createRequestUseCase := createRequestUC.NewUseCase(
		catalogRepository,
		requestRepository,
		log,
	)
	finalizeReservationUseCase := finalizeReservationUC.NewUseCase(
		requestRepository,
		reservationRepository,
		txMgr,
		dispatcher,
		log,
	)

	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		dispatcher,
		log,
	)
	maintenanceSvc := maintenanceService.NewService(
		requestRepository,
		reservationRepository,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getNextAvailableDate := getNextAvailableDateHandler.NewHandler(getNextAvailableDateUseCase, log)
	getNonWorkingDays := getNonWorkingDaysHandler.NewHandler(getNonWorkingDaysUseCase, log)
	createRequest := createRequestHandler.NewHandler(createRequestUseCase, log)
	finalizeReservation := finalizeReservationHandler.NewHandler(finalizeReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public booking flow.
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/next-available-date", getNextAvailableDate.Handle).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}/non-working-days", getNonWorkingDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservation-requests", createRequest.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservation-requests/{requestId}/finalize", finalizeReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/cancel/{token}", cancelReservation.HandleByToken).Methods(http.MethodPost)

	// Staff routes, authenticated by the gateway-set X-Staff-ID header.
	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffAuth)
	staff.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Background cleanup: expired holds and elapsed reservations.
	maintenanceCtx, stopMaintenance := context.WithCancel(context.Background())
	runner := maintenanceService.NewRunner(
		maintenanceSvc,
		time.Duration(cfg.Maintenance.SweepIntervalMinutes)*time.Minute,
		log,
	)
	go runner.Run(maintenanceCtx)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopMaintenance()

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

func runMigrations(db *sql.DB, sourceURL string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	return nil
}
