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

	"github.com/salonbook/salon-booking-service/internal/api/handlers/book_slot"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/cancel_appointment"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/get_appointment"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/get_available_slots"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/get_salon_appointments"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/get_salon_customers"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/get_salon_dashboard"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/get_schedule_config"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/get_user_appointments"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/get_user_dashboard"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/update_appointment_status"
	"github.com/salonbook/salon-booking-service/internal/api/handlers/update_schedule_config"
	"github.com/salonbook/salon-booking-service/internal/api/middleware"
	"github.com/salonbook/salon-booking-service/internal/config"
	appointmentrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/appointment"
	salonrepo "github.com/salonbook/salon-booking-service/internal/infra/storage/salon"
	"github.com/salonbook/salon-booking-service/internal/integrations/userservice"
	appointmentssvc "github.com/salonbook/salon-booking-service/internal/service/appointments"
	schedulesvc "github.com/salonbook/salon-booking-service/internal/service/schedule"
	bookslotuc "github.com/salonbook/salon-booking-service/internal/usecase/book_slot"
	slotsuc "github.com/salonbook/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/salonbook/salon-booking-service/pkg/dbmetrics"
	"github.com/salonbook/salon-booking-service/pkg/logger"
	"github.com/salonbook/salon-booking-service/pkg/metrics"
	"github.com/salonbook/salon-booking-service/pkg/simpletxmanager"
	"github.com/salonbook/salon-booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon booking service on port %d", cfg.Server.HTTPPort)

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer sqlDB.Close()

	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	}

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	stopCh := make(chan struct{})
	defer close(stopCh)

	// При включенных метриках запросы к БД идут через обёртку со сбором
	// статистики; иначе репозитории работают с *sql.DB напрямую
	var (
		db        dbmetrics.DBExecutor = sqlDB
		txManager bookslotuc.TxManager = simpletxmanager.NewTransactionManager(sqlDB)
		m         *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.ServiceName)
		wrapped := dbmetrics.WrapWithDefault(sqlDB, m, "salon_booking", stopCh)
		db = wrapped
		txManager = txmanager.NewTransactionManager(wrapped)
	}

	appointmentRepo := appointmentrepo.NewRepository(db)
	salonRepo := salonrepo.NewRepository(db)

	userClient := userservice.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)

	timeProvider := slotsuc.RealTimeProvider{}

	appointmentsService := appointmentssvc.NewService(appointmentRepo, salonRepo, userClient, timeProvider, log)
	scheduleService := schedulesvc.NewService(salonRepo, log)

	availableSlotsUC := slotsuc.New(salonRepo, appointmentRepo, timeProvider, log)
	bookSlotUC := bookslotuc.New(salonRepo, appointmentRepo, txManager, timeProvider, log)

	router := mux.NewRouter()

	if cfg.Metrics.Enabled {
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		router.Use(middleware.MetricsMiddleware(m, cfg.Metrics.ServiceName))
	}

	api := router.PathPrefix("/api/v1").Subrouter()

	// Публичные эндпоинты: расписание и доступные слоты видны без авторизации
	api.HandleFunc("/salons/{salonId:[0-9]+}/available-slots",
		get_available_slots.New(availableSlotsUC, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId:[0-9]+}/schedule",
		get_schedule_config.New(scheduleService, log).Handle).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments",
		book_slot.New(bookSlotUC, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments",
		get_user_appointments.New(appointmentsService, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}",
		get_appointment.New(appointmentsService, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/cancel",
		cancel_appointment.New(appointmentsService, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId:[0-9]+}/status",
		update_appointment_status.New(appointmentsService, log).Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/salons/{salonId:[0-9]+}/appointments",
		get_salon_appointments.New(appointmentsService, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId:[0-9]+}/schedule",
		update_schedule_config.New(scheduleService, log).Handle).Methods(http.MethodPut)

	protected.HandleFunc("/dashboard",
		get_user_dashboard.New(appointmentsService, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/owner/dashboard",
		get_salon_dashboard.New(appointmentsService, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/owner/customers",
		get_salon_customers.New(appointmentsService, log).Handle).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal("HTTP server failed: %v", err)
	case sig := <-quit:
		log.Info("Received signal %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}
