package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/parkngo/slot-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/parkngo/slot-booking-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/parkngo/slot-booking-service/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/parkngo/slot-booking-service/internal/api/handlers/get_bookings"
	getSlotsHandler "github.com/parkngo/slot-booking-service/internal/api/handlers/get_slots"
	healthHandler "github.com/parkngo/slot-booking-service/internal/api/handlers/health"
	"github.com/parkngo/slot-booking-service/internal/api/middleware"
	"github.com/parkngo/slot-booking-service/internal/config"
	bookingLedger "github.com/parkngo/slot-booking-service/internal/infra/storage/booking"
	slotRegistry "github.com/parkngo/slot-booking-service/internal/infra/storage/slot"
	bookingsService "github.com/parkngo/slot-booking-service/internal/service/bookings"
	slotsService "github.com/parkngo/slot-booking-service/internal/service/slots"
	createBookingUC "github.com/parkngo/slot-booking-service/internal/usecase/create_booking"
	"github.com/parkngo/slot-booking-service/pkg/logger"
	"github.com/parkngo/slot-booking-service/pkg/metrics"
)

// metricsRecorder адаптер pkg/metrics под Recorder-интерфейсы usecase и сервисов
type metricsRecorder struct {
	m *metrics.Metrics
}

func (r *metricsRecorder) BookingCreated()                   { r.m.BookingsCreated.Inc() }
func (r *metricsRecorder) BookingCancelled()                 { r.m.BookingsCancelled.Inc() }
func (r *metricsRecorder) BookingCreateFailed(reason string) { r.m.BookingCreateFailures.WithLabelValues(reason).Inc() }
func (r *metricsRecorder) SetSlotsAvailable(n int)           { r.m.SlotsAvailable.Set(float64(n)) }

// nopRecorder используется при выключенных метриках
type nopRecorder struct{}

func (nopRecorder) BookingCreated()                   {}
func (nopRecorder) BookingCancelled()                 {}
func (nopRecorder) BookingCreateFailed(reason string) {}
func (nopRecorder) SetSlotsAvailable(n int)           {}

// Recorder общий интерфейс записи доменных метрик
type Recorder interface {
	BookingCreated()
	BookingCancelled()
	BookingCreateFailed(reason string)
	SetSlotsAvailable(n int)
}

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

	log.Info("Starting slot-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var recorder Recorder = nopRecorder{}
	var metricsCollector *metrics.Metrics

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = &metricsRecorder{m: metricsCollector}
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Создаем in-memory хранилища: пул слотов и журнал бронирований
	// Состояние живет только в памяти процесса и теряется при рестарте
	registry, err := slotRegistry.NewRegistry(cfg.Parking.TotalSlots)
	if err != nil {
		log.Fatal("Failed to initialize slot registry: %v", err)
	}
	ledger := bookingLedger.NewLedger()

	log.Info("Slot registry initialized with %d slots", cfg.Parking.TotalSlots)

	if metricsCollector != nil {
		metricsCollector.SlotsTotal.Set(float64(registry.TotalCount()))
		metricsCollector.SlotsAvailable.Set(float64(registry.AvailableCount()))
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(ledger, registry, recorder, log)
	slotSvc := slotsService.NewService(registry, log)

	// Инициализируем use case создания бронирования
	createBookingUseCase := createBookingUC.NewUseCase(registry, ledger, recorder, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getSlots := getSlotsHandler.NewHandler(slotSvc, log)
	health := healthHandler.NewHandler()

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.CORS)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Снимок парковочных слотов
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Бронирования
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
