package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	getCatalogHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_catalog"
	getDayScheduleHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_day_schedule"
	getMonthOverviewHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_month_overview"
	getNotificationHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_notification"
	quotePriceHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/quote_price"
	submitBookingHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/submit_booking"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/config"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/storage/statestore"
	"github.com/m04kA/SMC-VenueBooking/internal/notify"
	"github.com/m04kA/SMC-VenueBooking/internal/service/calendar"
	"github.com/m04kA/SMC-VenueBooking/internal/store"
	getDayScheduleUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_day_schedule"
	quotePriceUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/quote_price"
	submitBookingUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
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

	log.Info("Starting SMC-VenueBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем локальное хранилище состояния
	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
		log.Fatal("Failed to create storage directory: %v", err)
	}
	db, err := sql.Open("sqlite", cfg.Storage.Path)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping storage: %v", err)
	}
	log.Info("Local storage opened at %s", cfg.Storage.Path)

	// Инициализируем репозиторий состояния
	stateRepo := statestore.NewRepository(db, cfg.Storage.StateKey)
	if err := stateRepo.InitSchema(context.Background()); err != nil {
		log.Fatal("Failed to init storage schema: %v", err)
	}

	// Доменная конфигурация: каталог и таблицы цен
	catalog := cfg.DomainCatalog()
	priceList := cfg.DomainPriceList()
	log.Info("Catalog loaded: %d venues, %d event types", len(catalog.Venues), len(catalog.EventTypes))

	// Инициализируем стор бронирований и загружаем сохраненное состояние.
	// Ошибки загрузки не фатальны: стор стартует с пустого календаря.
	var storeMetrics store.Metrics
	if metricsCollector != nil {
		storeMetrics = metricsCollector
	}
	bookingStore := store.New(stateRepo, log, storeMetrics)
	bookingStore.LoadInitial(context.Background())

	// Центр транзиентных уведомлений с автогашением
	notifier := notify.NewCenter(time.Duration(cfg.Notifications.TTLSeconds) * time.Second)

	// Инициализируем сервисы и use cases
	calendarSvc := calendar.NewService(bookingStore, catalog, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(bookingStore, catalog, priceList, log)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(bookingStore, catalog, log)
	quotePriceUseCase := quotePriceUC.NewUseCase(priceList, log)

	// Инициализируем handlers
	var bookingMetrics submitBookingHandler.Metrics
	if metricsCollector != nil {
		bookingMetrics = metricsCollector
	}
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, notifier, bookingMetrics, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getMonthOverview := getMonthOverviewHandler.NewHandler(calendarSvc, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalog, priceList, log)
	getNotification := getNotificationHandler.NewHandler(notifier, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог площадок, типов событий и слотов
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Обзор месяца для календарной сетки
	api.HandleFunc("/calendar/{year}/{month}", getMonthOverview.Handle).Methods(http.MethodGet)

	// Расписание площадки на день
	api.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Оценочная стоимость бронирования
	api.HandleFunc("/price", quotePrice.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)

	// Текущее транзиентное уведомление
	api.HandleFunc("/notification", getNotification.Handle).Methods(http.MethodGet)

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
