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

	cancelBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/delete_service"
	getBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_booking"
	getBookingPaymentHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_booking_payment"
	getProfileHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_profile"
	getServiceHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_service"
	healthHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/list_bookings"
	listNotificationsHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/list_notifications"
	listServicesHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/list_services"
	loginUserHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/login_user"
	markNotificationReadHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/mark_notification_read"
	notificationCountHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/notification_count"
	registerUserHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/register_user"
	streamNotificationsHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/stream_notifications"
	updateBookingStatusHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceService/internal/auth"
	"github.com/m04kA/SMC-MarketplaceService/internal/config"
	"github.com/m04kA/SMC-MarketplaceService/internal/infra/emailsink"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	notificationRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/notification"
	paymentRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/payment"
	serviceRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/user"
	"github.com/m04kA/SMC-MarketplaceService/internal/infra/stream"
	"github.com/m04kA/SMC-MarketplaceService/internal/integrations/paymentgw"
	bookingsService "github.com/m04kA/SMC-MarketplaceService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-MarketplaceService/internal/service/catalog"
	notificationsService "github.com/m04kA/SMC-MarketplaceService/internal/service/notifications"
	paymentsService "github.com/m04kA/SMC-MarketplaceService/internal/service/payments"
	usersService "github.com/m04kA/SMC-MarketplaceService/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-MarketplaceService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/logger"
	"github.com/m04kA/SMC-MarketplaceService/pkg/metrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-MarketplaceService/pkg/txmanager"
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

	log.Info("Starting SMC-MarketplaceService...")
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

	// Эмитент access-токенов
	tokenIssuer := auth.NewTokenIssuer(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	// Моковый платёжный шлюз
	gateway := paymentgw.NewClient(
		cfg.Payments.FailureRate,
		time.Duration(cfg.Payments.SimulatedLatencyMS)*time.Millisecond,
		log,
	)
	log.Info("Payment gateway initialized (failure_rate=%.2f, latency=%dms)",
		cfg.Payments.FailureRate, cfg.Payments.SimulatedLatencyMS)

	// Каналы доставки уведомлений: email-файлы и SSE поток
	emailSink, err := emailsink.NewSink(cfg.Notifications.EmailDir, log)
	if err != nil {
		log.Fatal("Failed to initialize email sink: %v", err)
	}
	hub := stream.NewHub(cfg.Notifications.StreamBufferSize)
	log.Info("Notification channels initialized (email_dir=%s, stream_buffer=%d)",
		cfg.Notifications.EmailDir, cfg.Notifications.StreamBufferSize)

	// Инициализируем репозитории (с метриками или без)
	var (
		userRepository         *userRepo.Repository
		serviceRepository      *serviceRepo.Repository
		bookingRepository      *bookingRepo.Repository
		paymentRepository      *paymentRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	// Интерфейс transaction manager (используется в сервисах и usecase)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		userRepository = userRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		userRepository = userRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	usersSvc := usersService.NewService(userRepository, tokenIssuer, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	notificationsSvc := notificationsService.NewService(
		notificationRepository,
		userRepository,
		emailSink,
		hub,
		log,
	)
	paymentsSvc := paymentsService.NewService(paymentRepository, bookingRepository, log)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		paymentRepository,
		gateway,
		notificationsSvc,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		paymentRepository,
		gateway,
		notificationsSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(db)
	registerUser := registerUserHandler.NewHandler(usersSvc, log)
	loginUser := loginUserHandler.NewHandler(usersSvc, log)
	getProfile := getProfileHandler.NewHandler(usersSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getBookingPayment := getBookingPaymentHandler.NewHandler(paymentsSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationsSvc, log)
	notificationCount := notificationCountHandler.NewHandler(notificationsSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationsSvc, log)
	streamNotifications := streamNotificationsHandler.NewHandler(
		hub,
		time.Duration(cfg.Notifications.StreamPingInterval)*time.Second,
		log,
	)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Health check (публичный, без аутентификации)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

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

	// Регистрация и вход (с rate limiting, если включен)
	authRoutes := api.PathPrefix("/auth").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		authRoutes.Use(limiter.Middleware)
		log.Info("Rate limiting enabled for auth endpoints (rps=%.1f, burst=%d)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	authRoutes.HandleFunc("/register", registerUser.Handle).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", loginUser.Handle).Methods(http.MethodPost)

	// Каталог услуг доступен без аутентификации
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenIssuer))

	// --- Профиль ---
	protected.HandleFunc("/users/me", getProfile.Handle).Methods(http.MethodGet)

	// --- Управление услугами (для провайдеров) ---
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	// Создание бронирования с оплатой
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований пользователя
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования (для провайдеров)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования (для обоих участников)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Платеж по бронированию
	protected.HandleFunc("/bookings/{bookingId}/payment", getBookingPayment.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/count", notificationCount.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/stream", streamNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
		// WriteTimeout не задаем: SSE поток /notifications/stream
		// держит соединение открытым неограниченно долго
		IdleTimeout: time.Duration(cfg.Server.IdleTimeout) * time.Second,
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
