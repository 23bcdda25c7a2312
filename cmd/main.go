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

	adminLoginHandler "github.com/daleelashes/booking-service/internal/api/handlers/admin_login"
	cancelBookingHandler "github.com/daleelashes/booking-service/internal/api/handlers/cancel_booking"
	changeAdminPasswordHandler "github.com/daleelashes/booking-service/internal/api/handlers/change_admin_password"
	createAdminHandler "github.com/daleelashes/booking-service/internal/api/handlers/create_admin"
	createBlockedDateHandler "github.com/daleelashes/booking-service/internal/api/handlers/create_blocked_date"
	createBookingHandler "github.com/daleelashes/booking-service/internal/api/handlers/create_booking"
	createContactHandler "github.com/daleelashes/booking-service/internal/api/handlers/create_contact"
	createReplacementBookingHandler "github.com/daleelashes/booking-service/internal/api/handlers/create_replacement_booking"
	createReviewHandler "github.com/daleelashes/booking-service/internal/api/handlers/create_review"
	createServiceHandler "github.com/daleelashes/booking-service/internal/api/handlers/create_service"
	deleteAdminHandler "github.com/daleelashes/booking-service/internal/api/handlers/delete_admin"
	deleteBlockedDateHandler "github.com/daleelashes/booking-service/internal/api/handlers/delete_blocked_date"
	deleteBookingHandler "github.com/daleelashes/booking-service/internal/api/handlers/delete_booking"
	deleteServiceHandler "github.com/daleelashes/booking-service/internal/api/handlers/delete_service"
	getAdminProfileHandler "github.com/daleelashes/booking-service/internal/api/handlers/get_admin_profile"
	getAvailabilityHandler "github.com/daleelashes/booking-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/daleelashes/booking-service/internal/api/handlers/get_booking"
	getServiceHandler "github.com/daleelashes/booking-service/internal/api/handlers/get_service"
	listAdminsHandler "github.com/daleelashes/booking-service/internal/api/handlers/list_admins"
	listAllReviewsHandler "github.com/daleelashes/booking-service/internal/api/handlers/list_all_reviews"
	listBlockedDatesHandler "github.com/daleelashes/booking-service/internal/api/handlers/list_blocked_dates"
	listBookingsHandler "github.com/daleelashes/booking-service/internal/api/handlers/list_bookings"
	listContactsHandler "github.com/daleelashes/booking-service/internal/api/handlers/list_contacts"
	listReviewsHandler "github.com/daleelashes/booking-service/internal/api/handlers/list_reviews"
	listServicesHandler "github.com/daleelashes/booking-service/internal/api/handlers/list_services"
	markContactReadHandler "github.com/daleelashes/booking-service/internal/api/handlers/mark_contact_read"
	markContactRespondedHandler "github.com/daleelashes/booking-service/internal/api/handlers/mark_contact_responded"
	markReviewHelpfulHandler "github.com/daleelashes/booking-service/internal/api/handlers/mark_review_helpful"
	publishReviewHandler "github.com/daleelashes/booking-service/internal/api/handlers/publish_review"
	rejectReviewHandler "github.com/daleelashes/booking-service/internal/api/handlers/reject_review"
	submitBookingProofHandler "github.com/daleelashes/booking-service/internal/api/handlers/submit_booking_proof"
	updateAdminHandler "github.com/daleelashes/booking-service/internal/api/handlers/update_admin"
	updateBookingStatusHandler "github.com/daleelashes/booking-service/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/daleelashes/booking-service/internal/api/handlers/update_service"
	"github.com/daleelashes/booking-service/internal/api/middleware"
	"github.com/daleelashes/booking-service/internal/config"
	"github.com/daleelashes/booking-service/internal/domain"
	adminRepo "github.com/daleelashes/booking-service/internal/infra/storage/admin"
	blockedRepo "github.com/daleelashes/booking-service/internal/infra/storage/blocked"
	bookingRepo "github.com/daleelashes/booking-service/internal/infra/storage/booking"
	contactRepo "github.com/daleelashes/booking-service/internal/infra/storage/contact"
	reviewRepo "github.com/daleelashes/booking-service/internal/infra/storage/review"
	serviceRepo "github.com/daleelashes/booking-service/internal/infra/storage/service"
	adminsService "github.com/daleelashes/booking-service/internal/service/admins"
	blockedDatesService "github.com/daleelashes/booking-service/internal/service/blockeddates"
	bookingsService "github.com/daleelashes/booking-service/internal/service/bookings"
	catalogService "github.com/daleelashes/booking-service/internal/service/catalog"
	contactsService "github.com/daleelashes/booking-service/internal/service/contacts"
	reviewsService "github.com/daleelashes/booking-service/internal/service/reviews"
	createBookingUC "github.com/daleelashes/booking-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/daleelashes/booking-service/internal/usecase/get_availability"
	"github.com/daleelashes/booking-service/pkg/authtoken"
	"github.com/daleelashes/booking-service/pkg/dbmetrics"
	"github.com/daleelashes/booking-service/pkg/logger"
	"github.com/daleelashes/booking-service/pkg/metrics"
	"github.com/daleelashes/booking-service/pkg/simpletxmanager"
	"github.com/daleelashes/booking-service/pkg/txmanager"
	"github.com/daleelashes/booking-service/pkg/uploads"
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

	log.Info("Starting Dalee booking service...")
	log.Info("Configuration loaded from config.toml")

	// Рабочее расписание салона
	policy, err := domain.NewSchedulePolicy(
		cfg.Schedule.Timezone,
		cfg.Schedule.Opening,
		cfg.Schedule.Closing,
		cfg.Schedule.StepMinutes,
		cfg.Schedule.LunchStart,
		cfg.Schedule.LunchEnd,
	)
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Schedule: %s-%s step %dm, lunch %s-%s, tz=%s",
		cfg.Schedule.Opening, cfg.Schedule.Closing, cfg.Schedule.StepMinutes,
		cfg.Schedule.LunchStart, cfg.Schedule.LunchEnd, cfg.Schedule.Timezone)

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		serviceRepository *serviceRepo.Repository
		blockedRepository *blockedRepo.Repository
		reviewRepository  *reviewRepo.Repository
		contactRepository *contactRepo.Repository
		adminRepository   *adminRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		blockedRepository = blockedRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		contactRepository = contactRepo.NewRepository(wrappedDB)
		adminRepository = adminRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		blockedRepository = blockedRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		contactRepository = contactRepo.NewRepository(db)
		adminRepository = adminRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Токены и загрузка подтверждений оплаты
	tokenService := authtoken.NewService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
	)
	proofSaver := uploads.NewSaver(cfg.Uploads.Dir, cfg.Uploads.PublicPrefix, cfg.Uploads.MaxSizeBytes)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, policy, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	blockedSvc := blockedDatesService.NewService(blockedRepository, policy, log)
	reviewSvc := reviewsService.NewService(reviewRepository, log)
	contactSvc := contactsService.NewService(contactRepository, log)
	adminSvc := adminsService.NewService(adminRepository, tokenService, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		blockedRepository,
		serviceRepository,
		policy,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockedRepository,
		serviceRepository,
		txMgr,
		policy,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	submitBookingProof := submitBookingProofHandler.NewHandler(createBookingUseCase, proofSaver, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	markReviewHelpful := markReviewHelpfulHandler.NewHandler(reviewSvc, log)
	createContact := createContactHandler.NewHandler(contactSvc, log)

	adminLogin := adminLoginHandler.NewHandler(adminSvc, log)
	getAdminProfile := getAdminProfileHandler.NewHandler(adminSvc, log)
	changeAdminPassword := changeAdminPasswordHandler.NewHandler(adminSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createReplacementBooking := createReplacementBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(blockedSvc, log)
	createBlockedDate := createBlockedDateHandler.NewHandler(blockedSvc, log)
	deleteBlockedDate := deleteBlockedDateHandler.NewHandler(blockedSvc, log)
	listAllReviews := listAllReviewsHandler.NewHandler(reviewSvc, log)
	publishReview := publishReviewHandler.NewHandler(reviewSvc, log)
	rejectReview := rejectReviewHandler.NewHandler(reviewSvc, log)
	listContacts := listContactsHandler.NewHandler(contactSvc, log)
	markContactRead := markContactReadHandler.NewHandler(contactSvc, log)
	markContactResponded := markContactRespondedHandler.NewHandler(contactSvc, log)
	createAdmin := createAdminHandler.NewHandler(adminSvc, log)
	listAdmins := listAdminsHandler.NewHandler(adminSvc, log)
	updateAdmin := updateAdminHandler.NewHandler(adminSvc, log)
	deleteAdmin := deleteAdminHandler.NewHandler(adminSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Статическая раздача подтверждений оплаты
	r.PathPrefix(cfg.Uploads.PublicPrefix).Handler(
		http.StripPrefix(cfg.Uploads.PublicPrefix, http.FileServer(http.Dir(proofSaver.Dir()))),
	).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/submit-with-proof", submitBookingProof.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{slug}", getService.Handle).Methods(http.MethodGet)

	api.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reviews/{id}/helpful", markReviewHelpful.Handle).Methods(http.MethodPost)

	api.HandleFunc("/contact", createContact.Handle).Methods(http.MethodPost)

	// Вход администратора публичный, остальная админка за Bearer токеном
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (JWT bearer)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(tokenService, adminSvc, log))

	admin.HandleFunc("/me", getAdminProfile.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/change-password", changeAdminPassword.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", createReplacementBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{slug}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{slug}", deleteService.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/availability/blocked", listBlockedDates.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability/blocked", createBlockedDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability/blocked/{id}", deleteBlockedDate.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/reviews", listAllReviews.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/{id}/publish", publishReview.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reviews/{id}/reject", rejectReview.Handle).Methods(http.MethodPatch)

	admin.HandleFunc("/contacts", listContacts.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/contacts/{id}/read", markContactRead.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/contacts/{id}/responded", markContactResponded.Handle).Methods(http.MethodPatch)

	// Управление учетными записями доступно только super_admin
	accounts := admin.PathPrefix("/admins").Subrouter()
	accounts.Use(middleware.RequireSuperAdmin(log))

	accounts.HandleFunc("", createAdmin.Handle).Methods(http.MethodPost)
	accounts.HandleFunc("", listAdmins.Handle).Methods(http.MethodGet)
	accounts.HandleFunc("/{id}", updateAdmin.Handle).Methods(http.MethodPatch)
	accounts.HandleFunc("/{id}", deleteAdmin.Handle).Methods(http.MethodDelete)

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
