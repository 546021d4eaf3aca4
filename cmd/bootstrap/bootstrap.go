package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rx-prescription-api/config"
	deliveryHttp "rx-prescription-api/internal/delivery/http"
	"rx-prescription-api/internal/delivery/http/handler"
	"rx-prescription-api/internal/delivery/http/middleware"
	"rx-prescription-api/internal/infrastructure/cache"
	"rx-prescription-api/internal/infrastructure/database"
	"rx-prescription-api/internal/pdf"
	"rx-prescription-api/internal/repository"
	"rx-prescription-api/internal/service"
	"rx-prescription-api/internal/usecase"
	"rx-prescription-api/pkg/jwt"
	"rx-prescription-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	TempLinks   *service.TempLinkService
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations
	if err := database.RunMigrations(db, cfg.DB.Name); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize temp link storage with its cleanup janitor
	tempLinks, err := service.NewTempLinkService(cfg.Upload.TempDir, cfg.Upload.TempLinkTTL, "/temp", logrus.StandardLogger())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize temp link storage: %w", err)
	}
	app.TempLinks = tempLinks

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, tempLinks)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, tempLinks *service.TempLinkService) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	medicineRepo := repository.NewMedicineRepository()
	investigationRepo := repository.NewInvestigationRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	historyRepo := repository.NewPatientHistoryRepository()
	certificateRepo := repository.NewCertificateRepository()

	// Initialize services
	mailer := service.NewMailerService(cfg.SMTP)
	openFDA := service.NewOpenFDAService(cfg.OpenFDA, log)
	renderer := pdf.NewRenderer()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, cfg, userRepo, doctorRepo, jwtService, redisClient, mailer)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, historyRepo)
	medicineUsecase := usecase.NewMedicineUsecase(db, log, medicineRepo, openFDA)
	investigationUsecase := usecase.NewInvestigationUsecase(db, log, investigationRepo)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, patientRepo, doctorRepo, historyRepo)
	certificateUsecase := usecase.NewCertificateUsecase(db, log, certificateRepo, patientRepo, doctorRepo)
	shareUsecase := usecase.NewShareUsecase(log, prescriptionUsecase, renderer, mailer, tempLinks)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	medicineHandler := handler.NewMedicineHandler(medicineUsecase, customValidator)
	investigationHandler := handler.NewInvestigationHandler(investigationUsecase)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, renderer, customValidator)
	certificateHandler := handler.NewCertificateHandler(certificateUsecase, renderer, customValidator)
	shareHandler := handler.NewShareHandler(shareUsecase, customValidator)
	uploadHandler := handler.NewUploadHandler(cfg, log)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		db,
		authHandler,
		doctorHandler,
		patientHandler,
		medicineHandler,
		investigationHandler,
		prescriptionHandler,
		certificateHandler,
		shareHandler,
		uploadHandler,
		authMiddleware,
		corsMiddleware,
		cfg.Upload.Dir,
		cfg.Upload.TempDir,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections and background workers
func (app *App) Close() {
	// Stop the temp link janitor
	if app.TempLinks != nil {
		app.TempLinks.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
