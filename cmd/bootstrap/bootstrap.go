package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medequip-rental-backend/config"
	deliveryHttp "medequip-rental-backend/internal/delivery/http"
	"medequip-rental-backend/internal/delivery/http/handler"
	"medequip-rental-backend/internal/delivery/http/middleware"
	domainRepo "medequip-rental-backend/internal/domain/repository"
	"medequip-rental-backend/internal/infrastructure/cache"
	"medequip-rental-backend/internal/infrastructure/database"
	"medequip-rental-backend/internal/metrics"
	"medequip-rental-backend/internal/repository"
	"medequip-rental-backend/internal/service"
	"medequip-rental-backend/internal/usecase"
	"medequip-rental-backend/pkg/jwt"
	"medequip-rental-backend/pkg/validator"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
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
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// newMachineRepository picks the catalog backend from config. The file
// driver serves standalone demo deployments without a machines table.
func newMachineRepository(cfg *config.Config, db *gorm.DB) (domainRepo.MachineRepository, error) {
	switch cfg.Catalog.Driver {
	case "file":
		return repository.NewCatalogFileRepository(cfg.Catalog.FilePath)
	case "", "postgres":
		return repository.NewMachineRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Register Prometheus metrics
	metrics.Register()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	userRoleRepo := repository.NewUserRoleRepository()
	machineRepo, err := newMachineRepository(cfg, db)
	if err != nil {
		return nil, err
	}
	rentalRequestRepo := repository.NewRentalRequestRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	catalogCache := gocache.New(cfg.Catalog.CacheTTL, 2*cfg.Catalog.CacheTTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, userRoleRepo, jwtService, redisClient)
	machineUsecase := usecase.NewMachineUsecase(log, machineRepo, catalogCache, auditService)
	rentalUsecase := usecase.NewRentalUsecase(log, rentalRequestRepo, rentalRepo, machineRepo, auditService)
	purchaseUsecase := usecase.NewPurchaseUsecase(log, purchaseRepo, machineRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	machineHandler := handler.NewMachineHandler(machineUsecase, customValidator)
	rentalHandler := handler.NewRentalHandler(rentalUsecase, customValidator)
	purchaseHandler := handler.NewPurchaseHandler(purchaseUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	rateLimit := middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, machineHandler, rentalHandler, purchaseHandler, auditLogHandler, authMiddleware, corsMiddleware, rateLimit)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
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

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
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
