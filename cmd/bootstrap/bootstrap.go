package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"odontocare/config"
	"odontocare/db/migrations"
	"odontocare/internal/client/userservice"
	deliveryHttp "odontocare/internal/delivery/http"
	"odontocare/internal/delivery/http/handler"
	"odontocare/internal/delivery/http/middleware"
	"odontocare/internal/infrastructure/cache"
	"odontocare/internal/infrastructure/database"
	"odontocare/internal/repository"
	"odontocare/internal/usecase"
	"odontocare/pkg/jwt"
	"odontocare/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const version = "1.0.0"

// App holds all dependencies for one service process
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	serviceName string
}

// NewUserService builds the identity and administration service
func NewUserService() (*App, error) {
	app := &App{serviceName: "user-service"}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8000"
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.RunMigrations(db, migrations.UserFS, "user"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	app.Server = initializeUserServer(cfg, db, redisClient)

	return app, nil
}

// NewAppointmentService builds the booking service. It has no Redis
// dependency; token revocation stays in the identity service.
func NewAppointmentService() (*App, error) {
	app := &App{serviceName: "appointment-service"}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8001"
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.RunMigrations(db, migrations.AppointmentFS, "appointment"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	app.Server = initializeAppointmentServer(cfg, db)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func initializeUserServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	centerRepo := repository.NewCenterRepository()

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, cache.NewRedisTokenStore(redisClient))
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)
	centerUsecase := usecase.NewCenterUsecase(db, log, centerRepo)
	verifyUsecase := usecase.NewVerifyUsecase(db, log, patientRepo, doctorRepo, centerRepo)

	// Handlers
	infoHandler := handler.NewInfoHandler("user-service", version, map[string]string{
		"auth":   "/auth/register, /auth/login, /auth/logout",
		"admin":  "/admin/pacientes, /admin/doctores, /admin/centros",
		"verify": "/verify/token, /verify/pacientes/{id}, /verify/doctores/{id}, /verify/centros/{id}",
	})
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	centerHandler := handler.NewCenterHandler(centerUsecase, customValidator)
	verifyHandler := handler.NewVerifyHandler(verifyUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewUserServiceRouter(
		infoHandler,
		authHandler,
		patientHandler,
		doctorHandler,
		centerHandler,
		verifyHandler,
		authMiddleware,
		corsMiddleware,
	)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

func initializeAppointmentServer(cfg *config.Config, db *gorm.DB) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	appointmentRepo := repository.NewAppointmentRepository()
	userServiceClient := userservice.NewClient(cfg.UserService, log)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, userServiceClient)

	infoHandler := handler.NewInfoHandler("appointment-service", version, map[string]string{
		"citas": "/citas, /citas/{id}",
	})
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// No Redis here: tokens are validated by signature only, revocation is
	// checked by the identity service on verify calls.
	authMiddleware := middleware.NewAuthMiddleware(jwtService, nil)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewAppointmentServiceRouter(
		infoHandler,
		appointmentHandler,
		authMiddleware,
		corsMiddleware,
	)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("%s starting on port %s", app.serviceName, app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
