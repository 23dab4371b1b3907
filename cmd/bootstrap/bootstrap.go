package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medtrack/config"
	deliveryHttp "medtrack/internal/delivery/http"
	"medtrack/internal/delivery/http/handler"
	"medtrack/internal/delivery/http/middleware"
	"medtrack/internal/delivery/http/view"
	domainRepo "medtrack/internal/domain/repository"
	"medtrack/internal/infrastructure/cache"
	"medtrack/internal/infrastructure/database"
	"medtrack/internal/infrastructure/messaging"
	"medtrack/internal/repository"
	"medtrack/internal/repository/memory"
	"medtrack/internal/repository/mongodb"
	"medtrack/internal/service"
	"medtrack/internal/usecase"
	"medtrack/pkg/jwt"
	"medtrack/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config        *config.Config
	Log           *logrus.Logger
	DB            *gorm.DB
	MongoClient   *mongo.Client
	MongoDB       *mongo.Database
	RedisClient   *redis.Client
	Notifications *service.NotificationService
	Server        *http.Server
}

// repositories is the set of stores selected by STORE_DRIVER
type repositories struct {
	patients     domainRepo.PatientRepository
	doctors      domainRepo.DoctorRepository
	appointments domainRepo.AppointmentRepository
	transitions  domainRepo.AppointmentTransitionRepository
	sessions     domainRepo.SessionRepository
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app, err := load()
	if err != nil {
		return nil, err
	}

	if err := app.connectStore(); err != nil {
		app.Close()
		return nil, err
	}

	if err := app.ensureIndexes(); err != nil {
		app.Close()
		return nil, err
	}

	repos, err := app.initializeRepositories()
	if err != nil {
		app.Close()
		return nil, err
	}

	sinks, err := app.initializeSinks()
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Notifications = service.NewNotificationService(app.Log, sinks...)

	server, err := app.initializeServer(repos)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// Migrate creates the tables (postgres) or indexes (mongo) of the configured store
func Migrate() error {
	app, err := load()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.connectStore(); err != nil {
		return err
	}

	switch app.Config.Store.Driver {
	case config.StoreDriverPostgres:
		if err := database.MigratePostgres(app.DB, app.Config.Store); err != nil {
			return fmt.Errorf("failed to migrate postgres: %w", err)
		}
	case config.StoreDriverMongo:
		if err := app.ensureIndexes(); err != nil {
			return err
		}
	default:
		app.Log.Infof("Store driver %s needs no migration", app.Config.Store.Driver)
		return nil
	}

	app.Log.Info("Migration completed successfully")
	return nil
}

func load() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	return &App{Config: cfg, Log: log}, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}

func (app *App) connectStore() error {
	switch app.Config.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgresConnection(app.Config.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		app.Log.Info("Database connected successfully")
	case config.StoreDriverMongo:
		client, db, err := database.NewMongoConnection(app.Config.Mongo)
		if err != nil {
			return fmt.Errorf("failed to connect to mongo: %w", err)
		}
		app.MongoClient = client
		app.MongoDB = db
		app.Log.Info("Mongo connected successfully")
	case config.StoreDriverMemory:
		app.Log.Warn("Using in-memory store, data is lost on restart")
	default:
		return fmt.Errorf("unknown store driver %q", app.Config.Store.Driver)
	}
	return nil
}

// migrateMongo is replaced in tests
var migrateMongo = database.MigrateMongo

// ensureIndexes creates the mongo indexes at startup. Mongo creates collections lazily
// without them, and the unique email indexes are what reject duplicate registrations.
// CreateMany is a no-op for indexes that already exist.
func (app *App) ensureIndexes() error {
	if app.Config.Store.Driver != config.StoreDriverMongo {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrateMongo(ctx, app.MongoDB, app.Config.Store); err != nil {
		return fmt.Errorf("failed to migrate mongo: %w", err)
	}
	return nil
}

// redis connects on first use; the memory driver only needs it for the notification topic
func (app *App) redis() (*redis.Client, error) {
	if app.RedisClient != nil {
		return app.RedisClient, nil
	}

	client, err := cache.NewRedisClient(app.Config.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = client
	app.Log.Info("Redis connected successfully")
	return client, nil
}

func (app *App) initializeRepositories() (*repositories, error) {
	store := app.Config.Store

	if store.Driver == config.StoreDriverMemory {
		mem := memory.NewStore()
		return &repositories{
			patients:     mem.Patients(),
			doctors:      mem.Doctors(),
			appointments: mem.Appointments(),
			transitions:  mem.Transitions(),
			sessions:     mem.Sessions(),
		}, nil
	}

	redisClient, err := app.redis()
	if err != nil {
		return nil, err
	}
	repos := &repositories{sessions: repository.NewSessionRepository(redisClient)}

	if store.Driver == config.StoreDriverMongo {
		repos.patients = mongodb.NewPatientRepository(app.MongoDB, store.PatientsTable)
		repos.doctors = mongodb.NewDoctorRepository(app.MongoDB, store.DoctorsTable)
		repos.appointments = mongodb.NewAppointmentRepository(app.MongoDB, store.AppointmentsTable)
		repos.transitions = mongodb.NewAppointmentTransitionRepository(app.MongoDB, store.TransitionsTable)
		return repos, nil
	}

	repos.patients = repository.NewPatientRepository(app.DB, store.PatientsTable)
	repos.doctors = repository.NewDoctorRepository(app.DB, store.DoctorsTable)
	repos.appointments = repository.NewAppointmentRepository(app.DB, store.AppointmentsTable)
	repos.transitions = repository.NewAppointmentTransitionRepository(app.DB, store.TransitionsTable)
	return repos, nil
}

func (app *App) initializeSinks() ([]service.NotificationSink, error) {
	notify := app.Config.Notify
	var sinks []service.NotificationSink

	if notify.Topic != "" {
		redisClient, err := app.redis()
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, messaging.NewRedisTopicPublisher(redisClient, notify.Topic))
	}

	if notify.SMTPHost != "" && notify.EmailTo != "" {
		sinks = append(sinks, messaging.NewMailPublisher(notify))
	}

	if len(sinks) == 0 {
		app.Log.Info("No notification sinks configured")
	}
	return sinks, nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(repos *repositories) (*http.Server, error) {
	cfg := app.Config
	log := app.Log

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.Session)

	// Initialize validator and views
	customValidator := validator.NewValidator()
	renderer, err := view.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize services
	sessionService := service.NewSessionService(jwtService, repos.sessions, log)
	transitionService := service.NewTransitionService(log, repos.transitions)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, repos.patients, repos.doctors, sessionService, app.Notifications)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, repos.appointments, repos.doctors, transitionService)
	dashboardUsecase := usecase.NewDashboardUsecase(log, repos.patients, repos.doctors, repos.appointments)

	// Initialize handlers
	secureCookie := cfg.App.Env == "production"
	pageHandler := handler.NewPageHandler(renderer)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, renderer, log, cfg.Session.TTL, secureCookie)
	patientHandler := handler.NewPatientHandler(dashboardUsecase, appointmentUsecase, customValidator, renderer, log)
	doctorHandler := handler.NewDoctorHandler(dashboardUsecase, appointmentUsecase, customValidator, renderer, log)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionService, log)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(pageHandler, authHandler, patientHandler, doctorHandler, sessionMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s, store: %s", app.Config.App.Env, app.Config.Store.Driver)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Drain registration notifications before closing their clients
	if app.Notifications != nil {
		app.Notifications.Close()
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, mongo, redis)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Mongo connection
	if app.MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.MongoClient.Disconnect(ctx); err != nil {
			app.Log.Warnf("Failed to disconnect mongo: %+v", err)
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
