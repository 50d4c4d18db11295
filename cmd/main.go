package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "anime-quotes-backend/docs"
	"anime-quotes-backend/internal/config"
	"anime-quotes-backend/internal/database"
	"anime-quotes-backend/internal/handlers"
	"anime-quotes-backend/internal/repository"
	"anime-quotes-backend/internal/routes"
	"anime-quotes-backend/internal/seed"
	"anime-quotes-backend/internal/services"
	"anime-quotes-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Anime Quotes API
// @version 1.0
// @description Catalog of anime series, characters and their quotes
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api
// @schemes http https

const seedTimeout = 2 * time.Minute

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	repos, err := openStore(cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repos.Close(ctx); err != nil {
			log.Errorf("Error closing store: %v", err)
		}
	}()

	if cfg.Store.SeedOnStartup {
		seedStore(repos, log)
	}

	catalogService := services.NewCatalogService(repos, log)
	statusService := services.NewStatusService(repos.StatusChecks)

	h := routes.Handlers{
		Anime:      handlers.NewAnimeHandler(catalogService, log),
		Characters: handlers.NewCharacterHandler(catalogService, log),
		Quotes:     handlers.NewQuoteHandler(catalogService, log),
		Status:     handlers.NewStatusHandler(statusService, log),
	}

	if cfg.MinIO.Enabled() {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
		h.Upload = handlers.NewUploadHandler(minioService, log)
	} else {
		log.Info("MinIO credentials not configured, image uploads disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:               "Anime Quotes API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app, cfg.Server)

	app.Get("/health", healthCheckHandler(repos))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Setup API routes
	routes.Setup(app, h)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.WithField("store", repos.Driver).Infof("Anime Quotes API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func openStore(cfg *config.Config, log *logrus.Logger) (*repository.Repositories, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		log.Info("Connected to PostgreSQL")
		return repository.NewPostgresRepositories(db), nil
	case config.DriverMongo:
		db, err := database.ConnectMongo(cfg.Mongo)
		if err != nil {
			return nil, err
		}
		log.WithField("database", cfg.Mongo.DBName).Info("Connected to MongoDB")
		return repository.NewMongoRepositories(db), nil
	case config.DriverMemory:
		log.Warn("Using in-memory store, data is lost on restart")
		return repository.NewMemoryRepositories(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}

// seedStore never stops startup; failures are logged and the API serves whatever is stored.
func seedStore(repos *repository.Repositories, log *logrus.Logger) {
	dataset, err := seed.Load()
	if err != nil {
		log.WithError(err).Error("Failed to load seed dataset")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if _, err := services.NewSeedService(repos, dataset, log).Seed(ctx); err != nil {
		log.WithError(err).Error("Error seeding database")
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App, cfg config.ServerConfig) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(repos *repository.Repositories) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeStatus := "healthy"
		if err := repos.HealthCheck(c.Context()); err != nil {
			storeStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "anime-quotes-backend",
			"version":   "1.0.0",
			"store":     fiber.Map{"driver": repos.Driver, "status": storeStatus},
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return utils.ErrorResponse(c, code, err.Error())
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
