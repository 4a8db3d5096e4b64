package main

import (
	"context"
	"log"
	"time"

	"beton-feedback/cmd"
	"beton-feedback/internal/audit"
	"beton-feedback/internal/catalog"
	"beton-feedback/internal/data/repository"
	"beton-feedback/internal/notify"
	"beton-feedback/internal/report"
	"beton-feedback/internal/usecase"
	"beton-feedback/internal/wire"
	"beton-feedback/pkg/database"
	"beton-feedback/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.Migrate(ctx, db)
		cancel()
		if err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema is up to date")
	}

	// Admin event fan-out
	hub := notify.NewHub(32, logger)
	var events notify.Publisher = hub
	var broker *notify.RedisBroker
	if config.Redis.Addr != "" {
		client, err := notify.NewRedisClient(config.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer client.Close()

		broker = notify.NewRedisBroker(client, config.Redis.Channel, hub, logger)
		events = broker
		logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
	}

	location, err := time.LoadLocation(config.Report.Timezone)
	if err != nil {
		logger.Warn("Unknown report timezone, falling back to UTC",
			zap.String("timezone", config.Report.Timezone),
			zap.Error(err),
		)
		location = time.UTC
	}

	state := &usecase.State{
		Audit: audit.NewLog(config.Audit.Capacity, audit.WithListener(func(entry audit.Entry) {
			events.Publish(notify.EventNewLog, entry)
		})),
		Products: catalog.NewProducts(catalog.DefaultProducts),
		Events:   events,
		Reports:  report.NewRenderer(catalog.Questions(), location),
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, state, hub, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	var background []cmd.Worker
	if broker != nil {
		background = append(background, broker.Run)
	}

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger, background...); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
